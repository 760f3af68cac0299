package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"campuscare/services/user"
	"campuscare/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"campuscare/models"
)

// UserHandler serves the account management endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// CreateUserHandler registers a new account.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var input user.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Role != models.RoleAdmin && input.Role != models.RoleCounselor && input.Role != models.RoleStudent {
		utils.JSONError(c, http.StatusBadRequest, "invalid role", input.Role)
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.JSONError(c, http.StatusConflict, "email already registered", input.Email)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create user", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetUserHandler returns one account by id.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	u, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "user not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch user", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

// ListUsersHandler returns every account.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list users", err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUserHandler applies a partial update to an account. The body may
// only carry the fields models.UserUpdate enumerates; anything else is a
// 400, not a silent drop.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	var upd models.UserUpdate
	if err := dec.Decode(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, err := h.Service.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "user not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update user", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeleteUserHandler removes an account.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "user not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete user", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// SetPasswordHandler overwrites a user's password. Admin-facing: the
// current password is not required.
func (h *UserHandler) SetPasswordHandler(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.SetPassword(c.Request.Context(), c.Param("id"), input.Password); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "user not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to set password", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// ChangePasswordHandler changes a password after verifying the current one.
func (h *UserHandler) ChangePasswordHandler(c *gin.Context) {
	var input struct {
		Email           string `json:"email" binding:"required,email"`
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	err := h.Service.ChangePassword(c.Request.Context(), input.Email, input.CurrentPassword, input.NewPassword)
	if err != nil {
		var invalid *user.InvalidCredentialsError
		if errors.As(err, &invalid) || errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid email or password", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to change password", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// SeedDefaultsHandler creates the bootstrap accounts for a fresh install.
func (h *UserHandler) SeedDefaultsHandler(c *gin.Context) {
	users, err := h.Service.SeedDefaults(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to seed default users", err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}
