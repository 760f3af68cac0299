package handlers

import (
	"errors"
	"net/http"
	"time"

	"campuscare/services/user"
	"campuscare/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves login and token issuance.
type AuthHandler struct {
	Users user.UserService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users user.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

const tokenLifetime = 24 * time.Hour

// LoginHandler checks credentials and issues a signed JWT.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, err := h.Users.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		var invalid *user.InvalidCredentialsError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid email or password", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to authenticate", err.Error())
		return
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenLifetime)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}
