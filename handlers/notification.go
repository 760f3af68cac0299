package handlers

import (
	"net/http"

	"campuscare/models"
	"campuscare/services/notification"
	"campuscare/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the inbox endpoints.
type NotificationHandler struct {
	Service notification.NotificationService
}

// NewNotificationHandler constructs a NotificationHandler.
func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// CreateNotificationHandler persists a notification and fans it out.
func (h *NotificationHandler) CreateNotificationHandler(c *gin.Context) {
	var input struct {
		StudentID   string `json:"student_id"`
		CounselorID string `json:"counselor_id"`
		Title       string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	n := &models.Notification{
		StudentID:   input.StudentID,
		CounselorID: input.CounselorID,
		Title:       input.Title,
	}
	if err := h.Service.Create(c.Request.Context(), n); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create notification", err.Error())
		return
	}
	c.JSON(http.StatusCreated, n)
}

// ListNotificationsHandler returns a user's inbox, newest first.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	notifications, err := h.Service.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkReadHandler flips the read flag.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	n, err := h.Service.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		if notification.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "notification not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to mark notification read", err.Error())
		return
	}
	c.JSON(http.StatusOK, n)
}

// DeleteNotificationHandler removes one notification.
func (h *NotificationHandler) DeleteNotificationHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if notification.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "notification not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete notification", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearNotificationsHandler removes a user's whole inbox.
func (h *NotificationHandler) ClearNotificationsHandler(c *gin.Context) {
	if err := h.Service.ClearForUser(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear notifications", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
