package handlers

import (
	"errors"
	"net/http"

	"campuscare/models"
	"campuscare/services/alert"
	"campuscare/utils"

	"github.com/gin-gonic/gin"
)

// AlertHandler serves the alert endpoints.
type AlertHandler struct {
	Service alert.AlertService
}

// NewAlertHandler constructs an AlertHandler.
func NewAlertHandler(svc alert.AlertService) *AlertHandler {
	return &AlertHandler{Service: svc}
}

// CreateAlertHandler raises an alert and fans it out to staff.
func (h *AlertHandler) CreateAlertHandler(c *gin.Context) {
	var input struct {
		StudentID string `json:"student_id" binding:"required"`
		Text      string `json:"text" binding:"required"`
		Severity  string `json:"severity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	a := &models.Alert{
		StudentID: input.StudentID,
		Text:      input.Text,
		Severity:  input.Severity,
	}
	if err := h.Service.Create(c.Request.Context(), a); err != nil {
		var notFound *alert.StudentNotFoundError
		if errors.As(err, &notFound) {
			utils.JSONError(c, http.StatusNotFound, "student not found", input.StudentID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create alert", err.Error())
		return
	}
	c.JSON(http.StatusCreated, a)
}

// ListAlertsHandler returns every alert, newest first.
func (h *AlertHandler) ListAlertsHandler(c *gin.Context) {
	alerts, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list alerts", err.Error())
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// ListStudentAlertsHandler returns one student's alerts, newest first.
func (h *AlertHandler) ListStudentAlertsHandler(c *gin.Context) {
	alerts, err := h.Service.ListByStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list alerts", err.Error())
		return
	}
	c.JSON(http.StatusOK, alerts)
}
