package handlers

import (
	"errors"
	"net/http"
	"time"

	"campuscare/models"
	"campuscare/services/availability"
	"campuscare/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityHandler serves window CRUD and the derived slot/date queries.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// CreateWindowHandler registers a recurring weekly window.
func (h *AvailabilityHandler) CreateWindowHandler(c *gin.Context) {
	var input models.AvailabilityWindow
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.CreateWindow(c.Request.Context(), &input); err != nil {
		var invalid *availability.InvalidWindowError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusBadRequest, "invalid availability window", invalid.Message)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create availability window", err.Error())
		return
	}
	c.JSON(http.StatusCreated, input)
}

// DeleteWindowHandler removes a window.
func (h *AvailabilityHandler) DeleteWindowHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteWindow(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "availability window not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete availability window", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// ListWindowsHandler returns every window a counselor configured.
func (h *AvailabilityHandler) ListWindowsHandler(c *gin.Context) {
	windows, err := h.Service.ListWindows(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list availability windows", err.Error())
		return
	}
	c.JSON(http.StatusOK, windows)
}

// ListWeekdaysHandler returns the distinct weekdays a counselor works.
func (h *AvailabilityHandler) ListWeekdaysHandler(c *gin.Context) {
	days, err := h.Service.ListWeekdays(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list weekdays", err.Error())
		return
	}
	c.JSON(http.StatusOK, days)
}

// FreeSlotsHandler returns the bookable one-hour slots for a date.
func (h *AvailabilityHandler) FreeSlotsHandler(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	slots, err := h.Service.FreeSlots(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute free slots", err.Error())
		return
	}
	if slots == nil {
		slots = []models.Slot{}
	}
	c.JSON(http.StatusOK, slots)
}

// FreeDatesHandler returns, newest first, the dates in a range with
// configured windows and no bookings.
func (h *AvailabilityHandler) FreeDatesHandler(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid from date", "expected YYYY-MM-DD")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid to date", "expected YYYY-MM-DD")
		return
	}

	dates, err := h.Service.FreeDates(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute free dates", err.Error())
		return
	}
	if dates == nil {
		dates = []string{}
	}
	c.JSON(http.StatusOK, dates)
}
