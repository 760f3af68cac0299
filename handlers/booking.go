package handlers

import (
	"errors"
	"net/http"
	"time"

	"campuscare/models"
	"campuscare/services/booking"
	"campuscare/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the booking state machine endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler books a session. Overlapping intervals answer 409,
// missing participant ids 400.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input booking.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		var validation *booking.ValidationError
		var conflict *booking.ConflictError
		switch {
		case errors.As(err, &validation):
			utils.JSONError(c, http.StatusBadRequest, "invalid booking", validation.Message)
		case errors.As(err, &conflict):
			utils.JSONError(c, http.StatusConflict, "booking conflict", conflict.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// RescheduleBookingHandler moves a booking. Unknown ids and bookings
// inside the cutoff window share one not-found-or-not-allowed answer.
func (h *BookingHandler) RescheduleBookingHandler(c *gin.Context) {
	var input struct {
		Start time.Time `json:"start" binding:"required"`
		End   time.Time `json:"end" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.Reschedule(c.Request.Context(), c.Param("id"), input.Start, input.End)
	if err != nil {
		var notFound *booking.NotFoundError
		var cutoff *booking.CutoffError
		var validation *booking.ValidationError
		switch {
		case errors.As(err, &notFound), errors.As(err, &cutoff):
			utils.JSONError(c, http.StatusNotFound, "booking not found or cannot be rescheduled", err.Error())
		case errors.As(err, &validation):
			utils.JSONError(c, http.StatusBadRequest, "invalid booking", validation.Message)
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to reschedule booking", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CancelBookingHandler removes a booking.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	if _, err := h.Service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		var notFound *booking.NotFoundError
		if errors.As(err, &notFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetBookingHandler returns one enriched booking.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		var notFound *booking.NotFoundError
		if errors.As(err, &notFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookingsHandler returns every booking, enriched.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListStudentBookingsHandler returns the bookings a student requested.
func (h *BookingHandler) ListStudentBookingsHandler(c *gin.Context) {
	h.listByUser(c, models.RoleStudent)
}

// ListCounselorBookingsHandler returns the bookings on a counselor's calendar.
func (h *BookingHandler) ListCounselorBookingsHandler(c *gin.Context) {
	h.listByUser(c, models.RoleCounselor)
}

func (h *BookingHandler) listByUser(c *gin.Context, role string) {
	bookings, err := h.Service.ListByUser(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CalendarHandler returns a user's bookings inside an inclusive date range.
func (h *BookingHandler) CalendarHandler(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "user_id is required", "")
		return
	}
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
	// Include the whole final day.
	to = to.AddDate(0, 0, 1)

	bookings, err := h.Service.ListInRange(c.Request.Context(), userID, from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}
