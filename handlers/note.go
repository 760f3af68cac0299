package handlers

import (
	"errors"
	"net/http"

	"campuscare/models"
	"campuscare/services/note"
	"campuscare/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// NoteHandler serves the session-note endpoints.
type NoteHandler struct {
	Service note.NoteService
}

// NewNoteHandler constructs a NoteHandler.
func NewNoteHandler(svc note.NoteService) *NoteHandler {
	return &NoteHandler{Service: svc}
}

// CreateNoteHandler attaches a note to a booking.
func (h *NoteHandler) CreateNoteHandler(c *gin.Context) {
	var input struct {
		BookingID   string `json:"booking_id" binding:"required"`
		CounselorID string `json:"counselor_id" binding:"required"`
		Text        string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	n := &models.SessionNote{
		BookingID:   input.BookingID,
		CounselorID: input.CounselorID,
		Text:        input.Text,
	}
	if err := h.Service.Create(c.Request.Context(), n); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create session note", err.Error())
		return
	}
	c.JSON(http.StatusCreated, n)
}

// ListNotesHandler returns a booking's notes in creation order.
func (h *NoteHandler) ListNotesHandler(c *gin.Context) {
	notes, err := h.Service.ListByBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list session notes", err.Error())
		return
	}
	c.JSON(http.StatusOK, notes)
}

// DeleteNoteHandler removes a note.
func (h *NoteHandler) DeleteNoteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "session note not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete session note", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
