// Package note manages counselor session notes attached to bookings.
package note

import (
	"context"

	noteRepo "campuscare/database/repository/note"
	"campuscare/models"
)

// NoteService manages session notes.
type NoteService interface {
	Create(ctx context.Context, n *models.SessionNote) error
	ListByBooking(ctx context.Context, bookingID string) ([]models.SessionNote, error)
	Delete(ctx context.Context, id string) error
}

// DefaultNoteService is the production implementation.
type DefaultNoteService struct {
	Repo noteRepo.NoteRepository
}

func (s *DefaultNoteService) Create(ctx context.Context, n *models.SessionNote) error {
	return s.Repo.Create(ctx, n)
}

func (s *DefaultNoteService) ListByBooking(ctx context.Context, bookingID string) ([]models.SessionNote, error) {
	return s.Repo.ListByBooking(ctx, bookingID)
}

func (s *DefaultNoteService) Delete(ctx context.Context, id string) error {
	return s.Repo.DeleteByID(ctx, id)
}
