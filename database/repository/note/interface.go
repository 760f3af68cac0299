// File: database/repository/note/interface.go
package noteRepo

import (
	"context"
	"fmt"

	"campuscare/database"
	"campuscare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NoteRepository holds counselor session notes.
type NoteRepository interface {
	Create(ctx context.Context, n *models.SessionNote) error
	ListByBooking(ctx context.Context, bookingID string) ([]models.SessionNote, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoNoteRepo struct {
	coll *mongo.Collection
}

// NewMongoNoteRepo constructs a new MongoDB NoteRepository.
func NewMongoNoteRepo() NoteRepository {
	repo := &mongoNoteRepo{
		coll: database.DB().Collection("session_notes"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
