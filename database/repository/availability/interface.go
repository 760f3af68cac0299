// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"fmt"

	"campuscare/database"
	"campuscare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository holds the recurring weekly windows of each counselor.
type AvailabilityRepository interface {
	Create(ctx context.Context, w *models.AvailabilityWindow) error
	DeleteByID(ctx context.Context, id string) error
	ListByCounselor(ctx context.Context, counselorID string) ([]models.AvailabilityWindow, error)
	ListByCounselorAndWeekday(ctx context.Context, counselorID, weekday string) ([]models.AvailabilityWindow, error)
	ListWeekdays(ctx context.Context, counselorID string) ([]string, error)
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	repo := &mongoAvailabilityRepo{
		coll: database.DB().Collection("availability_windows"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
