// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"campuscare/database"
	"campuscare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository holds booking records.
type BookingRepository interface {
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
	UpdateTimes(ctx context.Context, id string, start, end time.Time) error

	ListAll(ctx context.Context) ([]models.Booking, error)
	ListByCounselor(ctx context.Context, counselorID string) ([]models.Booking, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Booking, error)
	ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]models.Booking, error)

	ListActiveByCounselorOnDate(ctx context.Context, counselorID string, date time.Time) ([]models.Booking, error)
	ListActiveOverlapping(ctx context.Context, counselorID string, start, end time.Time) ([]models.Booking, error)
	CountActiveOnDate(ctx context.Context, counselorID string, date time.Time) (int64, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	repo := &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
