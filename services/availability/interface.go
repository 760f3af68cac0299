package availability

import (
	"context"
	"time"

	availabilityRepo "campuscare/database/repository/availability"
	bookingRepo "campuscare/database/repository/booking"
	"campuscare/models"
)

// AvailabilityService manages recurring windows and derives bookable slots
// and free dates from them.
type AvailabilityService interface {
	CreateWindow(ctx context.Context, w *models.AvailabilityWindow) error
	DeleteWindow(ctx context.Context, id string) error
	ListWindows(ctx context.Context, counselorID string) ([]models.AvailabilityWindow, error)
	ListWeekdays(ctx context.Context, counselorID string) ([]string, error)

	FreeSlots(ctx context.Context, counselorID string, date time.Time) ([]models.Slot, error)
	FreeDates(ctx context.Context, counselorID string, from, to time.Time) ([]string, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Windows  availabilityRepo.AvailabilityRepository
	Bookings bookingRepo.BookingRepository
}
