package booking

import (
	"context"
	"time"

	bookingRepo "campuscare/database/repository/booking"
	userRepo "campuscare/database/repository/user"
	"campuscare/models"
)

// CreateInput carries the fields of a new booking request.
type CreateInput struct {
	CounselorID string    `json:"counselor_id"`
	StudentID   string    `json:"student_id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Modality    string    `json:"modality"`
}

// BookingService creates, reschedules and cancels bookings while keeping
// them consistent with derived availability.
type BookingService interface {
	Create(ctx context.Context, in CreateInput) (*models.EnrichedBooking, error)
	Reschedule(ctx context.Context, id string, start, end time.Time) (*models.EnrichedBooking, error)
	Cancel(ctx context.Context, id string) (*models.EnrichedBooking, error)

	GetByID(ctx context.Context, id string) (*models.EnrichedBooking, error)
	ListAll(ctx context.Context) ([]models.EnrichedBooking, error)
	ListByUser(ctx context.Context, userID, role string) ([]models.EnrichedBooking, error)
	ListInRange(ctx context.Context, userID string, from, to time.Time) ([]models.EnrichedBooking, error)
}

// EventSink receives completed booking mutations for real-time fan-out.
// Delivery is best effort; the sink never fails the mutation.
type EventSink interface {
	BookingCreated(b models.EnrichedBooking)
	BookingRescheduled(b models.EnrichedBooking)
	BookingCancelled(b models.EnrichedBooking)
}

// ReminderScheduler enqueues a reminder to fire before the booking starts.
type ReminderScheduler interface {
	ScheduleBookingReminder(b models.Booking) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	Users       userRepo.UserRepository
	Events      EventSink
	Reminders   ReminderScheduler
	CutoffHours int
}
