package booking

import (
	"context"
	"errors"
	"time"

	"campuscare/models"
	"campuscare/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const defaultCutoffHours = 24

func (s *DefaultBookingService) cutoff() time.Duration {
	hours := s.CutoffHours
	if hours <= 0 {
		hours = defaultCutoffHours
	}
	return time.Duration(hours) * time.Hour
}

// Create validates and persists a new booking, returns it enriched with
// both display names, and emits the booking_created event. The overlap
// check and the insert are two separate calls; concurrent requests can
// race between them (see DESIGN.md).
func (s *DefaultBookingService) Create(ctx context.Context, in CreateInput) (*models.EnrichedBooking, error) {
	logger := utils.GetLogger()

	if in.CounselorID == "" || in.StudentID == "" {
		return nil, &ValidationError{Message: "counselor_id and student_id are required"}
	}
	if in.Start.IsZero() || in.End.IsZero() || !in.Start.Before(in.End) {
		return nil, &ValidationError{Message: "start must be before end"}
	}

	overlapping, err := s.Repo.ListActiveOverlapping(ctx, in.CounselorID, in.Start, in.End)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, &ConflictError{CounselorID: in.CounselorID}
	}

	b := &models.Booking{
		CounselorID: in.CounselorID,
		StudentID:   in.StudentID,
		Start:       in.Start.UTC(),
		End:         in.End.UTC(),
		Modality:    in.Modality,
		RequestedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, err
	}

	enriched := s.enrich(ctx, *b)

	if s.Events != nil {
		s.Events.BookingCreated(enriched)
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(*b); err != nil {
			logger.Warn("failed to schedule booking reminder",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}
	return &enriched, nil
}

// Reschedule moves a booking's interval in place. A booking inside the
// minimum-notice window, measured against its current start in UTC, may
// not be moved. The new interval is not re-checked against other active
// bookings; that matches the original behavior and is covered as a known
// gap in the tests.
func (s *DefaultBookingService) Reschedule(ctx context.Context, id string, start, end time.Time) (*models.EnrichedBooking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}

	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return nil, &ValidationError{Message: "start must be before end"}
	}
	if b.Start.UTC().Sub(time.Now().UTC()) < s.cutoff() {
		return nil, &CutoffError{Hours: int(s.cutoff().Hours())}
	}

	if err := s.Repo.UpdateTimes(ctx, id, start, end); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	b.Start = start.UTC()
	b.End = end.UTC()

	enriched := s.enrich(ctx, *b)
	if s.Events != nil {
		s.Events.BookingRescheduled(enriched)
	}
	return &enriched, nil
}

// Cancel removes the booking record and returns what was removed.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) (*models.EnrichedBooking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	enriched := s.enrich(ctx, *b)
	if s.Events != nil {
		s.Events.BookingCancelled(enriched)
	}
	return &enriched, nil
}

func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.EnrichedBooking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	enriched := s.enrich(ctx, *b)
	return &enriched, nil
}

func (s *DefaultBookingService) ListAll(ctx context.Context) ([]models.EnrichedBooking, error) {
	bookings, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, bookings), nil
}

// ListByUser projects bookings where the user holds the given role.
func (s *DefaultBookingService) ListByUser(ctx context.Context, userID, role string) ([]models.EnrichedBooking, error) {
	var (
		bookings []models.Booking
		err      error
	)
	if role == models.RoleCounselor {
		bookings, err = s.Repo.ListByCounselor(ctx, userID)
	} else {
		bookings, err = s.Repo.ListByStudent(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, bookings), nil
}

// ListInRange projects bookings where the user is either participant and
// the interval lies inside [from, to] inclusive.
func (s *DefaultBookingService) ListInRange(ctx context.Context, userID string, from, to time.Time) ([]models.EnrichedBooking, error) {
	bookings, err := s.Repo.ListByUserInRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, bookings), nil
}

// enrich attaches both display names. A lookup miss leaves the name empty
// rather than failing the read.
func (s *DefaultBookingService) enrich(ctx context.Context, b models.Booking) models.EnrichedBooking {
	out := models.EnrichedBooking{Booking: b}
	if s.Users == nil {
		return out
	}
	if c, err := s.Users.GetByID(ctx, b.CounselorID); err == nil {
		out.Counselor = c.DisplayName()
	}
	if st, err := s.Users.GetByID(ctx, b.StudentID); err == nil {
		out.Student = st.DisplayName()
	}
	return out
}

func (s *DefaultBookingService) enrichAll(ctx context.Context, bookings []models.Booking) []models.EnrichedBooking {
	out := make([]models.EnrichedBooking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, s.enrich(ctx, b))
	}
	return out
}
