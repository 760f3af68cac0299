package availability

import (
	"context"
	"fmt"

	"campuscare/models"
)

// CreateWindow validates and stores a new recurring window.
func (s *DefaultAvailabilityService) CreateWindow(ctx context.Context, w *models.AvailabilityWindow) error {
	if w.CounselorID == "" {
		return &InvalidWindowError{Message: "counselor_id is required"}
	}
	if !ValidWeekday(w.Weekday) {
		return &InvalidWindowError{Message: fmt.Sprintf("unknown weekday %q", w.Weekday)}
	}
	start, err := parseClock(w.Start)
	if err != nil {
		return &InvalidWindowError{Message: err.Error()}
	}
	end, err := parseClock(w.End)
	if err != nil {
		return &InvalidWindowError{Message: err.Error()}
	}
	if start >= end {
		return &InvalidWindowError{Message: fmt.Sprintf("start %s must be before end %s", w.Start, w.End)}
	}
	return s.Windows.Create(ctx, w)
}

// DeleteWindow removes a window by id.
func (s *DefaultAvailabilityService) DeleteWindow(ctx context.Context, id string) error {
	return s.Windows.DeleteByID(ctx, id)
}

// ListWindows returns all windows configured by a counselor.
func (s *DefaultAvailabilityService) ListWindows(ctx context.Context, counselorID string) ([]models.AvailabilityWindow, error) {
	return s.Windows.ListByCounselor(ctx, counselorID)
}

// ListWeekdays returns the distinct weekdays the counselor works.
func (s *DefaultAvailabilityService) ListWeekdays(ctx context.Context, counselorID string) ([]string, error) {
	return s.Windows.ListWeekdays(ctx, counselorID)
}
