package booking

import "fmt"

// ValidationError rejects a request with missing or malformed required
// fields before anything is persisted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NotFoundError signals that the referenced booking does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.ID)
}

// ConflictError signals that the requested interval overlaps an active
// booking for the same counselor. Business-rule rejection, never retried.
type ConflictError struct {
	CounselorID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("interval overlaps an active booking for counselor %s", e.CounselorID)
}

// CutoffError signals a reschedule attempt inside the minimum-notice
// window, measured against the booking's current start time.
type CutoffError struct {
	Hours int
}

func (e *CutoffError) Error() string {
	return fmt.Sprintf("booking starts in less than %dh and can no longer be moved", e.Hours)
}
