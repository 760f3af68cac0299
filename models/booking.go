package models

import "time"

// Booking modality values.
const (
	ModalityInPerson = "in_person"
	ModalityVideo    = "video"
)

// Booking represents a one-hour counseling session booked by a student
// against a counselor's calendar. A booking is active until cancelled.
type Booking struct {
	ID          string     `bson:"id" json:"id"`
	CounselorID string     `bson:"counselor_id" json:"counselor_id"`
	StudentID   string     `bson:"student_id" json:"student_id"`
	Start       time.Time  `bson:"start" json:"start"` // UTC
	End         time.Time  `bson:"end" json:"end"`     // UTC, exclusive
	Modality    string     `bson:"modality" json:"modality"`
	RequestedAt time.Time  `bson:"requested_at" json:"requested_at"`
	ConfirmedAt *time.Time `bson:"confirmed_at,omitempty" json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
}

// Active reports whether the booking still occupies its interval.
func (b Booking) Active() bool {
	return b.CancelledAt == nil
}

// EnrichedBooking is a booking plus the display names of both participants,
// the shape returned by every read endpoint.
type EnrichedBooking struct {
	Booking
	Counselor string `json:"counselor"`
	Student   string `json:"student"`
}
