package models

import "time"

// SessionNote is a counselor's written observation attached to a booking.
type SessionNote struct {
	ID          string    `bson:"id" json:"id"`
	BookingID   string    `bson:"booking_id" json:"booking_id"`
	CounselorID string    `bson:"counselor_id" json:"counselor_id"`
	Text        string    `bson:"text" json:"text"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
