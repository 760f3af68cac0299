package models

import "time"

// Notification is a persisted inbox entry. Either participant id may be
// unset; the set ones decide who the real-time fan-out reaches.
type Notification struct {
	ID          string    `bson:"id" json:"id"`
	StudentID   string    `bson:"student_id,omitempty" json:"student_id,omitempty"`
	CounselorID string    `bson:"counselor_id,omitempty" json:"counselor_id,omitempty"`
	Title       string    `bson:"title" json:"title"`
	Read        bool      `bson:"read" json:"read"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Recipients returns the de-duplicated participant ids of the notification.
func (n Notification) Recipients() []string {
	var out []string
	if n.StudentID != "" {
		out = append(out, n.StudentID)
	}
	if n.CounselorID != "" && n.CounselorID != n.StudentID {
		out = append(out, n.CounselorID)
	}
	return out
}
