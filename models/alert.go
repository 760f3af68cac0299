package models

import "time"

// Alert severities.
const (
	SeverityHigh   = "HIGH"
	SeverityMedium = "MEDIUM"
	SeverityLow    = "LOW"
)

// Alert is raised on behalf of a student and fanned out to every admin
// and counselor account.
type Alert struct {
	ID        string    `bson:"id" json:"id"`
	StudentID string    `bson:"student_id" json:"student_id"`
	Text      string    `bson:"text" json:"text"`
	Severity  string    `bson:"severity" json:"severity"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
