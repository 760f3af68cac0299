package models

// Weekday labels used on availability windows. The mapping from a calendar
// date to one of these is done by services/availability.Weekday and never
// by locale-dependent formatting.
const (
	Monday    = "MONDAY"
	Tuesday   = "TUESDAY"
	Wednesday = "WEDNESDAY"
	Thursday  = "THURSDAY"
	Friday    = "FRIDAY"
	Saturday  = "SATURDAY"
	Sunday    = "SUNDAY"
)

// AvailabilityWindow is one recurring weekly interval in which a counselor
// accepts bookings. Times are wall-clock "HH:MM:SS" strings; Start must be
// before End. Windows of the same weekday may overlap, the slot engine
// de-duplicates downstream.
type AvailabilityWindow struct {
	ID          string `bson:"id" json:"id"`
	CounselorID string `bson:"counselor_id" json:"counselor_id"`
	Weekday     string `bson:"weekday" json:"weekday"`
	Start       string `bson:"start" json:"start"`
	End         string `bson:"end" json:"end"`
}
