package models

// Slot is a computed, non-persisted one-hour booking opportunity on a
// specific date. Times are wall-clock "HH:MM:SS" strings.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
