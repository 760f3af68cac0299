package availability

import (
	"time"

	"campuscare/models"
)

// weekdayLabels is indexed by time.Weekday (Sunday = 0). The mapping is a
// fixed table so it cannot drift with the host locale or calendar settings.
var weekdayLabels = [7]string{
	models.Sunday,
	models.Monday,
	models.Tuesday,
	models.Wednesday,
	models.Thursday,
	models.Friday,
	models.Saturday,
}

// Weekday maps a calendar date to one of the seven window labels.
func Weekday(date time.Time) string {
	return weekdayLabels[date.Weekday()]
}

// ValidWeekday reports whether label is one of the seven window labels.
func ValidWeekday(label string) bool {
	for _, d := range weekdayLabels {
		if d == label {
			return true
		}
	}
	return false
}
