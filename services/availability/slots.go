package availability

import (
	"context"
	"sort"
	"time"

	"campuscare/models"
	"campuscare/utils"

	"go.uber.org/zap"
)

// slotLength is the fixed booking granularity.
const slotLength = time.Hour

// FreeSlots computes the bookable one-hour slots for a counselor on a
// calendar date: each configured window for the date's weekday is walked in
// one-hour steps, and a candidate slot survives unless it overlaps an active
// booking under the half-open test slot.start < b.end && b.start < slot.end.
// Overlapping windows may produce the same slot twice; duplicates are
// removed. The result is chronological. No windows means an empty result,
// not an error.
func (s *DefaultAvailabilityService) FreeSlots(ctx context.Context, counselorID string, date time.Time) ([]models.Slot, error) {
	logger := utils.GetLogger()
	day := Weekday(date)

	windows, err := s.Windows.ListByCounselorAndWeekday(ctx, counselorID, day)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.ListActiveByCounselorOnDate(ctx, counselorID, date)
	if err != nil {
		return nil, err
	}

	d := date.UTC()
	dayStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)

	seen := make(map[models.Slot]struct{})
	var free []models.Slot
	for _, w := range windows {
		winStart, err := parseClock(w.Start)
		if err != nil {
			logger.Warn("skipping malformed availability window",
				zap.String("windowID", w.ID), zap.Error(err))
			continue
		}
		winEnd, err := parseClock(w.End)
		if err != nil {
			logger.Warn("skipping malformed availability window",
				zap.String("windowID", w.ID), zap.Error(err))
			continue
		}

		for step := winStart; step+slotLength <= winEnd; step += slotLength {
			slotStart := dayStart.Add(step)
			slotEnd := slotStart.Add(slotLength)

			occupied := false
			for _, b := range bookings {
				if slotStart.Before(b.End) && b.Start.Before(slotEnd) {
					occupied = true
					break
				}
			}
			if occupied {
				continue
			}

			slot := models.Slot{Start: formatClock(step), End: formatClock(step + slotLength)}
			if _, dup := seen[slot]; dup {
				continue
			}
			seen[slot] = struct{}{}
			free = append(free, slot)
		}
	}

	// "HH:MM:SS" sorts lexicographically in chronological order.
	sort.Slice(free, func(i, j int) bool { return free[i].Start < free[j].Start })
	return free, nil
}

// FreeDates lists, newest first, the dates in [from, to] whose weekday has
// at least one configured window and which carry no active booking at all.
// This is a coarser existence check than FreeSlots, kept consistent with it
// through the shared Weekday mapping.
func (s *DefaultAvailabilityService) FreeDates(ctx context.Context, counselorID string, from, to time.Time) ([]string, error) {
	days, err := s.Windows.ListWeekdays(ctx, counselorID)
	if err != nil {
		return nil, err
	}
	configured := make(map[string]struct{}, len(days))
	for _, d := range days {
		configured[d] = struct{}{}
	}

	f := from.UTC()
	start := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	t := to.UTC()
	end := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	var free []string
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		if _, ok := configured[Weekday(cur)]; !ok {
			continue
		}
		count, err := s.Bookings.CountActiveOnDate(ctx, counselorID, cur)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			free = append(free, cur.Format("2006-01-02"))
		}
	}

	// Descending, matching the calendar UI's expectation.
	sort.Sort(sort.Reverse(sort.StringSlice(free)))
	return free, nil
}
