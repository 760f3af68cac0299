package availability

import (
	"context"
	"testing"
	"time"

	"campuscare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeWindowRepo serves windows from memory.
type fakeWindowRepo struct {
	windows []models.AvailabilityWindow
}

func (f *fakeWindowRepo) Create(ctx context.Context, w *models.AvailabilityWindow) error {
	f.windows = append(f.windows, *w)
	return nil
}

func (f *fakeWindowRepo) DeleteByID(ctx context.Context, id string) error { return nil }

func (f *fakeWindowRepo) ListByCounselor(ctx context.Context, counselorID string) ([]models.AvailabilityWindow, error) {
	var out []models.AvailabilityWindow
	for _, w := range f.windows {
		if w.CounselorID == counselorID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWindowRepo) ListByCounselorAndWeekday(ctx context.Context, counselorID, weekday string) ([]models.AvailabilityWindow, error) {
	var out []models.AvailabilityWindow
	for _, w := range f.windows {
		if w.CounselorID == counselorID && w.Weekday == weekday {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWindowRepo) ListWeekdays(ctx context.Context, counselorID string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, w := range f.windows {
		if w.CounselorID != counselorID {
			continue
		}
		if _, ok := seen[w.Weekday]; ok {
			continue
		}
		seen[w.Weekday] = struct{}{}
		out = append(out, w.Weekday)
	}
	return out, nil
}

// fakeBookingRepo serves bookings from memory. Only the read methods the
// slot engine touches are meaningful.
type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeBookingRepo) UpdateTimes(ctx context.Context, id string, start, end time.Time) error {
	return nil
}

func (f *fakeBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) ListByCounselor(ctx context.Context, counselorID string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) ListActiveByCounselorOnDate(ctx context.Context, counselorID string, date time.Time) ([]models.Booking, error) {
	var out []models.Booking
	d := date.UTC()
	for _, b := range f.bookings {
		if b.CounselorID != counselorID || !b.Active() {
			continue
		}
		s := b.Start.UTC()
		if s.Year() == d.Year() && s.Month() == d.Month() && s.Day() == d.Day() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListActiveOverlapping(ctx context.Context, counselorID string, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CounselorID == counselorID && b.Active() && b.Start.Before(end) && start.Before(b.End) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountActiveOnDate(ctx context.Context, counselorID string, date time.Time) (int64, error) {
	list, _ := f.ListActiveByCounselorOnDate(ctx, counselorID, date)
	return int64(len(list)), nil
}

func newService(windows []models.AvailabilityWindow, bookings []models.Booking) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Windows:  &fakeWindowRepo{windows: windows},
		Bookings: &fakeBookingRepo{bookings: bookings},
	}
}

// 2026-03-02 is a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func window(counselor, weekday, start, end string) models.AvailabilityWindow {
	return models.AvailabilityWindow{ID: "w-" + start, CounselorID: counselor, Weekday: weekday, Start: start, End: end}
}

func booking(counselor string, start, end time.Time) models.Booking {
	return models.Booking{ID: "b-" + start.Format("15:04"), CounselorID: counselor, StudentID: "stu", Start: start, End: end}
}

func TestWeekdayMapping(t *testing.T) {
	// 2026-03-01 is a Sunday; the following six days cover the week.
	labels := []string{
		models.Sunday, models.Monday, models.Tuesday, models.Wednesday,
		models.Thursday, models.Friday, models.Saturday,
	}
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, want := range labels {
		assert.Equal(t, want, Weekday(base.AddDate(0, 0, i)))
	}
}

func TestFreeSlotsSplitsWindow(t *testing.T) {
	svc := newService(
		[]models.AvailabilityWindow{window("c1", models.Monday, "09:00:00", "12:00:00")},
		nil,
	)

	slots, err := svc.FreeSlots(context.Background(), "c1", monday)
	require.NoError(t, err)
	assert.Equal(t, []models.Slot{
		{Start: "09:00:00", End: "10:00:00"},
		{Start: "10:00:00", End: "11:00:00"},
		{Start: "11:00:00", End: "12:00:00"},
	}, slots)
}

func TestFreeSlotsExcludesBookedSlot(t *testing.T) {
	svc := newService(
		[]models.AvailabilityWindow{window("c1", models.Monday, "09:00:00", "12:00:00")},
		[]models.Booking{booking("c1", monday.Add(10*time.Hour), monday.Add(11*time.Hour))},
	)

	slots, err := svc.FreeSlots(context.Background(), "c1", monday)
	require.NoError(t, err)
	assert.Equal(t, []models.Slot{
		{Start: "09:00:00", End: "10:00:00"},
		{Start: "11:00:00", End: "12:00:00"},
	}, slots)
}

func TestFreeSlotsIgnoresBookingOutsideWindows(t *testing.T) {
	svc := newService(
		[]models.AvailabilityWindow{window("c1", models.Monday, "09:00:00", "11:00:00")},
		[]models.Booking{booking("c1", monday.Add(15*time.Hour), monday.Add(16*time.Hour))},
	)

	slots, err := svc.FreeSlots(context.Background(), "c1", monday)
	require.NoError(t, err)
	assert.Len(t, slots, 2)
}

func TestFreeSlotsIgnoresCancelledBooking(t *testing.T) {
	cancelled := booking("c1", monday.Add(9*time.Hour), monday.Add(10*time.Hour))
	now := time.Now()
	cancelled.CancelledAt = &now

	svc := newService(
		[]models.AvailabilityWindow{window("c1", models.Monday, "09:00:00", "10:00:00")},
		[]models.Booking{cancelled},
	)

	slots, err := svc.FreeSlots(context.Background(), "c1", monday)
	require.NoError(t, err)
	assert.Equal(t, []models.Slot{{Start: "09:00:00", End: "10:00:00"}}, slots)
}

func TestFreeSlotsDeduplicatesOverlappingWindows(t *testing.T) {
	svc := newService(
		[]models.AvailabilityWindow{
			window("c1", models.Monday, "09:00:00", "11:00:00"),
			window("c1", models.Monday, "10:00:00", "12:00:00"),
		},
		nil,
	)

	slots, err := svc.FreeSlots(context.Background(), "c1", monday)
	require.NoError(t, err)
	assert.Equal(t, []models.Slot{
		{Start: "09:00:00", End: "10:00:00"},
		{Start: "10:00:00", End: "11:00:00"},
		{Start: "11:00:00", End: "12:00:00"},
	}, slots)
}

func TestFreeSlotsNoWindows(t *testing.T) {
	svc := newService(nil, nil)

	slots, err := svc.FreeSlots(context.Background(), "c1", monday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFreeSlotsPure(t *testing.T) {
	svc := newService(
		[]models.AvailabilityWindow{window("c1", models.Monday, "09:00:00", "12:00:00")},
		[]models.Booking{booking("c1", monday.Add(10*time.Hour), monday.Add(11*time.Hour))},
	)

	first, err := svc.FreeSlots(context.Background(), "c1", monday)
	require.NoError(t, err)
	second, err := svc.FreeSlots(context.Background(), "c1", monday)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFreeDates(t *testing.T) {
	// Windows on MONDAY and FRIDAY; Friday 2026-03-06 carries a booking.
	friday := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	svc := newService(
		[]models.AvailabilityWindow{
			window("c1", models.Monday, "09:00:00", "12:00:00"),
			window("c1", models.Friday, "09:00:00", "12:00:00"),
		},
		[]models.Booking{booking("c1", friday.Add(9*time.Hour), friday.Add(10*time.Hour))},
	)

	dates, err := svc.FreeDates(context.Background(), "c1", monday, monday.AddDate(0, 0, 6))
	require.NoError(t, err)

	// Only the Monday survives: other weekdays are unconfigured and the
	// Friday is taken. Order is newest first.
	assert.Equal(t, []string{"2026-03-02"}, dates)
}

func TestFreeDatesDescending(t *testing.T) {
	svc := newService(
		[]models.AvailabilityWindow{
			window("c1", models.Monday, "09:00:00", "12:00:00"),
			window("c1", models.Tuesday, "09:00:00", "12:00:00"),
		},
		nil,
	)

	dates, err := svc.FreeDates(context.Background(), "c1", monday, monday.AddDate(0, 0, 8))
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-10", "2026-03-09", "2026-03-03", "2026-03-02"}, dates)
}
