package notification

import (
	"testing"
	"time"

	"campuscare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enriched(counselorID, studentID string) models.EnrichedBooking {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return models.EnrichedBooking{
		Booking: models.Booking{
			ID:          "b1",
			CounselorID: counselorID,
			StudentID:   studentID,
			Start:       start,
			End:         start.Add(time.Hour),
		},
		Counselor: "Cleo Okoye",
		Student:   "Sam Ngala",
	}
}

func newTestDispatcher() (*Dispatcher, *memNotificationRepo, *recordingHub) {
	repo := newMemNotificationRepo()
	hub := newRecordingHub()
	svc := &DefaultNotificationService{Repo: repo, Hub: hub}
	return &Dispatcher{Hub: hub, Notifications: svc}, repo, hub
}

func TestBookingCreatedPushesWithoutPersisting(t *testing.T) {
	d, repo, hub := newTestDispatcher()

	d.BookingCreated(enriched("c1", "stu"))

	// The booking record is the durable artifact; no inbox entry exists.
	assert.Empty(t, repo.notifications)
	require.Len(t, hub.delivered["stu"], 1)
	require.Len(t, hub.delivered["c1"], 1)
	assert.Equal(t, models.EventBookingCreated, hub.delivered["stu"][0].Type)
}

func TestBookingCreatedSameParticipantOnce(t *testing.T) {
	d, _, hub := newTestDispatcher()

	d.BookingCreated(enriched("u1", "u1"))

	assert.Len(t, hub.delivered["u1"], 1)
}

func TestBookingRescheduledPersistsAndFansOut(t *testing.T) {
	d, repo, hub := newTestDispatcher()

	d.BookingRescheduled(enriched("c1", "stu"))

	require.Len(t, repo.notifications, 1)
	for _, n := range repo.notifications {
		assert.Contains(t, n.Title, "moved to 2026-03-02 10:00")
		assert.Equal(t, "stu", n.StudentID)
		assert.Equal(t, "c1", n.CounselorID)
	}
	require.Len(t, hub.delivered["stu"], 1)
	assert.Equal(t, models.EventNotificationNew, hub.delivered["stu"][0].Type)
	require.Len(t, hub.delivered["c1"], 1)
}

func TestBookingCancelledPersistsAndFansOut(t *testing.T) {
	d, repo, hub := newTestDispatcher()

	d.BookingCancelled(enriched("c1", "stu"))

	require.Len(t, repo.notifications, 1)
	for _, n := range repo.notifications {
		assert.Contains(t, n.Title, "cancelled")
	}
	assert.Len(t, hub.delivered["stu"], 1)
	assert.Len(t, hub.delivered["c1"], 1)
}

func TestAlertRaisedCarriesStudentIdentity(t *testing.T) {
	d, _, hub := newTestDispatcher()

	alert := models.Alert{ID: "a1", StudentID: "stu", Text: "need help", Severity: models.SeverityHigh}
	student := models.User{ID: "stu", FirstName: "Sam", LastName: "Ngala", Email: "sam@campuscare.local"}

	d.AlertRaised("c1", alert, student)

	events := hub.delivered["c1"]
	require.Len(t, events, 1)
	assert.Equal(t, models.EventAlertNew, events[0].Type)
	data := events[0].Data.(map[string]any)
	assert.Equal(t, "Sam Ngala", data["student_name"])
	assert.Equal(t, "sam@campuscare.local", data["student_email"])
	assert.Equal(t, "a1", data["id"])
}
