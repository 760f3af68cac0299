package notification

import (
	"context"
	"fmt"

	"campuscare/models"
	"campuscare/utils"

	"go.uber.org/zap"
)

// Dispatcher translates completed domain mutations into events on the
// real-time channel. It is only ever handed records that are already
// durable, so a lost push leaves nothing inconsistent behind.
type Dispatcher struct {
	Hub           Deliverer
	Notifications NotificationService
}

// BookingCreated announces a new booking to both participants. The booking
// itself is the durable record; no inbox entry is written.
func (d *Dispatcher) BookingCreated(b models.EnrichedBooking) {
	ev := models.Event{Type: models.EventBookingCreated, Data: b}
	for _, uid := range bookingRecipients(b) {
		d.Hub.Deliver(uid, ev)
	}
}

// BookingRescheduled writes an inbox entry for both participants; the
// notification service fans each one out as notification_new.
func (d *Dispatcher) BookingRescheduled(b models.EnrichedBooking) {
	title := fmt.Sprintf("Session with %s moved to %s",
		b.Counselor, b.Start.Format("2006-01-02 15:04"))
	d.notifyParticipants(b, title)
}

// BookingCancelled writes an inbox entry for both participants.
func (d *Dispatcher) BookingCancelled(b models.EnrichedBooking) {
	title := fmt.Sprintf("Session on %s was cancelled",
		b.Start.Format("2006-01-02 15:04"))
	d.notifyParticipants(b, title)
}

func (d *Dispatcher) notifyParticipants(b models.EnrichedBooking, title string) {
	n := &models.Notification{
		StudentID:   b.StudentID,
		CounselorID: b.CounselorID,
		Title:       title,
	}
	if err := d.Notifications.Create(context.Background(), n); err != nil {
		utils.GetLogger().Warn("failed to record booking notification",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}

// AlertRaised pushes the dedicated alert_new event to one recipient. The
// matching inbox entry has already been persisted and announced by the
// alert service.
func (d *Dispatcher) AlertRaised(recipientID string, a models.Alert, student models.User) {
	d.Hub.Deliver(recipientID, models.Event{
		Type: models.EventAlertNew,
		Data: map[string]any{
			"id":            a.ID,
			"student_id":    a.StudentID,
			"text":          a.Text,
			"severity":      a.Severity,
			"created_at":    a.CreatedAt,
			"student_name":  student.DisplayName(),
			"student_email": student.Email,
		},
	})
}

func bookingRecipients(b models.EnrichedBooking) []string {
	out := []string{b.StudentID}
	if b.CounselorID != "" && b.CounselorID != b.StudentID {
		out = append(out, b.CounselorID)
	}
	return out
}
