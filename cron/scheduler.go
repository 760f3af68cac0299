package cron

import (
	"fmt"
	"time"

	"campuscare/config"
	"campuscare/models"
	"campuscare/services/tasks"

	"github.com/hibiken/asynq"
)

// reminderLead is how long before a booking's start the reminder fires.
const reminderLead = 24 * time.Hour

// ReminderScheduler enqueues reminder tasks on the asynq queue.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler connects a scheduler to the reminder queue.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleBookingReminder enqueues a reminder for the booking's student,
// firing 24h before the session. Bookings starting sooner than that get
// no reminder.
func (s *ReminderScheduler) ScheduleBookingReminder(b models.Booking) error {
	fireAt := b.Start.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: b.ID,
		StudentID: b.StudentID,
		Title:     fmt.Sprintf("Reminder: counseling session tomorrow at %s", b.Start.Format("15:04")),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", b.ID, err)
	}
	return nil
}
