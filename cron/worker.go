package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"campuscare/config"
	bookingRepo "campuscare/database/repository/booking"
	"campuscare/models"
	"campuscare/services/notification"
	"campuscare/services/tasks"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(bookings bookingRepo.BookingRepository, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(bookings, notifSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask fires a reminder notification unless the booking was
// cancelled after the task was enqueued.
func handleReminderTask(bookings bookingRepo.BookingRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		b, err := bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				log.Printf("[ReminderHandler] booking %s gone, skipping reminder", p.BookingID)
				return nil
			}
			return err
		}
		if !b.Active() {
			return nil
		}

		n := &models.Notification{
			StudentID: p.StudentID,
			Title:     p.Title,
		}
		if err := notifSvc.Create(ctx, n); err != nil {
			log.Printf("[ReminderHandler] failed to create reminder notification: %v", err)
			return err
		}
		return nil
	}
}
