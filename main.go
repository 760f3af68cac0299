// File: campuscare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campuscare/config"
	"campuscare/cron"
	"campuscare/database"
	alertRepoPkg "campuscare/database/repository/alert"
	availabilityRepoPkg "campuscare/database/repository/availability"
	bookingRepoPkg "campuscare/database/repository/booking"
	noteRepoPkg "campuscare/database/repository/note"
	notificationRepoPkg "campuscare/database/repository/notification"
	userRepoPkg "campuscare/database/repository/user"
	"campuscare/handlers"
	"campuscare/middleware"
	"campuscare/routes"
	"campuscare/services/alert"
	"campuscare/services/availability"
	"campuscare/services/booking"
	"campuscare/services/note"
	"campuscare/services/notification"
	"campuscare/services/realtime"
	"campuscare/services/user"
	"campuscare/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	alertRepo := alertRepoPkg.NewMongoAlertRepo()
	noteRepo := noteRepoPkg.NewMongoNoteRepo()

	// The hub is process-wide; everything that pushes events shares it.
	hub := realtime.NewHub()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Repo:  notificationRepo,
		Hub:   hub,
		Cache: utils.GetCacheClient(),
	}

	dispatcher := &notification.Dispatcher{
		Hub:           hub,
		Notifications: notificationService,
	}

	reminderScheduler := cron.NewReminderScheduler()

	availabilityService := &availability.DefaultAvailabilityService{
		Windows:  availabilityRepo,
		Bookings: bookingRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:        bookingRepo,
		Users:       userRepo,
		Events:      dispatcher,
		Reminders:   reminderScheduler,
		CutoffHours: config.AppConfig.RescheduleCutoffHours,
	}

	alertService := &alert.DefaultAlertService{
		Repo:          alertRepo,
		Users:         userRepo,
		Notifications: notificationService,
		Dispatcher:    dispatcher,
	}

	noteService := &note.DefaultNoteService{
		Repo: noteRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:          handlers.NewAuthHandler(userService),
		Users:         handlers.NewUserHandler(userService),
		Availability:  handlers.NewAvailabilityHandler(availabilityService),
		Bookings:      handlers.NewBookingHandler(bookingService),
		Notifications: handlers.NewNotificationHandler(notificationService),
		Alerts:        handlers.NewAlertHandler(alertService),
		Notes:         handlers.NewNoteHandler(noteService),
		Socket:        handlers.NewWSHandler(hub, notificationService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker in the background.
	go cron.InitReminderWorker(bookingRepo, notificationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
