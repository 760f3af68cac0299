package routes

import (
	"net/http"
	"time"

	"campuscare/handlers"
	"campuscare/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
	}
}

// RegisterUserRoutes registers account management endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("", hb.Users.CreateUserHandler)
		api.POST("/change-password", hb.Users.ChangePasswordHandler)
		api.POST("/seed", hb.Users.SeedDefaultsHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Users.ListUsersHandler)
		api.GET("/:id", hb.Users.GetUserHandler)
		api.PATCH("/:id", hb.Users.UpdateUserHandler)
		api.PUT("/:id/password", hb.Users.SetPasswordHandler)
		api.DELETE("/:id", hb.Users.DeleteUserHandler)
	}
}

// RegisterAvailabilityRoutes registers the counselor schedule endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Availability.CreateWindowHandler)
		api.DELETE("/:id", hb.Availability.DeleteWindowHandler)
		api.GET("/counselor/:id", hb.Availability.ListWindowsHandler)
		api.GET("/counselor/:id/weekdays", hb.Availability.ListWeekdaysHandler)
		api.GET("/counselor/:id/free-slots", hb.Availability.FreeSlotsHandler)
		api.GET("/counselor/:id/free-dates", hb.Availability.FreeDatesHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Bookings.CreateBookingHandler)
		api.GET("", hb.Bookings.ListBookingsHandler)
		api.GET("/calendar", hb.Bookings.CalendarHandler)
		api.GET("/:id", hb.Bookings.GetBookingHandler)
		api.GET("/student/:id", hb.Bookings.ListStudentBookingsHandler)
		api.GET("/counselor/:id", hb.Bookings.ListCounselorBookingsHandler)
		api.PATCH("/:id/reschedule", hb.Bookings.RescheduleBookingHandler)
		api.DELETE("/:id", hb.Bookings.CancelBookingHandler)
	}
}

// RegisterNotificationRoutes registers the inbox endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Notifications.CreateNotificationHandler)
		api.GET("/user/:id", hb.Notifications.ListNotificationsHandler)
		api.PATCH("/:id/read", hb.Notifications.MarkReadHandler)
		api.DELETE("/:id", hb.Notifications.DeleteNotificationHandler)
		api.DELETE("/user/:id", hb.Notifications.ClearNotificationsHandler)
	}
}

// RegisterAlertRoutes registers the urgent-help endpoints.
func RegisterAlertRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/alerts")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Alerts.CreateAlertHandler)
		api.GET("", hb.Alerts.ListAlertsHandler)
		api.GET("/student/:id", hb.Alerts.ListStudentAlertsHandler)
	}
}

// RegisterNoteRoutes registers the session-note endpoints.
func RegisterNoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notes")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Notes.CreateNoteHandler)
		api.GET("/booking/:id", hb.Notes.ListNotesHandler)
		api.DELETE("/:id", hb.Notes.DeleteNoteHandler)
	}
}

// RegisterSocketRoute registers the real-time notification channel. Auth
// happens inside the handler so a bad token gets a proper close frame.
func RegisterSocketRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/ws/notifications", hb.Socket.NotificationSocketHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CampusCare"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAlertRoutes(r, hb)
	RegisterNoteRoutes(r, hb)
	RegisterSocketRoute(r, hb)
	RegisterHealthRoute(r)
}
