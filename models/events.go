package models

// Event kinds pushed over the real-time channel. Events are wire-only;
// the record they announce is already durable before any push happens.
const (
	EventUnreadCount          = "unread_count"
	EventPong                 = "pong"
	EventBookingCreated       = "booking_created"
	EventNotificationNew      = "notification_new"
	EventNotificationRead     = "notification_read"
	EventNotificationDeleted  = "notification_deleted"
	EventNotificationsCleared = "notifications_cleared"
	EventAlertNew             = "alert_new"
)

// Event is one message on the real-time channel. Exactly one of Data, ID
// or Count is populated depending on Type. Count is a pointer so that a
// zero unread count still serializes.
type Event struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	ID    string `json:"id,omitempty"`
	Count *int64 `json:"count,omitempty"`
}

// ReminderPayload is the asynq task body for a scheduled booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	StudentID string `json:"studentId"`
	Title     string `json:"title"`
}
