package handlers

// HandlerBundle gathers every handler so route registration takes a
// single argument.
type HandlerBundle struct {
	Auth          *AuthHandler
	Users         *UserHandler
	Availability  *AvailabilityHandler
	Bookings      *BookingHandler
	Notifications *NotificationHandler
	Alerts        *AlertHandler
	Notes         *NoteHandler
	Socket        *WSHandler
}
