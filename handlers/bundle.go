package handlers

// HandlerBundle groups the assembled handlers for route registration.
type HandlerBundle struct {
	Booking *BookingHandler
	Patient *PatientHandler
	Doctor  *DoctorHandler
	Admin   *AdminHandler
}
