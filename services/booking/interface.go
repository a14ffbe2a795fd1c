package booking

import (
	"context"
	"time"

	doctorRepo "prescripto/database/repository/doctor"
	schedulerRepo "prescripto/database/repository/scheduler"
	"prescripto/models"
)

// ReserveSlotInput is the validated input for a reservation. Handlers bind
// and validate their own request bodies before constructing one; the engine
// re-validates slot semantics regardless.
type ReserveSlotInput struct {
	DoctorID  string
	PatientID string
	Date      string // "2006-01-02"
	Time      string // "15:04"
	Fee       float64
}

// ReminderScheduler schedules a reminder for a freshly booked appointment.
// Delivery is best-effort; a scheduling failure never fails the booking.
type ReminderScheduler interface {
	ScheduleReminder(appt *models.Appointment) error
}

// ReservationEngine is the only entry point allowed to mutate slot calendar
// state. It guarantees that at most one active appointment holds any
// (doctor, date, time) key, under concurrency.
type ReservationEngine interface {
	// ReserveSlot books a future slot and appends the appointment to the
	// ledger as one atomic unit. Errors carry CodeSlotUnavailable,
	// CodeDoctorNotFound, CodeInvalidSlot or CodeStoreUnavailable.
	ReserveSlot(ctx context.Context, in ReserveSlotInput) (*models.Appointment, error)
	// ReleaseSlot cancels an appointment and frees its slot atomically.
	// Releasing an already-cancelled appointment succeeds without change.
	ReleaseSlot(ctx context.Context, appointmentID string) (*models.Appointment, error)
	// IsBooked reports whether a slot key currently holds an active
	// appointment.
	IsBooked(ctx context.Context, doctorID, date, slotTime string) (bool, error)
	// BookedSlots lists the booked time labels for a doctor's day.
	BookedSlots(ctx context.Context, doctorID, date string) ([]string, error)
}

// DefaultReservationEngine implements ReservationEngine on top of the
// scheduler repository's transactional slot operations.
type DefaultReservationEngine struct {
	Repo       schedulerRepo.SchedulerRepository
	DoctorRepo doctorRepo.DoctorRepository
	Reminders  ReminderScheduler // optional
	Now        func() time.Time  // injectable clock; defaults to time.Now
}

func (e *DefaultReservationEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
