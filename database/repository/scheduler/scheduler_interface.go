package schedulerRepo

import (
	"context"
	"errors"

	"prescripto/models"
)

// Sentinel errors returned by the transactional slot operations so the
// reservation engine can map them onto its error taxonomy.
var (
	// ErrDoctorNotFound means the doctor does not exist or is soft-deleted.
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrSlotTaken means the (doctor, date, time) key already holds an
	// active appointment; the conditional write matched nothing.
	ErrSlotTaken = errors.New("slot already booked")
	// ErrAppointmentNotFound means no ledger entry exists for the id.
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// SchedulerRepository is the single code path allowed to mutate a doctor's
// slotsBooked calendar. Both operations are multi-document transactions:
// the calendar entry and the ledger entry commit or abort together, so a
// crash can never leave an orphan appointment or a phantom booked slot.
type SchedulerRepository interface {
	// ReserveSlotTxn adds (date, time) to the doctor's calendar iff the
	// slot is still free, and inserts the appointment in the same
	// transaction. The store enforces the "add only if absent" condition;
	// two concurrent reservations on one key commit exactly one.
	// Returns ErrSlotTaken or ErrDoctorNotFound on conflict.
	ReserveSlotTxn(ctx context.Context, doctorID, date, slotTime string, appt *models.Appointment) error

	// ReleaseSlotTxn flips cancelled on the appointment and removes the
	// calendar entry in one transaction. Releasing an already-cancelled
	// appointment is an idempotent no-op that returns the stored record;
	// a calendar entry that is already absent is tolerated.
	// Returns ErrAppointmentNotFound when no ledger entry exists.
	ReleaseSlotTxn(ctx context.Context, appointmentID string) (*models.Appointment, error)
}
