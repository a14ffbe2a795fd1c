package appointmentRepo

import (
	"prescripto/models"
)

// AppointmentRepository defines read access to the appointment ledger.
// Appointments are created and cancelled exclusively through the scheduler
// repository's transactions; this interface never mutates them.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// GetByDoctor lists all appointments (active and cancelled) for a doctor.
	GetByDoctor(doctorID string) ([]models.Appointment, error)
	// GetByPatient lists all appointments for a patient.
	GetByPatient(patientID string) ([]models.Appointment, error)
	// Count returns the total number of ledger entries.
	Count() (int64, error)
	// Latest returns the most recently created appointments, newest first.
	// n <= 0 returns the whole ledger.
	Latest(n int64) ([]models.Appointment, error)
}
