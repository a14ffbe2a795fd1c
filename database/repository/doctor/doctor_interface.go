package doctorRepo

import (
	"prescripto/models"
)

// DoctorRepository defines data access for doctor documents. Nothing here
// writes slotsBooked; calendar mutation belongs to the scheduler repository.
type DoctorRepository interface {
	// Create inserts a new doctor document.
	Create(doctor *models.Doctor) error
	// GetByID retrieves a doctor by its unique ID. Soft-deleted doctors are
	// not returned.
	GetByID(id string) (*models.Doctor, error)
	// GetByEmail retrieves a doctor by email.
	GetByEmail(email string) (*models.Doctor, error)
	// GetAll lists all non-deleted doctors.
	GetAll() ([]models.Doctor, error)
	// Count returns the number of non-deleted doctors.
	Count() (int64, error)
	// UpdateProfile replaces mutable profile fields (fees, about, address,
	// availability flag). The slot calendar is deliberately not part of it.
	UpdateProfile(doctor *models.Doctor) error
	// SetAvailable toggles the doctor's availability flag.
	SetAvailable(id string, available bool) error
	// Delete soft-deletes a doctor; the ledger keeps its appointments.
	Delete(id string) error
}
