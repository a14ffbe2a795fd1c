package doctor

import (
	doctorRepo "prescripto/database/repository/doctor"
	"prescripto/models"
)

// DoctorService manages doctor profiles and authentication. It never
// touches slotsBooked; bookings go through the reservation engine.
type DoctorService interface {
	Register(doctor *models.Doctor) (*models.Doctor, error)
	Authenticate(email, password string) (*models.Doctor, string, error)
	GetByID(id string) (*models.Doctor, error)
	GetAll() ([]models.Doctor, error)
	UpdateProfile(doctor *models.Doctor) error
	SetAvailability(id string, available bool) error
	Delete(id string) error
}

// DefaultDoctorService implements DoctorService.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}
