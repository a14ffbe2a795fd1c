package patient

import (
	appointmentRepo "prescripto/database/repository/appointment"
	patientRepo "prescripto/database/repository/patient"
	"prescripto/models"
)

// PatientService manages patient accounts and their view of the ledger.
type PatientService interface {
	Register(patient *models.Patient) (*models.Patient, string, error)
	Authenticate(email, password string) (*models.Patient, string, error)
	GetByID(id string) (*models.Patient, error)
	UpdateProfile(patient *models.Patient) error
	Appointments(patientID string) ([]models.Appointment, error)
}

// DefaultPatientService implements PatientService.
type DefaultPatientService struct {
	Repo     patientRepo.PatientRepository
	ApptRepo appointmentRepo.AppointmentRepository
}
