package patientRepo

import (
	"prescripto/models"
)

// PatientRepository defines data access for patient documents.
type PatientRepository interface {
	Create(patient *models.Patient) error
	GetByID(id string) (*models.Patient, error)
	GetByEmail(email string) (*models.Patient, error)
	Count() (int64, error)
	Update(patient *models.Patient) error
}
