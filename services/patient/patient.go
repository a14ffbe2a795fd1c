package patient

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"prescripto/models"
	"prescripto/utils"
)

const tokenTTL = 24 * time.Hour

// Register creates a patient account and returns it with a signed token.
func (svc *DefaultPatientService) Register(patient *models.Patient) (*models.Patient, string, error) {
	if len(patient.Password) < 8 {
		return nil, "", ErrWeakPassword
	}
	if existing, err := svc.Repo.GetByEmail(patient.Email); err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(patient.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	patient.ID = uuid.New().String()
	patient.PasswordHash = string(hash)
	patient.Password = ""
	patient.CreatedAt = time.Now()

	if err := svc.Repo.Create(patient); err != nil {
		return nil, "", fmt.Errorf("failed to register patient: %w", err)
	}

	token, err := utils.GenerateToken(patient.ID, "patient", tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	out := *patient
	out.Sanitize()
	return &out, token, nil
}

// Authenticate verifies credentials and returns the patient plus a signed
// token with the patient role.
func (svc *DefaultPatientService) Authenticate(email, password string) (*models.Patient, string, error) {
	patient, err := svc.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up patient: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(patient.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(patient.ID, "patient", tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	patient.Sanitize()
	return patient, token, nil
}

func (svc *DefaultPatientService) GetByID(id string) (*models.Patient, error) {
	patient, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	patient.Sanitize()
	return patient, nil
}

func (svc *DefaultPatientService) UpdateProfile(patient *models.Patient) error {
	return svc.Repo.Update(patient)
}

// Appointments returns the patient's ledger entries, newest first.
func (svc *DefaultPatientService) Appointments(patientID string) ([]models.Appointment, error) {
	return svc.ApptRepo.GetByPatient(patientID)
}
