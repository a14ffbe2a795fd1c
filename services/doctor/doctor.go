package doctor

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

// Register creates a new doctor with a hashed password and an empty slot
// calendar. The caller (admin handler) has already validated field presence
// and email format via binding tags.
func (svc *DefaultDoctorService) Register(doctor *models.Doctor) (*models.Doctor, error) {
	if len(doctor.Password) < 8 {
		return nil, ErrWeakPassword
	}
	if existing, err := svc.Repo.GetByEmail(doctor.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(doctor.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	doctor.ID = uuid.New().String()
	doctor.PasswordHash = string(hash)
	doctor.Password = ""
	doctor.Available = true
	doctor.SlotsBooked = models.SlotCalendar{}
	doctor.CreatedAt = time.Now()

	if err := svc.Repo.Create(doctor); err != nil {
		return nil, fmt.Errorf("failed to register doctor: %w", err)
	}

	out := *doctor
	out.Sanitize()
	return &out, nil
}

// Authenticate verifies credentials and returns the doctor plus a signed
// token with the doctor role.
func (svc *DefaultDoctorService) Authenticate(email, password string) (*models.Doctor, string, error) {
	doctor, err := svc.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up doctor: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(doctor.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(doctor.ID, "doctor", tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	doctor.Sanitize()
	return doctor, token, nil
}

func (svc *DefaultDoctorService) GetByID(id string) (*models.Doctor, error) {
	doctor, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	doctor.Sanitize()
	return doctor, nil
}

func (svc *DefaultDoctorService) GetAll() ([]models.Doctor, error) {
	doctors, err := svc.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		doctors[i].Sanitize()
	}
	return doctors, nil
}

func (svc *DefaultDoctorService) UpdateProfile(doctor *models.Doctor) error {
	return svc.Repo.UpdateProfile(doctor)
}

func (svc *DefaultDoctorService) SetAvailability(id string, available bool) error {
	return svc.Repo.SetAvailable(id, available)
}

func (svc *DefaultDoctorService) Delete(id string) error {
	return svc.Repo.Delete(id)
}
