package doctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"prescripto/config"
	"prescripto/models"
	"prescripto/utils"
)

type memDoctorRepo struct {
	byID    map[string]*models.Doctor
	byEmail map[string]*models.Doctor
}

func newMemDoctorRepo() *memDoctorRepo {
	return &memDoctorRepo{
		byID:    make(map[string]*models.Doctor),
		byEmail: make(map[string]*models.Doctor),
	}
}

func (r *memDoctorRepo) Create(doctor *models.Doctor) error {
	stored := *doctor
	r.byID[doctor.ID] = &stored
	r.byEmail[doctor.Email] = &stored
	return nil
}

func (r *memDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	d, ok := r.byID[id]
	if !ok || d.Deleted {
		return nil, mongo.ErrNoDocuments
	}
	out := *d
	return &out, nil
}

func (r *memDoctorRepo) GetByEmail(email string) (*models.Doctor, error) {
	d, ok := r.byEmail[email]
	if !ok || d.Deleted {
		return nil, mongo.ErrNoDocuments
	}
	out := *d
	return &out, nil
}

func (r *memDoctorRepo) GetAll() ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range r.byID {
		if !d.Deleted {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *memDoctorRepo) Count() (int64, error) { return int64(len(r.byID)), nil }

func (r *memDoctorRepo) UpdateProfile(doctor *models.Doctor) error { return nil }

func (r *memDoctorRepo) SetAvailable(id string, available bool) error {
	d, ok := r.byID[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	d.Available = available
	return nil
}

func (r *memDoctorRepo) Delete(id string) error {
	d, ok := r.byID[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	d.Deleted = true
	return nil
}

func newDoctor() *models.Doctor {
	return &models.Doctor{
		Name:       "Dr. Richard James",
		Email:      "richard@example.com",
		Password:   "long-enough-password",
		Speciality: "General physician",
		Fees:       50,
	}
}

func TestRegister(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	svc := &DefaultDoctorService{Repo: newMemDoctorRepo()}

	created, err := svc.Register(newDoctor())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Available, "new doctors accept bookings by default")
	assert.NotNil(t, created.SlotsBooked)
	assert.Empty(t, created.Password, "credentials must not leave the service")
	assert.Empty(t, created.PasswordHash)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc := &DefaultDoctorService{Repo: newMemDoctorRepo()}

	d := newDoctor()
	d.Password = "short"
	_, err := svc.Register(d)
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &DefaultDoctorService{Repo: newMemDoctorRepo()}

	_, err := svc.Register(newDoctor())
	require.NoError(t, err)

	_, err = svc.Register(newDoctor())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	svc := &DefaultDoctorService{Repo: newMemDoctorRepo()}

	created, err := svc.Register(newDoctor())
	require.NoError(t, err)

	d, token, err := svc.Authenticate("richard@example.com", "long-enough-password")
	require.NoError(t, err)
	assert.Equal(t, created.ID, d.ID)
	assert.Empty(t, d.PasswordHash)

	subject, role, err := utils.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, subject)
	assert.Equal(t, "doctor", role)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc := &DefaultDoctorService{Repo: newMemDoctorRepo()}

	_, err := svc.Register(newDoctor())
	require.NoError(t, err)

	_, _, err = svc.Authenticate("richard@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Authenticate("nobody@example.com", "long-enough-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
