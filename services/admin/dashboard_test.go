package admin

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prescripto/config"
	"prescripto/models"
	"prescripto/utils"
)

type countingDoctorRepo struct {
	count int64
	calls int
}

func (r *countingDoctorRepo) Create(doctor *models.Doctor) error          { return nil }
func (r *countingDoctorRepo) GetByID(id string) (*models.Doctor, error)   { return nil, nil }
func (r *countingDoctorRepo) GetByEmail(e string) (*models.Doctor, error) { return nil, nil }
func (r *countingDoctorRepo) GetAll() ([]models.Doctor, error)            { return nil, nil }
func (r *countingDoctorRepo) UpdateProfile(d *models.Doctor) error        { return nil }
func (r *countingDoctorRepo) SetAvailable(id string, a bool) error        { return nil }
func (r *countingDoctorRepo) Delete(id string) error                      { return nil }

func (r *countingDoctorRepo) Count() (int64, error) {
	r.calls++
	return r.count, nil
}

type countingPatientRepo struct {
	count int64
}

func (r *countingPatientRepo) Create(p *models.Patient) error              { return nil }
func (r *countingPatientRepo) GetByID(id string) (*models.Patient, error)  { return nil, nil }
func (r *countingPatientRepo) GetByEmail(e string) (*models.Patient, error) { return nil, nil }
func (r *countingPatientRepo) Update(p *models.Patient) error              { return nil }
func (r *countingPatientRepo) Count() (int64, error)                       { return r.count, nil }

type fakeApptRepo struct {
	appts []models.Appointment
}

func (r *fakeApptRepo) GetByID(id string) (*models.Appointment, error)       { return nil, nil }
func (r *fakeApptRepo) GetByDoctor(id string) ([]models.Appointment, error)  { return nil, nil }
func (r *fakeApptRepo) GetByPatient(id string) ([]models.Appointment, error) { return nil, nil }
func (r *fakeApptRepo) Count() (int64, error)                                { return int64(len(r.appts)), nil }

func (r *fakeApptRepo) Latest(n int64) ([]models.Appointment, error) {
	if n <= 0 || n > int64(len(r.appts)) {
		return r.appts, nil
	}
	return r.appts[:n], nil
}

func testCache(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestDashboardAggregatesCounts(t *testing.T) {
	appts := []models.Appointment{
		{ID: "a-1", DoctorID: "doc-1", PatientID: "pat-1", Date: "2024-05-01", Time: "10:30"},
		{ID: "a-2", DoctorID: "doc-1", PatientID: "pat-2", Date: "2024-05-01", Time: "11:00"},
	}
	svc := &DefaultAdminService{
		DoctorRepo:  &countingDoctorRepo{count: 3},
		PatientRepo: &countingPatientRepo{count: 7},
		ApptRepo:    &fakeApptRepo{appts: appts},
		Cache:       testCache(t),
	}

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Doctors)
	assert.Equal(t, int64(7), stats.Patients)
	assert.Equal(t, int64(2), stats.Appointments)
	assert.Len(t, stats.LatestAppointments, 2)
}

func TestDashboardServesFromCache(t *testing.T) {
	doctors := &countingDoctorRepo{count: 3}
	svc := &DefaultAdminService{
		DoctorRepo:  doctors,
		PatientRepo: &countingPatientRepo{count: 7},
		ApptRepo:    &fakeApptRepo{},
		Cache:       testCache(t),
		CacheTTL:    time.Minute,
	}

	_, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	_, err = svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, doctors.calls, "second call should be served from cache")
}

func TestDashboardWithoutCache(t *testing.T) {
	svc := &DefaultAdminService{
		DoctorRepo:  &countingDoctorRepo{count: 1},
		PatientRepo: &countingPatientRepo{count: 1},
		ApptRepo:    &fakeApptRepo{},
	}

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Doctors)
}

func TestAuthenticate(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	config.AppConfig.AdminEmail = "admin@example.com"
	config.AppConfig.AdminPassword = "correct-horse"

	svc := &DefaultAdminService{}

	token, err := svc.Authenticate("admin@example.com", "correct-horse")
	require.NoError(t, err)

	subject, role, err := utils.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", subject)
	assert.Equal(t, "admin", role)

	_, err = svc.Authenticate("admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("someone@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
