package admin

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	appointmentRepo "prescripto/database/repository/appointment"
	doctorRepo "prescripto/database/repository/doctor"
	patientRepo "prescripto/database/repository/patient"
	"prescripto/models"
)

// AdminService serves the admin panel: credential check and read-only
// dashboard aggregation over the ledger. It has no write access to the
// slot calendar.
type AdminService interface {
	Authenticate(email, password string) (string, error)
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
	Appointments() ([]models.Appointment, error)
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	DoctorRepo  doctorRepo.DoctorRepository
	PatientRepo patientRepo.PatientRepository
	ApptRepo    appointmentRepo.AppointmentRepository
	Cache       *redis.Client
	CacheTTL    time.Duration
}
