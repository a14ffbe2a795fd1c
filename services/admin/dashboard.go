package admin

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"prescripto/config"
	"prescripto/models"
	"prescripto/utils"
)

const (
	dashboardCacheKey = "admin:dashboard"
	defaultCacheTTL   = 60 * time.Second
	latestCount       = 5
	tokenTTL          = 12 * time.Hour
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticate checks the configured admin credentials. Config validation
// has already refused to start with blank values, so there is no fallback
// path here.
func (svc *DefaultAdminService) Authenticate(email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(config.AppConfig.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(config.AppConfig.AdminPassword)) == 1
	if !emailOK || !passOK {
		return "", ErrInvalidCredentials
	}
	token, err := utils.GenerateToken(email, "admin", tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %w", err)
	}
	return token, nil
}

// Dashboard aggregates ledger counts for the admin panel, served from a
// short-lived redis cache to keep repeated panel refreshes off the store.
func (svc *DefaultAdminService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	logger := utils.GetLogger()

	if svc.Cache != nil {
		if data, err := svc.Cache.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var stats models.DashboardStats
			if err := json.Unmarshal([]byte(data), &stats); err == nil {
				return &stats, nil
			}
			logger.Warn("discarding corrupt dashboard cache entry", zap.Error(err))
		}
	}

	doctors, err := svc.DoctorRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count doctors: %w", err)
	}
	patients, err := svc.PatientRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	appointments, err := svc.ApptRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}
	latest, err := svc.ApptRepo.Latest(latestCount)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest appointments: %w", err)
	}

	stats := &models.DashboardStats{
		Doctors:            doctors,
		Patients:           patients,
		Appointments:       appointments,
		LatestAppointments: latest,
	}

	if svc.Cache != nil {
		ttl := svc.CacheTTL
		if ttl == 0 {
			ttl = defaultCacheTTL
		}
		if data, err := json.Marshal(stats); err == nil {
			if err := svc.Cache.Set(ctx, dashboardCacheKey, data, ttl).Err(); err != nil {
				logger.Warn("failed to cache dashboard stats", zap.Error(err))
			}
		}
	}

	return stats, nil
}

// Appointments lists the full ledger for the admin panel, newest first.
func (svc *DefaultAdminService) Appointments() ([]models.Appointment, error) {
	return svc.ApptRepo.Latest(0)
}
