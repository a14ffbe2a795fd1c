package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	schedulerRepo "prescripto/database/repository/scheduler"
	"prescripto/models"
	"prescripto/utils"
)

func (e *DefaultReservationEngine) ReserveSlot(ctx context.Context, in ReserveSlotInput) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if err := validateInput(in, e.now()); err != nil {
		return nil, err
	}

	// Advisory pre-check only: it gives the caller the doctor's fee and an
	// early answer for unavailable doctors. Correctness does not depend on
	// it; the conditional write inside the transaction decides the race.
	doctor, err := e.DoctorRepo.GetByID(in.DoctorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, newError(CodeDoctorNotFound, "doctor %s not found", in.DoctorID)
		}
		return nil, newError(CodeStoreUnavailable, "doctor lookup failed: %v", err)
	}
	if !doctor.Available {
		return nil, newError(CodeSlotUnavailable, "doctor %s is not accepting appointments", in.DoctorID)
	}
	if in.Fee == 0 {
		in.Fee = doctor.Fees
	}

	appt := &models.Appointment{
		ID:        uuid.New().String(),
		DoctorID:  in.DoctorID,
		PatientID: in.PatientID,
		Date:      in.Date,
		Time:      in.Time,
		Fee:       in.Fee,
		Cancelled: false,
		CreatedAt: time.Now(),
	}

	if err := e.Repo.ReserveSlotTxn(ctx, in.DoctorID, in.Date, in.Time, appt); err != nil {
		switch {
		case errors.Is(err, schedulerRepo.ErrSlotTaken):
			return nil, newError(CodeSlotUnavailable, "slot %s %s for doctor %s is already booked", in.Date, in.Time, in.DoctorID)
		case errors.Is(err, schedulerRepo.ErrDoctorNotFound):
			return nil, newError(CodeDoctorNotFound, "doctor %s not found", in.DoctorID)
		default:
			return nil, newError(CodeStoreUnavailable, "reservation write failed: %v", err)
		}
	}

	logger.Info("slot reserved",
		zap.String("appointmentId", appt.ID),
		zap.String("doctorId", appt.DoctorID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
	)

	if e.Reminders != nil {
		if err := e.Reminders.ScheduleReminder(appt); err != nil {
			logger.Warn("failed to schedule appointment reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	return appt, nil
}

func (e *DefaultReservationEngine) ReleaseSlot(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	if appointmentID == "" {
		return nil, newError(CodeAppointmentNotFound, "appointment id is required")
	}

	appt, err := e.Repo.ReleaseSlotTxn(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, schedulerRepo.ErrAppointmentNotFound) {
			return nil, newError(CodeAppointmentNotFound, "appointment %s not found", appointmentID)
		}
		return nil, newError(CodeStoreUnavailable, "release write failed: %v", err)
	}

	utils.GetLogger().Info("slot released",
		zap.String("appointmentId", appt.ID),
		zap.String("doctorId", appt.DoctorID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
	)
	return appt, nil
}
