package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"prescripto/config"
	appointmentRepo "prescripto/database/repository/appointment"
	"prescripto/utils"
)

const TypeAppointmentReminder = "appointment:reminder"

// reminderLead is how far ahead of the slot the reminder fires.
const reminderLead = time.Hour

// ReminderPayload is the task body for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	DoctorID      string `json:"doctorId"`
	PatientID     string `json:"patientId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}
}

// InitReminderWorker runs the async worker in background. The handler
// checks the ledger before firing so a reminder for an appointment that
// was cancelled in the meantime is dropped silently.
func InitReminderWorker(apptRepo appointmentRepo.AppointmentRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentReminder, handleReminderTask(apptRepo))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(apptRepo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		appt, err := apptRepo.GetByID(p.AppointmentID)
		if err != nil {
			logger.Warn("reminder for unknown appointment dropped",
				zap.String("appointmentId", p.AppointmentID), zap.Error(err))
			return nil
		}
		if appt.Cancelled {
			logger.Debug("reminder for cancelled appointment dropped",
				zap.String("appointmentId", p.AppointmentID))
			return nil
		}

		logger.Info("appointment reminder",
			zap.String("appointmentId", appt.ID),
			zap.String("doctorId", appt.DoctorID),
			zap.String("patientId", appt.PatientID),
			zap.String("date", appt.Date),
			zap.String("time", appt.Time),
		)
		return nil
	}
}
