package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"prescripto/models"
	"prescripto/services/booking"
)

// AsynqReminderScheduler implements booking.ReminderScheduler by enqueueing
// a delayed task ahead of the slot time.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewAsynqReminderScheduler creates a scheduler backed by the reminder
// queue's redis DB.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: asynq.NewClient(redisOpts())}
}

func (s *AsynqReminderScheduler) ScheduleReminder(appt *models.Appointment) error {
	at, err := time.ParseInLocation(booking.DateLayout+" "+booking.TimeLayout, appt.Date+" "+appt.Time, time.Local)
	if err != nil {
		return fmt.Errorf("unparseable slot on appointment %s: %w", appt.ID, err)
	}

	fireAt := at.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		// Slot is closer than the lead time; no reminder.
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{
		AppointmentID: appt.ID,
		DoctorID:      appt.DoctorID,
		PatientID:     appt.PatientID,
		Date:          appt.Date,
		Time:          appt.Time,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeAppointmentReminder, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
