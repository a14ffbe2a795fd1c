package booking

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// IsBooked reports whether an active appointment holds the slot key. Pure
// read; the calendar in the doctor document is the source of truth.
func (e *DefaultReservationEngine) IsBooked(ctx context.Context, doctorID, date, slotTime string) (bool, error) {
	doctor, err := e.DoctorRepo.GetByID(doctorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, newError(CodeDoctorNotFound, "doctor %s not found", doctorID)
		}
		return false, newError(CodeStoreUnavailable, "doctor lookup failed: %v", err)
	}
	return doctor.SlotsBooked.Booked(date, slotTime), nil
}

// BookedSlots lists the time labels already booked for a doctor's day.
func (e *DefaultReservationEngine) BookedSlots(ctx context.Context, doctorID, date string) ([]string, error) {
	doctor, err := e.DoctorRepo.GetByID(doctorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, newError(CodeDoctorNotFound, "doctor %s not found", doctorID)
		}
		return nil, newError(CodeStoreUnavailable, "doctor lookup failed: %v", err)
	}
	return doctor.SlotsBooked.Times(date), nil
}
