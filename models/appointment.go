package models

import "time"

// Appointment is a ledger record for a booked slot. It is created only by a
// successful reservation, mutated only by a release (which flips Cancelled),
// and never deleted.
type Appointment struct {
	ID        string    `bson:"id" json:"id"`               // Unique appointment identifier (UUID)
	DoctorID  string    `bson:"doctorId" json:"doctorId"`   // Doctor whose slot was booked
	PatientID string    `bson:"patientId" json:"patientId"` // Patient who booked
	Date      string    `bson:"date" json:"date"`           // Slot date in "2006-01-02" format
	Time      string    `bson:"time" json:"time"`           // Slot time label in "15:04" format
	Fee       float64   `bson:"fee" json:"fee"`             // Consultation fee at booking time
	Cancelled bool      `bson:"cancelled" json:"cancelled"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Active reports whether the appointment still holds its slot.
func (a *Appointment) Active() bool {
	return !a.Cancelled
}
