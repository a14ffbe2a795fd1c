package booking

import (
	"time"
)

// Slot label layouts. Anything else is rejected before the store is touched.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// validateInput checks the reservation input and returns an INVALID_SLOT or
// malformed-field error, or nil.
func validateInput(in ReserveSlotInput, now time.Time) error {
	if in.DoctorID == "" {
		return newError(CodeDoctorNotFound, "doctor id is required")
	}
	if in.PatientID == "" {
		return newError(CodeInvalidSlot, "patient id is required")
	}
	if in.Fee < 0 {
		return newError(CodeInvalidSlot, "fee must not be negative")
	}
	return validateSlot(in.Date, in.Time, now)
}

// validateSlot checks that date and slotTime are well-formed and denote a
// future moment relative to now.
func validateSlot(date, slotTime string, now time.Time) error {
	at, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+slotTime, now.Location())
	if err != nil {
		return newError(CodeInvalidSlot, "malformed slot %q %q: must be %q and %q", date, slotTime, DateLayout, TimeLayout)
	}
	if !at.After(now) {
		return newError(CodeInvalidSlot, "slot %s %s is in the past", date, slotTime)
	}
	return nil
}
