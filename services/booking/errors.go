package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced to the HTTP layer. STORE_UNAVAILABLE is the only
// retryable one; retrying any of the others would mask a real conflict.
const (
	CodeSlotUnavailable     = "SLOT_UNAVAILABLE"
	CodeDoctorNotFound      = "DOCTOR_NOT_FOUND"
	CodeAppointmentNotFound = "APPOINTMENT_NOT_FOUND"
	CodeInvalidSlot         = "INVALID_SLOT"
	CodeStoreUnavailable    = "STORE_UNAVAILABLE"
)

// ReservationError is a code-carrying error returned by the reservation
// engine. The engine never formats user-facing text; the message is for
// logs and the code is for the caller.
type ReservationError struct {
	Code    string
	Message string
}

func (e *ReservationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...any) error {
	return &ReservationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the reservation error code carried by err, or "" when err
// is not a ReservationError.
func CodeOf(err error) string {
	var re *ReservationError
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}

// IsStoreUnavailable reports whether err is a transient store failure that
// the caller may retry with backoff.
func IsStoreUnavailable(err error) bool {
	return CodeOf(err) == CodeStoreUnavailable
}
