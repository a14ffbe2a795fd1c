package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appointmentRepo "prescripto/database/repository/appointment"
	"prescripto/middleware"
	"prescripto/models"
	"prescripto/services/booking"
	"prescripto/utils"
)

// STORE_UNAVAILABLE is retried here with bounded exponential backoff;
// every other engine error is terminal for the request and surfaced once.
const (
	retryAttempts  = 3
	retryBaseDelay = 100 * time.Millisecond
)

// BookingHandler translates HTTP requests into reservation engine calls.
type BookingHandler struct {
	Engine   booking.ReservationEngine
	ApptRepo appointmentRepo.AppointmentRepository
	Logger   *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(engine booking.ReservationEngine, apptRepo appointmentRepo.AppointmentRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, ApptRepo: apptRepo, Logger: logger}
}

func statusForCode(code string) int {
	switch code {
	case booking.CodeInvalidSlot:
		return http.StatusBadRequest
	case booking.CodeDoctorNotFound, booking.CodeAppointmentNotFound:
		return http.StatusNotFound
	case booking.CodeSlotUnavailable:
		return http.StatusConflict
	case booking.CodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func messageForCode(code string) string {
	switch code {
	case booking.CodeInvalidSlot:
		return "Invalid slot"
	case booking.CodeDoctorNotFound:
		return "Doctor not found"
	case booking.CodeAppointmentNotFound:
		return "Appointment not found"
	case booking.CodeSlotUnavailable:
		return "Slot unavailable"
	case booking.CodeStoreUnavailable:
		return "Service temporarily unavailable"
	default:
		return "Internal error"
	}
}

func (h *BookingHandler) respondEngineError(c *gin.Context, err error) {
	code := booking.CodeOf(err)
	utils.JSONError(c, statusForCode(code), messageForCode(code), err.Error())
}

// ReserveSlot books a slot for the authenticated patient.
func (h *BookingHandler) ReserveSlot(c *gin.Context) {
	var input struct {
		DoctorID string  `json:"doctorId" binding:"required"`
		Date     string  `json:"date" binding:"required"`
		Time     string  `json:"time" binding:"required"`
		Fee      float64 `json:"fee" binding:"omitempty,gte=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	in := booking.ReserveSlotInput{
		DoctorID:  input.DoctorID,
		PatientID: middleware.AuthSubject(c),
		Date:      input.Date,
		Time:      input.Time,
		Fee:       input.Fee,
	}

	var appt *models.Appointment
	err := utils.WithRetry(c.Request.Context(), retryAttempts, retryBaseDelay, booking.IsStoreUnavailable, func() error {
		var rerr error
		appt, rerr = h.Engine.ReserveSlot(c.Request.Context(), in)
		return rerr
	})
	if err != nil {
		h.respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// ReleaseSlot cancels one of the authenticated patient's appointments.
func (h *BookingHandler) ReleaseSlot(c *gin.Context) {
	var input struct {
		AppointmentID string `json:"appointmentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	// Ownership check before touching the engine: patients may only
	// cancel their own appointments.
	existing, err := h.ApptRepo.GetByID(input.AppointmentID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Appointment not found", err.Error())
		return
	}
	if existing.PatientID != middleware.AuthSubject(c) {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "appointment belongs to another patient")
		return
	}

	h.release(c, input.AppointmentID)
}

// AdminReleaseSlot cancels any appointment (admin panel).
func (h *BookingHandler) AdminReleaseSlot(c *gin.Context) {
	var input struct {
		AppointmentID string `json:"appointmentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	h.release(c, input.AppointmentID)
}

func (h *BookingHandler) release(c *gin.Context, appointmentID string) {
	var appt *models.Appointment
	err := utils.WithRetry(c.Request.Context(), retryAttempts, retryBaseDelay, booking.IsStoreUnavailable, func() error {
		var rerr error
		appt, rerr = h.Engine.ReleaseSlot(c.Request.Context(), appointmentID)
		return rerr
	})
	if err != nil {
		h.respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// BookedSlots lists the booked time labels for a doctor's day so clients
// can render availability.
func (h *BookingHandler) BookedSlots(c *gin.Context) {
	doctorID := c.Param("doctorId")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}

	slots, err := h.Engine.BookedSlots(c.Request.Context(), doctorID, date)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}

	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"doctorId": doctorID, "date": date, "slotsBooked": slots})
}
