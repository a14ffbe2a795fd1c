package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appointmentRepo "prescripto/database/repository/appointment"
	"prescripto/middleware"
	"prescripto/models"
	"prescripto/services/doctor"
	"prescripto/utils"
)

// DoctorHandler serves doctor-facing endpoints.
type DoctorHandler struct {
	Svc      doctor.DoctorService
	ApptRepo appointmentRepo.AppointmentRepository
}

// NewDoctorHandler creates a DoctorHandler.
func NewDoctorHandler(svc doctor.DoctorService, apptRepo appointmentRepo.AppointmentRepository) *DoctorHandler {
	return &DoctorHandler{Svc: svc, ApptRepo: apptRepo}
}

// Login authenticates a doctor.
func (h *DoctorHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	d, token, err := h.Svc.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, doctor.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctor": d, "token": token})
}

// List returns all doctors for the public booking page.
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.Svc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list doctors", err.Error())
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// Profile returns the authenticated doctor's profile.
func (h *DoctorHandler) Profile(c *gin.Context) {
	d, err := h.Svc.GetByID(middleware.AuthSubject(c))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "doctor not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": d})
}

// UpdateProfile updates the authenticated doctor's mutable profile fields.
func (h *DoctorHandler) UpdateProfile(c *gin.Context) {
	var input struct {
		Fees      float64        `json:"fees" binding:"required,gt=0"`
		About     string         `json:"about" binding:"required"`
		Address   models.Address `json:"address" binding:"required"`
		Available *bool          `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	d := &models.Doctor{
		ID:        middleware.AuthSubject(c),
		Fees:      input.Fees,
		About:     input.About,
		Address:   input.Address,
		Available: *input.Available,
	}
	if err := h.Svc.UpdateProfile(d); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

// Appointments lists the authenticated doctor's appointments.
func (h *DoctorHandler) Appointments(c *gin.Context) {
	appts, err := h.ApptRepo.GetByDoctor(middleware.AuthSubject(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// SetAvailability toggles whether the doctor accepts new bookings.
func (h *DoctorHandler) SetAvailability(c *gin.Context) {
	var input struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.SetAvailability(middleware.AuthSubject(c), *input.Available); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability updated"})
}
