package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prescripto/middleware"
	"prescripto/models"
	"prescripto/services/patient"
	"prescripto/utils"
)

// PatientHandler serves patient account endpoints.
type PatientHandler struct {
	Svc patient.PatientService
}

// NewPatientHandler creates a PatientHandler.
func NewPatientHandler(svc patient.PatientService) *PatientHandler {
	return &PatientHandler{Svc: svc}
}

// Register creates a patient account.
func (h *PatientHandler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	p := &models.Patient{Name: input.Name, Email: input.Email, Password: input.Password}
	created, token, err := h.Svc.Register(p)
	if err != nil {
		switch {
		case errors.Is(err, patient.ErrWeakPassword):
			utils.JSONError(c, http.StatusBadRequest, "weak password", err.Error())
		case errors.Is(err, patient.ErrEmailTaken):
			utils.JSONError(c, http.StatusConflict, "email already registered", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "registration failed", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"patient": created, "token": token})
}

// Login authenticates a patient.
func (h *PatientHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	p, token, err := h.Svc.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, patient.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"patient": p, "token": token})
}

// Profile returns the authenticated patient's profile.
func (h *PatientHandler) Profile(c *gin.Context) {
	p, err := h.Svc.GetByID(middleware.AuthSubject(c))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "patient not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": p})
}

// UpdateProfile updates mutable profile fields.
func (h *PatientHandler) UpdateProfile(c *gin.Context) {
	var input struct {
		Name      string `json:"name" binding:"required"`
		Phone     string `json:"phone"`
		Gender    string `json:"gender"`
		BirthDate string `json:"birthDate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	p := &models.Patient{
		ID:        middleware.AuthSubject(c),
		Name:      input.Name,
		Phone:     input.Phone,
		Gender:    input.Gender,
		BirthDate: input.BirthDate,
	}
	if err := h.Svc.UpdateProfile(p); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

// Appointments lists the authenticated patient's appointments.
func (h *PatientHandler) Appointments(c *gin.Context) {
	appts, err := h.Svc.Appointments(middleware.AuthSubject(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
