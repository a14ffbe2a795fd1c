package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prescripto/models"
	"prescripto/services/admin"
	"prescripto/services/doctor"
	"prescripto/utils"
)

// AdminHandler serves the admin panel endpoints.
type AdminHandler struct {
	Svc       admin.AdminService
	DoctorSvc doctor.DoctorService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc admin.AdminService, doctorSvc doctor.DoctorService) *AdminHandler {
	return &AdminHandler{Svc: svc, DoctorSvc: doctorSvc}
}

// Login authenticates the admin against configured credentials.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	token, err := h.Svc.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// AddDoctor registers a new doctor.
func (h *AdminHandler) AddDoctor(c *gin.Context) {
	var input struct {
		Name       string         `json:"name" binding:"required"`
		Email      string         `json:"email" binding:"required,email"`
		Password   string         `json:"password" binding:"required"`
		Speciality string         `json:"speciality" binding:"required"`
		Degree     string         `json:"degree" binding:"required"`
		Experience string         `json:"experience" binding:"required"`
		About      string         `json:"about" binding:"required"`
		Fees       float64        `json:"fees" binding:"required,gt=0"`
		Address    models.Address `json:"address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	d := &models.Doctor{
		Name:       input.Name,
		Email:      input.Email,
		Password:   input.Password,
		Speciality: input.Speciality,
		Degree:     input.Degree,
		Experience: input.Experience,
		About:      input.About,
		Fees:       input.Fees,
		Address:    input.Address,
	}
	created, err := h.DoctorSvc.Register(d)
	if err != nil {
		switch {
		case errors.Is(err, doctor.ErrWeakPassword):
			utils.JSONError(c, http.StatusBadRequest, "weak password", err.Error())
		case errors.Is(err, doctor.ErrEmailTaken):
			utils.JSONError(c, http.StatusConflict, "email already registered", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to add doctor", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"doctor": created})
}

// Doctors lists all doctors for the admin panel.
func (h *AdminHandler) Doctors(c *gin.Context) {
	doctors, err := h.DoctorSvc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list doctors", err.Error())
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// DeleteDoctor soft-deletes a doctor; the ledger keeps its appointments.
func (h *AdminHandler) DeleteDoctor(c *gin.Context) {
	if err := h.DoctorSvc.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "doctor not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "doctor deleted"})
}

// Appointments lists the full ledger for the admin panel.
func (h *AdminHandler) Appointments(c *gin.Context) {
	appts, err := h.Svc.Appointments()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// Dashboard returns aggregated counts for the admin panel.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.Svc.Dashboard(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load dashboard", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"dashData": stats})
}
