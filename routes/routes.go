package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"prescripto/handlers"
	"prescripto/middleware"
	"prescripto/utils"
)

// RegisterPatientRoutes registers patient endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/user")
	{
		api.POST("/register", hb.Patient.Register)
		api.POST("/login", hb.Patient.Login)
		api.GET("/doctors", hb.Doctor.List)
		api.GET("/doctors/:doctorId/slots", hb.Booking.BookedSlots)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware("patient"))
		api.GET("/profile", hb.Patient.Profile)
		api.PUT("/profile", hb.Patient.UpdateProfile)
		api.GET("/appointments", hb.Patient.Appointments)
		api.POST("/book-appointment", hb.Booking.ReserveSlot)
		api.POST("/cancel-appointment", hb.Booking.ReleaseSlot)
	}
}

// RegisterDoctorRoutes registers doctor endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctor")
	{
		api.POST("/login", hb.Doctor.Login)

		api.Use(middleware.JWTAuthMiddleware("doctor"))
		api.GET("/profile", hb.Doctor.Profile)
		api.PUT("/profile", hb.Doctor.UpdateProfile)
		api.GET("/appointments", hb.Doctor.Appointments)
		api.PUT("/availability", hb.Doctor.SetAvailability)
	}
}

// RegisterAdminRoutes registers admin panel endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.Admin.Login)

		api.Use(middleware.JWTAuthMiddleware("admin"))
		api.POST("/add-doctor", hb.Admin.AddDoctor)
		api.GET("/doctors", hb.Admin.Doctors)
		api.DELETE("/doctors/:id", hb.Admin.DeleteDoctor)
		api.GET("/appointments", hb.Admin.Appointments)
		api.POST("/cancel-appointment", hb.Booking.AdminReleaseSlot)
		api.GET("/dashboard", hb.Admin.Dashboard)
	}
}

// RegisterHealthRoute registers a health-check endpoint serving the latest
// monitor snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPatientRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
