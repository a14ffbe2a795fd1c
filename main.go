package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"prescripto/config"
	"prescripto/cron"
	"prescripto/database"
	appointmentRepo "prescripto/database/repository/appointment"
	doctorRepo "prescripto/database/repository/doctor"
	patientRepo "prescripto/database/repository/patient"
	schedulerRepo "prescripto/database/repository/scheduler"
	"prescripto/handlers"
	"prescripto/middleware"
	"prescripto/routes"
	"prescripto/services/admin"
	"prescripto/services/booking"
	"prescripto/services/doctor"
	"prescripto/services/patient"
	"prescripto/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(database.MongoClient, utils.GetCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	docRepo := doctorRepo.NewMongoDoctorRepo()
	patRepo := patientRepo.NewMongoPatientRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	schedRepo := schedulerRepo.NewMongoSchedulerRepo()

	// services.
	doctorService := &doctor.DefaultDoctorService{
		Repo: docRepo,
	}
	patientService := &patient.DefaultPatientService{
		Repo:     patRepo,
		ApptRepo: apptRepo,
	}
	reservationEngine := &booking.DefaultReservationEngine{
		Repo:       schedRepo,
		DoctorRepo: docRepo,
		Reminders:  cron.NewAsynqReminderScheduler(),
	}
	adminService := &admin.DefaultAdminService{
		DoctorRepo:  docRepo,
		PatientRepo: patRepo,
		ApptRepo:    apptRepo,
		Cache:       utils.GetCacheClient(),
	}

	// Background reminder worker.
	cron.InitReminderWorker(apptRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(reservationEngine, apptRepo, logger),
		Patient: handlers.NewPatientHandler(patientService),
		Doctor:  handlers.NewDoctorHandler(doctorService, apptRepo),
		Admin:   handlers.NewAdminHandler(adminService, doctorService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "4000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
