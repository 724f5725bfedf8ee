package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/lazy8055/psych-care/internal/audit"
	"github.com/lazy8055/psych-care/internal/config"
	"github.com/lazy8055/psych-care/internal/handlers"
	"github.com/lazy8055/psych-care/internal/middleware"
	"github.com/lazy8055/psych-care/internal/storage"
	ucAppointment "github.com/lazy8055/psych-care/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	avatarStore := storage.NewAvatarStore(cfg)

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(db, auditDispatcher)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(db, auditDispatcher)
	dayScheduleUC := ucAppointment.NewGetDaySchedule(db)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(db)
	monthMarkersUC := ucAppointment.NewGetMonthMarkers(db)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	practiceHandler := handlers.NewPracticeHandler(db)
	patientHandler := handlers.NewPatientHandler(db, avatarStore)
	medicationHandler := handlers.NewMedicationHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		dayScheduleUC,
		listByMonthUC,
		monthMarkersUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		auth := api.Group("/auth")
		if cfg.RedisAddr != "" {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
			})
			limiter := middleware.NewRateLimiter(rdb, 20, time.Minute, "auth")
			auth.Use(limiter.Middleware())
		}
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/me/practice", practiceHandler.GetMePractice)
			secured.PATCH("/me/practice", practiceHandler.UpdateMePractice)

			// ------------------------------
			// PATIENTS
			// ------------------------------
			secured.GET("/me/patients", patientHandler.List)
			secured.POST("/me/patients", patientHandler.Create)
			secured.GET("/me/patients/:id", patientHandler.Get)
			secured.PATCH("/me/patients/:id", patientHandler.Update)
			secured.POST("/me/patients/:id/avatar", patientHandler.UploadAvatar)

			// ------------------------------
			// MEDICATIONS
			// ------------------------------
			secured.GET("/me/medications", medicationHandler.List)
			secured.POST("/me/medications", medicationHandler.Create)
			secured.PATCH("/me/medications/:id", medicationHandler.Update)
			secured.DELETE("/me/medications/:id", medicationHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.DaySchedule)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/me/calendar", appointmentHandler.CalendarMarkers)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
