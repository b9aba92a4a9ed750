package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gaablh4z/v7-sistema-completo/internal/audit"
	"github.com/gaablh4z/v7-sistema-completo/internal/cache"
	"github.com/gaablh4z/v7-sistema-completo/internal/config"
	"github.com/gaablh4z/v7-sistema-completo/internal/handlers"
	infraRepo "github.com/gaablh4z/v7-sistema-completo/internal/infra/repository"
	"github.com/gaablh4z/v7-sistema-completo/internal/middleware"
	"github.com/gaablh4z/v7-sistema-completo/internal/notify"
	ucAppointment "github.com/gaablh4z/v7-sistema-completo/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	redisClient *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	hub := notify.NewHub(log)
	notifier := notify.NewDispatcher(hub, log)

	calendarCache := cache.NewCalendarCache(redisClient, log)

	tz := cfg.Timezone

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
		calendarCache,
		tz,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		auditDispatcher,
		calendarCache,
		tz,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
		calendarCache,
		tz,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
		tz,
	)

	startAppointmentUC := ucAppointment.NewStartAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
		tz,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
		tz,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, tz)
	createReviewUC := ucAppointment.NewCreateReview(appointmentRepo, auditDispatcher)

	getCalendarUC := ucAppointment.NewGetCalendar(appointmentRepo, calendarCache, tz)
	getTimeSlotsUC := ucAppointment.NewGetTimeSlots(appointmentRepo, tz)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	vehicleHandler := handlers.NewVehicleHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		createAppointmentUC,
		rescheduleAppointmentUC,
		cancelAppointmentUC,
		confirmAppointmentUC,
		startAppointmentUC,
		completeAppointmentUC,
		listAppointmentsUC,
		createReviewUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(getCalendarUC, getTimeSlotsUC, tz)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db, auditDispatcher, calendarCache)
	holidayHandler := handlers.NewHolidayHandler(db, auditDispatcher, calendarCache)
	inventoryHandler := handlers.NewInventoryHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	wsHandler := handlers.NewWSHandler(hub, log)

	// ======================================================
	// WEBSOCKET
	// ======================================================
	ws := r.Group("/ws")
	ws.Use(middleware.AuthMiddleware(cfg))
	{
		ws.GET("/notifications", wsHandler.Notifications)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// CATÁLOGO E DISPONIBILIDADE (PÚBLICO)
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/service-categories", serviceHandler.ListCategories)
		api.GET("/services/:id/images", serviceHandler.ListImages)

		api.GET("/availability/calendar", availabilityHandler.Calendar)
		api.GET("/availability/time-slots", availabilityHandler.TimeSlots)

		// ------------------------------
		// ÁREA DO CLIENTE
		// ------------------------------
		me := api.Group("/me")
		me.Use(middleware.AuthMiddleware(cfg))
		{
			me.GET("/vehicles", vehicleHandler.List)
			me.POST("/vehicles", vehicleHandler.Create)
			me.PATCH("/vehicles/:id", vehicleHandler.Update)
			me.DELETE("/vehicles/:id", vehicleHandler.Delete)

			me.POST("/appointments", appointmentHandler.Create)
			me.GET("/appointments", appointmentHandler.ListMine)
			me.GET("/appointments/:id", appointmentHandler.GetMine)
			me.PATCH("/appointments/:id", appointmentHandler.Reschedule)
			me.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			me.POST("/appointments/:id/review", appointmentHandler.Review)
		}

		// ------------------------------
		// PAINEL ADMINISTRATIVO
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin())
		{
			admin.GET("/appointments", appointmentHandler.ListByDate)
			admin.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			admin.PATCH("/appointments/:id/start", appointmentHandler.Start)
			admin.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			admin.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			admin.POST("/services", serviceHandler.Create)
			admin.PUT("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)
			admin.POST("/services/:id/images", serviceHandler.UploadImage)
			admin.POST("/service-categories", serviceHandler.CreateCategory)

			admin.GET("/working-hours", workingHoursHandler.List)
			admin.PUT("/working-hours", workingHoursHandler.Update)

			admin.GET("/holidays", holidayHandler.List)
			admin.POST("/holidays", holidayHandler.Create)
			admin.DELETE("/holidays/:id", holidayHandler.Delete)

			admin.GET("/inventory", inventoryHandler.List)
			admin.POST("/inventory", inventoryHandler.Create)
			admin.PUT("/inventory/:id", inventoryHandler.Update)
			admin.PATCH("/inventory/:id/adjust", inventoryHandler.Adjust)
			admin.DELETE("/inventory/:id", inventoryHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
