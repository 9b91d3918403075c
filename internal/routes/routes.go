package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/AtrioImoveis/realty-scheduler/internal/agentlock"
	"github.com/AtrioImoveis/realty-scheduler/internal/audit"
	"github.com/AtrioImoveis/realty-scheduler/internal/config"
	domain "github.com/AtrioImoveis/realty-scheduler/internal/domain/appointment"
	"github.com/AtrioImoveis/realty-scheduler/internal/handlers"
	infraRepo "github.com/AtrioImoveis/realty-scheduler/internal/infra/repository"
	"github.com/AtrioImoveis/realty-scheduler/internal/middleware"
	"github.com/AtrioImoveis/realty-scheduler/internal/notify"
	"github.com/AtrioImoveis/realty-scheduler/internal/storage"
	ucAppointment "github.com/AtrioImoveis/realty-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	notifyDispatcher *notify.Dispatcher,
	rdb *redis.Client,
	uploader *storage.Uploader,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	agentLocks := agentlock.New()

	officeHours := domain.OfficeHours{
		StartHour:   cfg.OfficeStartHour,
		EndHour:     cfg.OfficeEndHour,
		SlotMinutes: cfg.SlotMinutes,
	}

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		agentLocks,
		auditDispatcher,
		notifyDispatcher,
		cfg.MinAdvanceMinutes,
	)

	updateStatusUC := ucAppointment.NewUpdateStatus(
		appointmentRepo,
		auditDispatcher,
		notifyDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		notifyDispatcher,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		agentLocks,
		auditDispatcher,
		notifyDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		cfg.AgentPool,
		officeHours,
	)

	publicBookingUC := ucAppointment.NewCreatePublicBooking(
		appointmentRepo,
		cfg.AgentPool,
		createAppointmentUC,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	agencyHandler := handlers.NewAgencyHandler(db)

	propertyHandler := handlers.NewPropertyHandler(db, uploader)
	clientHandler := handlers.NewClientHandler(db)
	currencyHandler := handlers.NewCurrencyHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		appointmentRepo,
		createAppointmentUC,
		updateStatusUC,
		cancelAppointmentUC,
		rescheduleAppointmentUC,
		deleteAppointmentUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC, publicBookingUC)

	// ======================================================
	// 📈 OBSERVABILIDADE
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.PublicRateLimit(rdb, cfg.PublicRateLimit))
		{
			publicAPI.GET("/:slug/properties", publicHandler.ListProperties)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/agency", agencyHandler.GetMeAgency)
			secured.PATCH("/me/agency", agencyHandler.UpdateMeAgency)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)

			secured.GET("/me/properties", propertyHandler.List)
			secured.GET("/me/properties/:id", propertyHandler.Get)
			secured.POST("/me/properties", propertyHandler.Create)
			secured.PATCH("/me/properties/:id", propertyHandler.Update)
			secured.POST("/me/properties/:id/photo", propertyHandler.UploadPhoto)

			secured.GET("/currencies", currencyHandler.List)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/range", appointmentHandler.ListByRange)
			secured.GET("/me/appointments/public", appointmentHandler.ListPublic)
			secured.GET("/me/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/reschedule", appointmentHandler.Reschedule)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			secured.GET("/me/clients/:id/appointments", appointmentHandler.ListByClient)
			secured.GET("/me/properties/:id/appointments", appointmentHandler.ListByProperty)
			secured.GET("/me/properties/:id/appointments/public", appointmentHandler.ListPublicByProperty)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
