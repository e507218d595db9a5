package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ricascor080/Back-Barber/internal/audit"
	"github.com/ricascor080/Back-Barber/internal/config"
	"github.com/ricascor080/Back-Barber/internal/handlers"
	infraRepo "github.com/ricascor080/Back-Barber/internal/infra/repository"
	"github.com/ricascor080/Back-Barber/internal/mailer"
	"github.com/ricascor080/Back-Barber/internal/middleware"
	"github.com/ricascor080/Back-Barber/internal/models"
	"github.com/ricascor080/Back-Barber/internal/refcache"
	ucPayment "github.com/ricascor080/Back-Barber/internal/usecase/payment"
	ucReservation "github.com/ricascor080/Back-Barber/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// Caché de datos de referencia: Redis en producción, memoria
	// cuando no hay instancia configurada
	var store refcache.Store
	if cfg.RedisAddr != "" {
		store = refcache.NewRedisStore(cfg.RedisAddr, cfg.RedisPass)
		log.Info("caché de referencia sobre Redis", zap.String("addr", cfg.RedisAddr))
	} else {
		store = refcache.NewMemoryStore()
		log.Info("REDIS_ADDR sin configurar, caché de referencia en memoria")
	}
	ref := refcache.NewReference(refcache.New(store, cfg.RefCacheTTL), db)

	// Notificaciones por correo: sin API key se degradan a no-op
	var notifier mailer.Notifier = mailer.Noop{}
	if cfg.SendGridKey != "" {
		sender := mailer.NewSendGridSender(cfg.SendGridKey, cfg.MailFrom, cfg.MailName)
		notifier = mailer.NewDispatcher(db, sender, log)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	availability := ucReservation.NewAvailability(reservationRepo)

	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		availability,
		auditDispatcher,
	)

	setStatusUC := ucReservation.NewSetStatus(
		reservationRepo,
		availability,
		notifier,
		auditDispatcher,
	)

	recordPaymentUC := ucPayment.NewRecordPayment(
		reservationRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, notifier)
	userHandler := handlers.NewUserHandler(db, ref)
	scheduleHandler := handlers.NewScheduleHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, ref)

	reservationHandler := handlers.NewReservationHandler(
		db,
		cfg,
		createReservationUC,
		setStatusUC,
		availability,
	)

	paymentHandler := handlers.NewPaymentHandler(db, recordPaymentUC, ref)
	cardHandler := handlers.NewCardHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

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
		api.POST("/auth/recovery", authHandler.SendRecoveryCode)
		api.POST("/auth/recovery/validate", authHandler.ValidateRecoveryCode)

		// ------------------------------
		// PÚBLICO: catálogo y barberos
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/barbers/:id", userHandler.GetBarber)
		api.GET("/barbers/:id/availability", reservationHandler.CheckAvailability)
		api.GET("/barbers/:id/occupied-slots", reservationHandler.ListOccupiedSlots)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", userHandler.GetMe)

			// USERS
			secured.GET("/users", userHandler.List)
			secured.PATCH("/users/:id", userHandler.Update)
			secured.POST("/users", middleware.RequireRole(models.RoleAdmin), userHandler.Create)

			// SCHEDULES
			secured.GET("/schedules", scheduleHandler.List)
			adminOnly := middleware.RequireRole(models.RoleAdmin)
			secured.POST("/schedules", adminOnly, scheduleHandler.Create)
			secured.PUT("/schedules/:id", adminOnly, scheduleHandler.Update)
			secured.DELETE("/schedules/:id", adminOnly, scheduleHandler.Delete)

			// SERVICES (escritura solo admin)
			secured.POST("/services", adminOnly, serviceHandler.Create)
			secured.PATCH("/services/:id", adminOnly, serviceHandler.Update)

			// RESERVATIONS
			secured.POST("/reservations", reservationHandler.Create)
			secured.GET("/reservations", reservationHandler.List)
			secured.PATCH("/reservations/:id/status", reservationHandler.SetStatus)

			// PAYMENTS
			secured.POST("/payments", paymentHandler.Create)
			secured.GET("/payments", paymentHandler.List)
			secured.GET("/payments/:id", paymentHandler.Get)

			// CARDS
			secured.GET("/cards", cardHandler.List)
			secured.POST("/cards", cardHandler.Create)
			secured.DELETE("/cards/:id", cardHandler.Delete)

			// AUDIT
			secured.GET("/audit-logs", adminOnly, auditLogsHandler.List)
		}
	}
}
