package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/TurneroApp/cancha-scheduler/internal/audit"
	"github.com/TurneroApp/cancha-scheduler/internal/cache"
	"github.com/TurneroApp/cancha-scheduler/internal/config"
	"github.com/TurneroApp/cancha-scheduler/internal/domain/pricing"
	"github.com/TurneroApp/cancha-scheduler/internal/handlers"
	infraRepo "github.com/TurneroApp/cancha-scheduler/internal/infra/repository"
	"github.com/TurneroApp/cancha-scheduler/internal/middleware"
	ucReport "github.com/TurneroApp/cancha-scheduler/internal/usecase/report"
	ucReservation "github.com/TurneroApp/cancha-scheduler/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)
	rateRepo := infraRepo.NewRateGormRepository(db)
	analyticsRepo := infraRepo.NewAnalyticsGormRepository(db)

	priceCalculator := pricing.NewCalculator(rateRepo, cfg.DepositPercent)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	readCache := cache.Middleware(redisClient, cfg.CacheTTL)

	// ======================================================
	// 🧠 USE CASES — RESERVAS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		priceCalculator,
		auditDispatcher,
	)

	confirmReservationUC := ucReservation.NewConfirmReservation(
		reservationRepo,
		auditDispatcher,
		cfg.DepositTolerancePercent,
	)

	cancelReservationUC := ucReservation.NewCancelReservation(
		reservationRepo,
		auditDispatcher,
	)

	finalizeReservationUC := ucReservation.NewFinalizeReservation(
		reservationRepo,
		auditDispatcher,
	)

	availabilityUC := ucReservation.NewGetAvailability(
		reservationRepo,
		cfg.MaxRangeDays,
	)

	getReservationUC := ucReservation.NewGetReservation(reservationRepo)
	listSlotsUC := ucReservation.NewListSlots(reservationRepo)
	listByDateUC := ucReservation.NewListByDate(reservationRepo)
	listByMonthUC := ucReservation.NewListByMonth(reservationRepo)

	// ======================================================
	// 🧠 USE CASES — REPORTES
	// ======================================================
	revenueByPeriodUC := ucReport.NewRevenueByPeriod(analyticsRepo)
	revenueBySportUC := ucReport.NewRevenueBySport(analyticsRepo)
	revenueByVenueUC := ucReport.NewRevenueByVenue(analyticsRepo)
	occupancyUC := ucReport.NewOccupancyByCourt(analyticsRepo)
	topClientsUC := ucReport.NewTopClients(analyticsRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	venueHandler := handlers.NewVenueHandler(db)

	courtHandler := handlers.NewCourtHandler(db)
	slotHandler := handlers.NewSlotHandler(db)
	rateHandler := handlers.NewRateHandler(db)
	clientHandler := handlers.NewClientHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		confirmReservationUC,
		cancelReservationUC,
		finalizeReservationUC,
		getReservationUC,
		listByDateUC,
		listByMonthUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(
		availabilityUC,
		listSlotsUC,
	)

	reportHandler := handlers.NewReportHandler(
		revenueByPeriodUC,
		revenueBySportUC,
		revenueByVenueUC,
		occupancyUC,
		topClientsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		availabilityUC,
		createReservationUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.TimeoutMiddleware(cfg.QueryTimeout))
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/availability", readCache, publicHandler.Availability)
			publicAPI.POST("/:slug/reservations", publicHandler.CreateReservation)
		}

		// Consulta por código, sin slug: el código ya identifica la reserva.
		api.GET("/reservations/:code", publicHandler.GetReservationByCode)

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

			secured.GET("/me/venue", venueHandler.GetMeVenue)
			secured.PATCH("/me/venue", venueHandler.UpdateMeVenue)

			secured.GET("/me/clients", clientHandler.List)

			secured.GET("/me/sports", courtHandler.ListSports)
			secured.POST("/me/sports", courtHandler.CreateSport)

			secured.GET("/me/courts", courtHandler.List)
			secured.POST("/me/courts", courtHandler.Create)
			secured.PATCH("/me/courts/:id", courtHandler.Update)

			secured.GET("/me/slots", slotHandler.List)
			secured.POST("/me/slots", slotHandler.Create)
			secured.PATCH("/me/slots/:id", slotHandler.Update)

			secured.GET("/me/rates", rateHandler.List)
			secured.POST("/me/rates", rateHandler.Create)
			secured.PATCH("/me/rates/:id", rateHandler.Update)

			// ------------------------------
			// DISPONIBILIDAD
			// ------------------------------
			secured.GET("/me/availability", readCache, availabilityHandler.Get)
			secured.GET("/me/availability/slots", availabilityHandler.ListSlots)

			// ------------------------------
			// RESERVAS
			// ------------------------------
			secured.POST("/me/reservations", reservationHandler.Create)
			secured.GET("/me/reservations", reservationHandler.ListByDate)
			secured.GET("/me/reservations/month", reservationHandler.ListByMonth)
			secured.GET("/me/reservations/:id", reservationHandler.Get)
			secured.PATCH("/me/reservations/:id/confirm", reservationHandler.Confirm)
			secured.PATCH("/me/reservations/:id/cancel", reservationHandler.Cancel)
			secured.PATCH("/me/reservations/:id/finalize", reservationHandler.Finalize)

			// ------------------------------
			// REPORTES
			// ------------------------------
			reports := secured.Group("/me/reports")
			reports.Use(readCache)
			{
				reports.GET("/revenue", reportHandler.RevenueByPeriod)
				reports.GET("/revenue/by-sport", reportHandler.RevenueBySport)
				reports.GET("/revenue/by-venue", reportHandler.RevenueByVenue)
				reports.GET("/occupancy", reportHandler.OccupancyByCourt)
				reports.GET("/top-clients", reportHandler.TopClients)
			}

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
