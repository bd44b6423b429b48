package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/venuelink/venue-services/internal/api/handler"
	"github.com/venuelink/venue-services/internal/api/middleware"
	"github.com/venuelink/venue-services/internal/core/domain"
	"github.com/venuelink/venue-services/internal/core/service"
	"github.com/venuelink/venue-services/internal/infrastructure/config"
	"github.com/venuelink/venue-services/internal/infrastructure/db/mysql"
	redisdb "github.com/venuelink/venue-services/internal/infrastructure/db/redis"
	"github.com/venuelink/venue-services/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *goredis.Client, cfg *config.Config, codec *token.Codec, notifier service.Notifier, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("venue"))

	limiter := redisdb.NewRateLimitStore(rdb)
	e.Use(middleware.RateLimit(limiter, middleware.RateLimitConfig{
		PerMinute: cfg.RateLimit.PerMinute,
		Burst:     cfg.RateLimit.Burst,
	}, log))

	// --- Repositories ---
	userRepo := mysql.NewAuthRepository(db)
	venueRepo := mysql.NewVenueRepository(db)
	eventRepo := mysql.NewEventRepository(db)
	ticketRepo := mysql.NewTicketRepository(db)
	lotRepo := mysql.NewParkingLotRepository(db)
	sessionRepo := mysql.NewParkingSessionRepository(db)
	catalogRepo := mysql.NewCatalogRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	oppRepo := mysql.NewOpportunityRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, codec, cfg.JWT.AccessTTL(), cfg.JWT.RefreshTTL(), log)
	venueService := service.NewVenueService(venueRepo, log)
	eventService := service.NewEventService(eventRepo, venueRepo, log)
	ticketService := service.NewTicketService(ticketRepo, eventRepo, notifier, log)
	parkingService := service.NewParkingService(lotRepo, sessionRepo, venueRepo, log)
	catalogService := service.NewCatalogService(catalogRepo, venueRepo, log)
	orderService := service.NewOrderService(orderRepo, catalogRepo, notifier, log)
	oppService := service.NewOpportunityService(oppRepo, venueRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	venueHandler := handler.NewVenueHandler(venueService)
	eventHandler := handler.NewEventHandler(eventService)
	ticketHandler := handler.NewTicketHandler(ticketService)
	parkingHandler := handler.NewParkingHandler(parkingService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	oppHandler := handler.NewOpportunityHandler(oppService)

	// --- Auth middleware ---
	authn := middleware.Authenticate(codec, userRepo)
	authnOptional := middleware.AuthenticateOptional(codec, userRepo)
	requireStaff := middleware.RequireRole(domain.RoleVenueStaff)
	requireAdmin := middleware.RequireRole(domain.RoleVenueAdmin)
	requireSuper := middleware.RequireRole(domain.RoleSuperAdmin)

	// --- Health & observability ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	v1 := e.Group("/v1")

	// --- Auth ---
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/me", authHandler.Me, authn)
	auth.PATCH("/me", authHandler.UpdateMe, authn)

	admin := v1.Group("/admin", authn, requireSuper)
	admin.POST("/users", authHandler.CreateUser)
	admin.PATCH("/users/:id/status", authHandler.SetUserStatus)

	// --- Venues ---
	venues := v1.Group("/venues")
	venues.GET("", venueHandler.List, authnOptional)
	venues.GET("/:id", venueHandler.Get, authnOptional)
	venues.POST("", venueHandler.Create, authn, requireAdmin)
	venues.PUT("/:id", venueHandler.Update, authn, requireAdmin)
	venues.DELETE("/:id", venueHandler.Delete, authn, requireSuper)
	venues.GET("/:id/events", eventHandler.ListByVenue, authnOptional)
	venues.GET("/:id/parking", parkingHandler.ListLots, authnOptional)
	venues.GET("/:id/catalog", catalogHandler.ListItems, authnOptional)

	// --- Events & tickets ---
	events := v1.Group("/events")
	events.GET("/:id", eventHandler.Get, authnOptional)
	events.POST("", eventHandler.Create, authn, requireAdmin)
	events.PUT("/:id", eventHandler.Update, authn, requireAdmin)
	events.POST("/:id/tickets", ticketHandler.Purchase, authn)

	tickets := v1.Group("/tickets")
	tickets.GET("", ticketHandler.ListMine, authn)
	tickets.POST("/:code/redeem", ticketHandler.Redeem, authn, requireStaff)

	// --- Parking ---
	parking := v1.Group("/parking")
	parking.POST("/lots", parkingHandler.CreateLot, authn, requireAdmin)
	parking.PUT("/lots/:id", parkingHandler.UpdateLot, authn, requireAdmin)
	parking.GET("/lots/:id/sessions", parkingHandler.ListOpenSessions, authn, requireStaff)
	parking.POST("/sessions", parkingHandler.OpenSession, authn)
	parking.POST("/sessions/:id/close", parkingHandler.CloseSession, authn)

	// --- Concierge catalog & orders ---
	catalog := v1.Group("/catalog", authn, requireAdmin)
	catalog.POST("", catalogHandler.CreateItem)
	catalog.PUT("/:id", catalogHandler.UpdateItem)

	orders := v1.Group("/orders", authn)
	orders.POST("", orderHandler.Place)
	orders.GET("", orderHandler.ListMine)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id/status", orderHandler.AdvanceStatus, requireStaff)

	// --- Partner opportunities ---
	opps := v1.Group("/opportunities")
	opps.GET("", oppHandler.List, authnOptional)
	opps.GET("/:id", oppHandler.Get, authnOptional)
	opps.POST("", oppHandler.Create, authn, requireAdmin)
	opps.PATCH("/:id/status", oppHandler.SetStatus, authn, requireAdmin)

	return e
}
