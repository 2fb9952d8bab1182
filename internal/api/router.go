package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/tattoostudio/studio-manager/docs"
	"github.com/tattoostudio/studio-manager/internal/api/handler"
	"github.com/tattoostudio/studio-manager/internal/api/middleware"
	"github.com/tattoostudio/studio-manager/internal/core/domain"
	"github.com/tattoostudio/studio-manager/internal/core/ports"
)

// Dependencies holds everything the router wires into handlers.
type Dependencies struct {
	AppName string
	// Debug exposes the schema setup endpoint.
	Debug bool
	Log   zerolog.Logger

	Tokens      ports.TokenVerifier
	Auth        ports.AuthService
	Users       ports.UserService
	Clients     ports.ClientService
	Artists     ports.ArtistService
	Sessions    ports.SessionService
	Provisioner ports.SchemaProvisioner

	// DB and Redis back the readiness probe. Redis may be nil.
	DB    *sql.DB
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()

	// Request metrics go to a per-router registry; /metrics serves it
	// together with the default one.
	registry := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "studio",
		Registerer: registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	staff := middleware.Gate(d.Tokens, domain.RoleStaff)
	admin := middleware.Gate(d.Tokens, domain.RoleAdmin)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler(d.AppName)
	readinessHandler := handler.NewReadinessHandler(d.DB, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, registry},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	api := e.Group("/api")

	// --- Setup ---
	setupHandler := handler.NewSetupHandler(d.Provisioner, d.Log)
	api.POST("/setup/database", setupHandler.Database, middleware.DebugOnly(d.Debug), admin)

	// --- Users ---
	userHandler := handler.NewUserHandler(d.Users, d.Auth)
	users := api.Group("/users")
	users.GET("", userHandler.List, staff)
	users.GET("/search", userHandler.Search, staff)
	users.GET("/:id", userHandler.Get, staff)
	users.POST("", userHandler.Create, admin)
	users.PUT("/:id", userHandler.Update, admin)
	users.DELETE("/:id", userHandler.Delete, admin)

	// --- Clients ---
	clientHandler := handler.NewClientHandler(d.Clients)
	clients := api.Group("/clients")
	clients.GET("", clientHandler.List, staff)
	clients.GET("/:id", clientHandler.Get, staff)
	clients.POST("", clientHandler.Create, staff)
	clients.PUT("/:id", clientHandler.Update, staff)
	clients.DELETE("/:id", clientHandler.Delete, admin)

	// --- Artists ---
	artistHandler := handler.NewArtistHandler(d.Artists)
	artists := api.Group("/artists")
	artists.GET("", artistHandler.List, staff)
	artists.GET("/:id", artistHandler.Get, staff)
	artists.POST("", artistHandler.Create, staff)
	artists.PUT("/:id", artistHandler.Update, staff)
	artists.DELETE("/:id", artistHandler.Delete, admin)

	// --- Sessions ---
	sessionHandler := handler.NewSessionHandler(d.Sessions)
	sessions := api.Group("/sessions")
	sessions.GET("", sessionHandler.List, staff)
	sessions.GET("/:id", sessionHandler.Get, staff)
	sessions.POST("", sessionHandler.Create, staff)
	sessions.PUT("/:id", sessionHandler.Update, staff)
	sessions.DELETE("/:id", sessionHandler.Delete, admin)

	return e
}
