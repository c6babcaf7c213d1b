package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/adminhub/console-api/internal/api/handler"
	"github.com/adminhub/console-api/internal/api/middleware"
	"github.com/adminhub/console-api/internal/core/domain"
	"github.com/adminhub/console-api/internal/core/ports"
)

// Dependencies carries everything the router needs to wire routes.
type Dependencies struct {
	Sessions  ports.SessionService
	Users     ports.UserStore
	State     ports.StateStore
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("console"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	userHandler := handler.NewUserHandler(deps.Users)
	settingsHandler := handler.NewSettingsHandler(deps.State)
	authMW := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/session", authHandler.Session)
	e.POST("/auth/logout", authHandler.Logout, authMW)

	// --- User routes (auth + permission matrix) ---
	users := e.Group("/v1/users", authMW)
	users.GET("", userHandler.List, middleware.RequirePermission(domain.ActionViewUsers))
	users.POST("/sync", userHandler.Sync, middleware.RequirePermission(domain.ActionViewUsers))
	users.PUT("/filters", userHandler.SetFilters, middleware.RequirePermission(domain.ActionViewUsers))
	users.PUT("/sort", userHandler.SetSort, middleware.RequirePermission(domain.ActionViewUsers))
	users.POST("", userHandler.Create, middleware.RequirePermission(domain.ActionAddUser))
	users.PATCH("/:id", userHandler.Update, middleware.RequirePermission(domain.ActionEditUser))
	users.DELETE("/:id", userHandler.Delete, middleware.RequirePermission(domain.ActionDeleteUser))

	// --- Settings routes ---
	settings := e.Group("/v1/settings", authMW)
	settings.GET("/theme", settingsHandler.GetTheme)
	settings.PUT("/theme", settingsHandler.PutTheme)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
