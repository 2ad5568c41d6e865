package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plantops/identity-service/internal/api/handler"
	"github.com/plantops/identity-service/internal/api/middleware"
	"github.com/plantops/identity-service/internal/core/domain"
	"github.com/plantops/identity-service/internal/core/ports"
	"github.com/plantops/identity-service/internal/core/token"
)

// Deps carries everything the router needs; constructed once in main.
type Deps struct {
	Identity ports.IdentityService
	Verifier *token.Issuer
	Mongo    *mongo.Database
	Redis    *redis.Client
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("identity"))

	authHandler := handler.NewAuthHandler(deps.Identity)
	identityHandler := handler.NewIdentityHandler(deps.Identity)
	adminHandler := handler.NewAdminHandler(deps.Identity)
	authMiddleware := middleware.Auth(deps.Verifier)

	// --- Public auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	e.GET("/me", identityHandler.Me, authMiddleware)

	// --- Admin-only routes: flat role-set check, admin listed explicitly ---
	admin := e.Group("/admin", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.PUT("/users/:username/role", adminHandler.AssignRole)
	admin.GET("/dashboard", adminHandler.Dashboard)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
