package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/artisan-works/commission-system/internal/api/handler"
	"github.com/artisan-works/commission-system/internal/api/middleware"
	"github.com/artisan-works/commission-system/internal/core/domain"
	"github.com/artisan-works/commission-system/internal/core/ports"
)

// Deps carries everything the router needs. Mongo and Redis are nil when the
// in-memory backends are active; readiness then reduces to liveness.
type Deps struct {
	Identity  ports.IdentityService
	Artworks  ports.ArtworkService
	Jobs      ports.JobService
	Revoker   ports.TokenRevoker
	JWTSecret string
	Mongo     *mongo.Database
	Redis     *redis.Client
	Log       zerolog.Logger
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
	e.Use(echoprometheus.NewMiddleware("commission"))

	authHandler := handler.NewAuthHandler(deps.Identity)
	artworkHandler := handler.NewArtworkHandler(deps.Artworks)
	jobHandler := handler.NewJobHandler(deps.Jobs)
	authed := middleware.Auth(deps.JWTSecret, deps.Revoker)

	// --- Identity routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/social", authHandler.SocialLogin)
	e.POST("/auth/logout", authHandler.Logout, authed)
	e.POST("/auth/switch-role", authHandler.SwitchRole, authed)
	e.POST("/auth/add-role", authHandler.AddRole, authed)

	// --- Artwork catalog (buyer-only writes) ---
	v1 := e.Group("/v1", authed)
	v1.POST("/artworks", artworkHandler.Generate, middleware.RequireActiveRole(domain.RoleBuyer))
	v1.GET("/artworks", artworkHandler.List)

	// --- Jobs and chat ---
	v1.POST("/jobs", jobHandler.Create, middleware.RequireActiveRole(domain.RoleBuyer))
	v1.GET("/jobs", jobHandler.List)
	v1.GET("/jobs/:id", jobHandler.Get)
	v1.PATCH("/jobs/:id/status", jobHandler.UpdateStatus)
	v1.POST("/jobs/:id/messages", jobHandler.AddMessage)
	v1.GET("/jobs/:id/messages", jobHandler.ListMessages)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
