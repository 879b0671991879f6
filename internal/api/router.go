package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/andesalud/patient-gateway/internal/api/handler"
	"github.com/andesalud/patient-gateway/internal/api/middleware"
	"github.com/andesalud/patient-gateway/internal/core/domain"
	"github.com/andesalud/patient-gateway/internal/core/ports"
	"github.com/andesalud/patient-gateway/internal/core/service"
	"github.com/andesalud/patient-gateway/internal/infrastructure/supabase"
	"github.com/andesalud/patient-gateway/internal/pkg/fieldcrypt"
)

// RouterConfig carries the explicitly constructed dependencies the router
// wires into handlers. Nothing here is a mutable global: clients and the
// cipher are configuration-derived singletons, injected once.
type RouterConfig struct {
	Backend  ports.IdentityBackend
	Profiles ports.ProfileStore
	Records  ports.MedicalRecordStore
	Cipher   *fieldcrypt.Cipher

	// SessionCache may be nil, which disables token-resolution caching.
	SessionCache ports.SessionCache
	CacheTTL     time.Duration

	// HealthClient and Redis feed the readiness probe only.
	HealthClient *supabase.Client
	Redis        *redis.Client

	CORSOrigins []string
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware("patient_gateway"))

	// --- Dependencies ---
	authService := service.NewAuthService(cfg.Backend, cfg.Profiles, cfg.Logger)
	profileService := service.NewProfileService(cfg.Profiles, cfg.Logger)
	recordService := service.NewMedicalRecordService(cfg.Records, cfg.Cipher, cfg.Logger)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	recordHandler := handler.NewMedicalRecordHandler(recordService)

	session := middleware.Session(cfg.Backend, cfg.SessionCache, cfg.CacheTTL, cfg.Logger)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/login", authHandler.Login)

	// --- Profile routes ---
	e.GET("/users/:id", profileHandler.Get, session)
	e.GET("/patients", profileHandler.ListPatients, session,
		middleware.RBAC(domain.RoleSpecialist, domain.RoleAdmin))

	// --- Medical record routes ---
	e.POST("/medical/records", recordHandler.Create, session)
	e.GET("/medical/records/:user_id", recordHandler.Get, session)
	e.PUT("/medical/records/:user_id", recordHandler.Update, session)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.HealthClient, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
