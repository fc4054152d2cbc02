package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/empleos/employment-portal/internal/api/handler"
	"github.com/empleos/employment-portal/internal/api/middleware"
	"github.com/empleos/employment-portal/internal/core/ports"
	"github.com/empleos/employment-portal/internal/core/service"
	"github.com/empleos/employment-portal/internal/infrastructure/db/postgres"
	redisinfra "github.com/empleos/employment-portal/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb and notifier may be nil; the related features degrade gracefully.
func NewRouter(db *gorm.DB, rdb *goredis.Client, notifier ports.WelcomeNotifier, fromEmail string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	applicantRepo := postgres.NewApplicantRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	offerRepo := postgres.NewOfferRepository(db)
	postulationRepo := postgres.NewPostulationRepository(db)
	tokenRepo := postgres.NewTokenRepository(db)

	var idempotency ports.IdempotencyStore
	if rdb != nil {
		idempotency = redisinfra.NewIdempotencyStore(rdb)
	}

	authService := service.NewAuthService(applicantRepo, tokenRepo, notifier, fromEmail, log)
	companyService := service.NewCompanyService(companyRepo, log)
	offerService := service.NewOfferService(offerRepo, companyRepo, log)
	postulationService := service.NewPostulationService(postulationRepo, applicantRepo, offerRepo, idempotency, log)
	applicantService := service.NewApplicantService(applicantRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	companyHandler := handler.NewCompanyHandler(companyService)
	offerHandler := handler.NewOfferHandler(offerService)
	postulationHandler := handler.NewPostulationHandler(postulationService)
	applicantHandler := handler.NewApplicantHandler(applicantService)

	tokenAuth := middleware.TokenAuth(authService)
	adminOnly := middleware.AdminOnly()

	// --- Public routes ---
	e.POST("/login/", authHandler.Login)
	e.POST("/register/", authHandler.Register)

	// --- Authenticated routes ---
	e.POST("/create-company/", companyHandler.Create, tokenAuth)
	e.POST("/create-offer/", offerHandler.Create, tokenAuth)
	e.PATCH("/update-offer/:id/", offerHandler.Update, tokenAuth)
	e.POST("/create-postulation/", postulationHandler.Create, tokenAuth)

	// --- Admin collection ---
	users := e.Group("/users", tokenAuth, adminOnly)
	users.GET("/", applicantHandler.List)
	users.GET("/:id/", applicantHandler.Get)
	users.PATCH("/:id/", applicantHandler.Update)
	users.DELETE("/:id/", applicantHandler.Delete)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
