package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cogniboost/progress-system/internal/api/handler"
	"github.com/cogniboost/progress-system/internal/api/middleware"
	"github.com/cogniboost/progress-system/internal/core/service"
	mongodb "github.com/cogniboost/progress-system/internal/infrastructure/db/mongo"
	redisdb "github.com/cogniboost/progress-system/internal/infrastructure/db/redis"
	"github.com/cogniboost/progress-system/internal/infrastructure/queue"
)

// Options carries the settings the router needs beyond its dependencies.
type Options struct {
	JWTSecret      string
	TokenTTL       time.Duration
	ContactWorkers int
}

// NewRouter builds the Echo instance with all routes registered. The contact
// dispatcher is returned so main can start its workers and tie them to the
// process lifecycle.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger, opts Options) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("braintrain"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	contactRepo := mongodb.NewContactRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)

	authService := service.NewAuthService(userRepo, opts.JWTSecret, opts.TokenTTL, log)
	scoreService := service.NewScoreService(userRepo, dedup, log)
	profileService := service.NewProfileService(userRepo, log)
	contactService := service.NewContactService(contactRepo, log)
	dispatcher := queue.NewDispatcher(opts.ContactWorkers, contactService, log)

	authHandler := handler.NewAuthHandler(authService, opts.TokenTTL)
	scoreHandler := handler.NewScoreHandler(scoreService)
	profileHandler := handler.NewProfileHandler(profileService)
	contactHandler := handler.NewContactHandler(dispatcher)

	authMiddleware := middleware.Auth(opts.JWTSecret)

	// --- Public routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/contact", contactHandler.Receive)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authMiddleware)
	v1.POST("/games/score", scoreHandler.Submit)
	v1.POST("/questionnaire", profileHandler.SubmitIntake)
	v1.GET("/users/me", profileHandler.Me)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher
}
