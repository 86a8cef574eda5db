// Commerce API server entry point.
//
//	@title			Commerce API
//	@version		1.0
//	@description	Authentication, user administration, and product catalog service.
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/merqado/commerce-api/internal/api"
	"github.com/merqado/commerce-api/internal/core/ports"
	"github.com/merqado/commerce-api/internal/core/service"
	"github.com/merqado/commerce-api/internal/infrastructure/amqp"
	"github.com/merqado/commerce-api/internal/infrastructure/config"
	"github.com/merqado/commerce-api/internal/infrastructure/db/mongo"
	"github.com/merqado/commerce-api/internal/infrastructure/db/redis"
	"github.com/merqado/commerce-api/internal/infrastructure/identity"
	"github.com/merqado/commerce-api/internal/infrastructure/queue"
	"github.com/merqado/commerce-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "commerce-api",
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongo.NewUserRepository(db)
	productRepo := mongo.NewProductRepository(db)
	eventRepo := mongo.NewAuthEventRepository(db)
	companyRepo := mongo.NewCompanyRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := productRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("product index creation failed")
	}
	if err := eventRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("auth event index creation failed")
	}

	// --- Audit pipeline ---
	var publisher ports.EventPublisher
	if cfg.AMQP.URL != "" {
		p, err := amqp.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
		if err != nil {
			log.Fatal().Err(err).Msg("amqp connection failed")
		}
		defer func() { _ = p.Close() }()
		publisher = p
	} else {
		log.Warn().Msg("AMQP_URL not set, auth event publication disabled")
	}

	auditSvc := service.NewAuditService(eventRepo, publisher, redis.NewDedupChecker(rdb), logger.WithComponent("audit"))
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditSvc, logger.WithComponent("dispatcher"))
	dispatcher.Start(ctx)

	// --- Authentication ---
	tokenSvc := service.NewTokenService(cfg.Auth.JWTSecret)

	var authSvc ports.AuthService
	switch cfg.Auth.Strategy {
	case "provider":
		provider := identity.NewProvider(cfg.Provider.URL, cfg.Provider.APIKey)
		authSvc = service.NewProviderAuthService(provider, userRepo, dispatcher, logger.WithComponent("auth"))
	case "local":
		hasher := service.NewBcryptHasher()
		authSvc = service.NewAuthService(userRepo, hasher, tokenSvc, cfg.Auth.TokenTTL, dispatcher, logger.WithComponent("auth"))
	default:
		log.Fatal().Str("strategy", cfg.Auth.Strategy).Msg("unknown auth strategy")
	}

	productSvc := service.NewProductService(productRepo, logger.WithComponent("catalog"))
	userSvc := service.NewUserService(userRepo, logger.WithComponent("users"))

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		DB:              db,
		Redis:           rdb,
		AuthService:     authSvc,
		TokenIssuer:     tokenSvc,
		Users:           userRepo,
		ProductService:  productSvc,
		UserService:     userSvc,
		Companies:       companyRepo,
		LoginRateLimit:  cfg.RateLimit.LoginLimit,
		LoginRateWindow: cfg.RateLimit.LoginWindow,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("auth_strategy", cfg.Auth.Strategy).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
