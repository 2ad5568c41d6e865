package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plantops/identity-service/internal/api"
	"github.com/plantops/identity-service/internal/core/password"
	"github.com/plantops/identity-service/internal/core/service"
	"github.com/plantops/identity-service/internal/core/token"
	"github.com/plantops/identity-service/internal/infrastructure/config"
	mongodb "github.com/plantops/identity-service/internal/infrastructure/db/mongo"
	redisdb "github.com/plantops/identity-service/internal/infrastructure/db/redis"
	"github.com/plantops/identity-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logr.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		logr.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logr.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Core pipeline ---
	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	issuer := token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Auth.MaxLoginFailures)
	identity := service.NewIdentityService(userRepo, hasher, issuer, limiter)

	if err := identity.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		logr.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	e := api.NewRouter(api.Deps{
		Identity: identity,
		Verifier: issuer,
		Mongo:    db,
		Redis:    rdb,
		Log:      logr,
	})

	go func() {
		logr.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("identity service listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logr.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	logr.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logr.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
