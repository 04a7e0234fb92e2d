// @title                       Connects Service API
// @version                     1.0
// @description                 Connects ledger, onboarding and public directories of the freelance marketplace.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/xlance/connects-service/internal/api"
	"github.com/xlance/connects-service/internal/core/service"
	"github.com/xlance/connects-service/internal/infrastructure/config"
	mongodb "github.com/xlance/connects-service/internal/infrastructure/db/mongo"
	redisdb "github.com/xlance/connects-service/internal/infrastructure/db/redis"
	"github.com/xlance/connects-service/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "connects-service",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "connects-service",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect")
		}
	}()

	store := mongodb.NewProfileStore(db, cfg.Ledger.TxnMaxAttempts, logger.Component("profile_store"))
	accounts := mongodb.NewAuthRepository(db)
	if err := mongodb.EnsureIndexes(ctx, store, accounts); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure mongodb indexes")
	}

	// The idempotency cache is optional: without Redis every keyed request
	// goes through the transaction, which still detects replays.
	var idem service.IdempotencyCache
	rdb, err := connectRedis(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, idempotency cache disabled")
	}
	if rdb != nil {
		defer rdb.Close()
		idem = redisdb.NewIdempotencyCache(rdb, cfg.Ledger.IdempotencyTTL)
	}

	profiles := service.NewProfileService(store, cfg.Ledger.StarterConnects, logger.Component("profile"))
	ledger := service.NewLedgerService(store, idem, logger.Component("ledger"))
	onboarding := service.NewOnboardingService(store, logger.Component("onboarding"))
	auth := service.NewAuthService(accounts, profiles, cfg.JWTSecret, cfg.TokenTTL, cfg.AdminEmails, logger.Component("auth"))

	e := api.NewRouter(api.Dependencies{
		Auth:       auth,
		Ledger:     ledger,
		Onboarding: onboarding,
		Profiles:   profiles,
		JWTSecret:  cfg.JWTSecret,
		Mongo:      db,
		Redis:      rdb,
		Log:        logger.Component("http"),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
		return
	}
	log.Info().Msg("server exited gracefully")
}
