package main

import (
	"context"
	"net/http"
	"time"

	"github.com/adminhub/console-api/internal/api"
	"github.com/adminhub/console-api/internal/core/service"
	"github.com/adminhub/console-api/internal/infrastructure/config"
	"github.com/adminhub/console-api/internal/infrastructure/db/redis"
	"github.com/adminhub/console-api/internal/infrastructure/directory"
	"github.com/adminhub/console-api/pkg/logger"
)

// @title Admin Console API
// @version 1.0
// @description Role-based admin console: session management and a user
// @description directory with filtering, sorting, and permission-gated mutations.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	stateStore := redis.NewStateStore(rdb)

	sessions := service.NewSessionService(
		ctx,
		stateStore,
		cfg.JWTSecret,
		time.Duration(cfg.TokenTTLHours)*time.Hour,
		log,
	)

	directoryClient := directory.NewClient(cfg.Directory.URL, 0)
	store := service.NewUserStore(
		directoryClient,
		time.Duration(cfg.SearchDebounceMS)*time.Millisecond,
		log,
	)

	// Initial import; a failure is retained on the store and surfaced to
	// clients, who retry via the sync endpoint.
	go func() {
		if err := store.Fetch(ctx); err != nil {
			log.Warn().Err(err).Msg("initial directory sync failed")
		}
	}()

	e := api.NewRouter(api.Dependencies{
		Sessions:  sessions,
		Users:     store,
		State:     stateStore,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start failed")
	}
}
