// Command server runs the gamedeck API: an in-memory game catalog with
// navigation management, page-layout persistence and an activity feed.
//
// @title        gamedeck API
// @version      1.0
// @description  Game library catalog, navigation and layout builder API.
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gamedeck/gamedeck/internal/api"
	"github.com/gamedeck/gamedeck/internal/core/service"
	"github.com/gamedeck/gamedeck/internal/infrastructure/db/memory"
	"github.com/gamedeck/gamedeck/internal/infrastructure/queue"
	"github.com/gamedeck/gamedeck/internal/pkg/config"
	"github.com/gamedeck/gamedeck/pkg/logger"

	_ "github.com/gamedeck/gamedeck/docs"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := memory.New()
	if cfg.Seed {
		if err := memory.Seed(ctx, store, cfg.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("failed to seed store")
		}
		log.Info().Interface("counts", store.Counts()).Msg("store seeded")
	}

	feed := service.NewActivityService(cfg.ActivityFeedSize, log)
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, feed, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(store, api.Options{
		JWTSecret: cfg.JWTSecret,
		Activity:  dispatcher,
		Feed:      feed,
		Logger:    log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
