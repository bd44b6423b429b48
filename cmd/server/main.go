package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/venuelink/venue-services/internal/api"
	"github.com/venuelink/venue-services/internal/core/service"
	"github.com/venuelink/venue-services/internal/infrastructure/config"
	"github.com/venuelink/venue-services/internal/infrastructure/db/mysql"
	redisdb "github.com/venuelink/venue-services/internal/infrastructure/db/redis"
	"github.com/venuelink/venue-services/internal/infrastructure/queue"
	"github.com/venuelink/venue-services/internal/pkg/token"
	"github.com/venuelink/venue-services/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "venue-services",
		Pretty:  cfg.Env == "development",
	})

	db, err := mysql.Connect(cfg.MySQL.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mysql")
	}
	if err := mysql.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	codec := token.NewCodec(cfg.JWT.Secret, cfg.JWT.Issuer)

	dispatcher := queue.NewDispatcher(0, service.NewNotificationService(log), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, codec, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
