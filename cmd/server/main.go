package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/empleos/employment-portal/internal/api"
	"github.com/empleos/employment-portal/internal/core/ports"
	"github.com/empleos/employment-portal/internal/infrastructure/config"
	"github.com/empleos/employment-portal/internal/infrastructure/db/postgres"
	redisinfra "github.com/empleos/employment-portal/internal/infrastructure/db/redis"
	"github.com/empleos/employment-portal/internal/infrastructure/email"
	"github.com/empleos/employment-portal/internal/infrastructure/queue"
	"github.com/empleos/employment-portal/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := postgres.Open(postgres.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		DBName:   cfg.Postgres.DBName,
		SSLMode:  cfg.Postgres.SSLMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer func() { _ = postgres.Close(db) }()

	rdb, err := connectRedis(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, idempotency replay disabled")
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	var notifier ports.WelcomeNotifier
	sender := email.NewSender(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log)
	if sender.Enabled() {
		dispatcher := queue.NewDispatcher(0, sender, log)
		dispatcher.Start(ctx)
		notifier = dispatcher
	} else {
		log.Info().Msg("SMTP not configured, welcome emails will not be dispatched")
	}

	e := api.NewRouter(db, rdb, notifier, cfg.SMTP.From, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func connectRedis(ctx context.Context, cfg *config.Config) (*goredis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}
	return redisinfra.Connect(ctx, redisinfra.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
