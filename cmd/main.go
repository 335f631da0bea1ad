package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"orbit-ads/internal/adapter/genai"
	httpadapter "orbit-ads/internal/adapter/http"
	"orbit-ads/internal/adapter/postgres"
	"orbit-ads/internal/adapter/redisclock"
	"orbit-ads/internal/adapter/s3storage"
	"orbit-ads/internal/adapter/usecase"
	"orbit-ads/internal/config"
	"orbit-ads/internal/db"
	"orbit-ads/internal/metrics"
)

// main is the entry point of the ad platform. It loads configuration,
// optionally runs database migrations, initializes the database pools and
// adapters, then starts the HTTP server. On receiving a termination
// signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemoData {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	rdb, err := db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer rdb.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New()
	if err = m.Register(registry); err != nil {
		logger.Error("metrics registration error", slog.Any("error", err))
		os.Exit(1)
	}

	adRepo := postgres.NewAdRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	directoryRepo := postgres.NewDirectoryRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	clock := redisclock.New(rdb)
	textSvc := genai.New(cfg.GenAI.BaseURL, cfg.GenAI.APIKey, cfg.GenAI.Model)
	storage := s3storage.New(cfg.S3)
	moderation := usecase.NewModerationSwitch(cfg.ModerationEnabled)

	adsUC := usecase.NewAdsUseCase(adRepo, directoryRepo, campaignRepo, clock, m)
	campaignsUC := usecase.NewCampaignUseCase(campaignRepo, directoryRepo, clock, textSvc, moderation, storage)
	directoryUC := usecase.NewDirectoryUseCase(directoryRepo)
	statsUC := usecase.NewStatsUseCase(statsRepo, campaignRepo, directoryRepo)

	handler := httpadapter.NewHandler(adsUC, campaignsUC, directoryUC, statsUC, clock, moderation, registry, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
