package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/f1tipp/F1Tipp_Go/internal/betting"
	"github.com/f1tipp/F1Tipp_Go/internal/bootstrap"
	"github.com/f1tipp/F1Tipp_Go/internal/calendar"
	"github.com/f1tipp/F1Tipp_Go/internal/config"
	"github.com/f1tipp/F1Tipp_Go/internal/database"
	"github.com/f1tipp/F1Tipp_Go/internal/ergast"
	"github.com/f1tipp/F1Tipp_Go/internal/handler"
	"github.com/f1tipp/F1Tipp_Go/internal/livetiming"
	"github.com/f1tipp/F1Tipp_Go/internal/prediction"
	"github.com/f1tipp/F1Tipp_Go/internal/profile"
	"github.com/f1tipp/F1Tipp_Go/internal/scheduler"
	"github.com/f1tipp/F1Tipp_Go/internal/server"
	"github.com/f1tipp/F1Tipp_Go/internal/settlement"
	"github.com/f1tipp/F1Tipp_Go/internal/worker"
)

const (
	shutdownTimeout = 10 * time.Second

	dbMaxConns   = 10
	dbMaxIdle    = 30 * time.Minute
	dbMaxLife    = time.Hour
	workerCount  = 2
	workerQueued = 16
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	ctx := context.Background()

	if err := database.Migrate(ctx, cfg.GetDBConnString()); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdle, dbMaxLife)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool)

	ergastClient := ergast.NewClient(ergast.WithBaseURL(cfg.ErgastBaseURL))
	liveClient := livetiming.NewClient(livetiming.WithBaseURL(cfg.LiveTimingBaseURL))

	calendarService := calendar.NewService(ergastClient, repos.Race, cfg.Season)
	profileService := profile.NewService(repos.Profile, cfg.StandingsCacheTTL)
	predictionService := prediction.NewService(repos.Prediction, repos.Race, repos.Profile, cfg.Season, cfg.PredictionLockBuffer)
	bettingService := betting.NewService(repos.Bet, repos.Profile, repos.Race)
	liveService := livetiming.NewService(liveClient, repos.Prediction, cfg.LiveTimingTTL)

	settlementService, err := settlement.NewService(ergastClient, repos.Race, repos.Prediction, repos.Profile, repos.Bet, cfg.Season)
	if err != nil {
		slog.Error("Settlement service init failed", "error", err)
		os.Exit(1)
	}

	// Background settlement: a worker pool driven by a ticker scheduler.
	// Disabled when AUTO_SETTLE_INTERVAL is unset.
	var (
		workerPool   *worker.Pool
		jobScheduler *scheduler.Scheduler
	)
	if cfg.AutoSettleInterval > 0 {
		workerPool = worker.NewPool(workerCount, workerQueued)
		workerPool.Start()

		jobScheduler = scheduler.New(workerPool)
		jobScheduler.Schedule(cfg.AutoSettleInterval, worker.NewSettlementJob(settlementService))

		slog.Info("Auto settlement enabled", "interval", cfg.AutoSettleInterval)
	}

	srv := server.NewServer(
		cfg.Port,
		cfg.APIKey,
		cfg.TrustedProxies,
		dbPool,
		predictionService,
		bettingService,
		settlementService,
		calendarService,
		profileService,
		liveService,
	)

	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("Server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  jobScheduler,
		WorkerPool: workerPool,
	})
}
