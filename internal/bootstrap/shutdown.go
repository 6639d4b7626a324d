package bootstrap

import (
	"context"
	"log/slog"

	"github.com/f1tipp/F1Tipp_Go/internal/scheduler"
	"github.com/f1tipp/F1Tipp_Go/internal/server"
	"github.com/f1tipp/F1Tipp_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in the correct order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (stop enqueueing new settlement jobs)
// 3. Worker pool (drain in-flight jobs)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgShuttingDownScheduler)
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		slog.Info(LogMsgShuttingDownWorkers)
		components.WorkerPool.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
