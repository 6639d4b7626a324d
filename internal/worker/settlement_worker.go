package worker

import (
	"context"

	"github.com/f1tipp/F1Tipp_Go/internal/logger"
	"github.com/f1tipp/F1Tipp_Go/internal/settlement"
)

// SettlementJob sweeps for races whose start time has passed but that have not
// been marked finished, and settles them. It is scheduled at a fixed interval
// so results flow in without an operator pressing the button.
type SettlementJob struct {
	service settlement.Service
}

// NewSettlementJob creates a new settlement sweep job
func NewSettlementJob(service settlement.Service) *SettlementJob {
	return &SettlementJob{service: service}
}

// Process runs one settlement sweep. Per-round failures are reported inside
// the round reports; the sweep itself only fails on infrastructure errors.
func (j *SettlementJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSettlementSweepStarting)

	reports, err := j.service.SettleAuto(ctx)
	if err != nil {
		return err
	}

	settled := 0
	for _, report := range reports {
		if report.Error != "" {
			log.Warn(LogMsgSettlementRoundFailed, "round", report.Round, "error", report.Error)
			continue
		}
		settled++
	}

	log.Info(LogMsgSettlementSweepCompleted, "rounds_checked", len(reports), "rounds_settled", settled)
	return nil
}
