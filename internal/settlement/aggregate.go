package settlement

import (
	"context"
	"fmt"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
	"github.com/f1tipp/F1Tipp_Go/internal/logger"
	"github.com/f1tipp/F1Tipp_Go/internal/metrics"
)

// recomputeUser refreshes one profile's cached point total from the stored
// predictions and converts newly earned points into coins. Coins only grow:
// when a retroactive result correction lowers the total, the delta is
// negative and no currency is clawed back. Total and credit land in one
// repository transaction, so a rerun after a failure sees either both
// writes or neither and never credits the same points twice.
func (s *service) recomputeUser(ctx context.Context, profile domain.Profile) error {
	total, err := s.predictions.SumPointsForUser(ctx, profile.UserID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSumPoints, err)
	}
	if total == profile.TotalPoints {
		return nil
	}

	var coins int64
	if delta := total - profile.TotalPoints; delta > 0 {
		coins = int64(delta) * domain.CoinsPerPoint
	}
	if err := s.profiles.ApplyAggregate(ctx, profile.UserID, total, coins); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToUpdateTotal, err)
	}
	if coins > 0 {
		metrics.CoinsCredited.Add(float64(coins))
	}
	return nil
}

// RecomputeAggregates refreshes every profile's total and coin balance.
// One failing user never blocks the rest of the batch.
func (s *service) RecomputeAggregates(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRecomputeCalled)

	profiles, err := s.profiles.ListProfiles(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToListProfiles, err)
	}

	var failed int
	for _, profile := range profiles {
		if err := s.recomputeUser(ctx, profile); err != nil {
			failed++
			log.Warn(LogMsgUserRecomputeFailed, "user_id", profile.UserID, "error", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("aggregate recompute failed for %d of %d users", failed, len(profiles))
	}
	return nil
}
