package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
)

// Bet defines the data access required by bet placement and settlement.
type Bet interface {
	CreateBet(ctx context.Context, bet *domain.Bet) error
	GetBet(ctx context.Context, id uuid.UUID) (*domain.Bet, error)
	ListBetsForUser(ctx context.Context, userID string) ([]domain.Bet, error)
	ListPendingBetsForRace(ctx context.Context, raceID int) ([]domain.Bet, error)

	// SettleBetIfPending transitions the bet pending -> won|lost and writes
	// winnings in one compare-and-swap update. It returns the number of rows
	// affected: zero means another settlement run already claimed the bet.
	SettleBetIfPending(ctx context.Context, id uuid.UUID, status domain.BetStatus, winnings int64) (int64, error)
}
