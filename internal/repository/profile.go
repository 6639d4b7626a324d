package repository

import (
	"context"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
)

// Profile defines the data access for user profiles and the coin balance.
type Profile interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	GetProfileByUsername(ctx context.Context, username string) (*domain.Profile, error)
	CreateProfile(ctx context.Context, profile *domain.Profile) error
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	// ListStandings returns all profiles ordered by total points descending,
	// with Rank populated.
	ListStandings(ctx context.Context) ([]domain.Profile, error)

	// ApplyAggregate writes a recomputed points total and credits newly
	// earned coins in one transaction, so a failure between the two writes
	// cannot leave a credited balance next to a stale total (which would
	// credit again on the next recompute). A zero coins value only updates
	// the total.
	ApplyAggregate(ctx context.Context, userID string, totalPoints int, coins int64) error
	// CreditCoins atomically adds delta to the coin balance (coins = coins + delta).
	// Negative deltas are rejected by the schema's non-negative check.
	CreditCoins(ctx context.Context, userID string, delta int64) error
	// DebitCoins atomically subtracts stake from the balance, failing with
	// domain.ErrInsufficientCoins when the balance would go negative.
	DebitCoins(ctx context.Context, userID string, amount int64) error
}
