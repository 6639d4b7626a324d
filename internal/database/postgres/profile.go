package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
	"github.com/f1tipp/F1Tipp_Go/internal/repository"
)

// ProfileRepository implements the profile repository for PostgreSQL
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `user_id, username, total_points, coins, created_at, updated_at`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.UserID, &p.Username, &p.TotalPoints, &p.Coins, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}
	return &p, nil
}

// GetProfile retrieves a profile by user id
func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return scanProfile(r.db.QueryRow(ctx, query, userID))
}

// GetProfileByUsername retrieves a profile by username
func (r *ProfileRepository) GetProfileByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username = $1`
	return scanProfile(r.db.QueryRow(ctx, query, username))
}

// CreateProfile inserts a new profile
func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (username)
		VALUES ($1)
		RETURNING user_id, total_points, coins, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, profile.Username).
		Scan(&profile.UserID, &profile.TotalPoints, &profile.Coins, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// ListProfiles returns every profile
func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.UserID, &p.Username, &p.TotalPoints, &p.Coins, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// ListStandings returns profiles ordered by total points with ranks assigned.
// Ties share a rank (dense ranking), matching how the leaderboard is shown.
func (r *ProfileRepository) ListStandings(ctx context.Context) ([]domain.Profile, error) {
	query := `
		SELECT user_id, username, total_points, coins, created_at, updated_at,
		       DENSE_RANK() OVER (ORDER BY total_points DESC) AS rank
		FROM profiles
		ORDER BY total_points DESC, username
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query standings: %w", err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.UserID, &p.Username, &p.TotalPoints, &p.Coins, &p.CreatedAt, &p.UpdatedAt, &p.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan standings row: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// ApplyAggregate overwrites the cached points total and credits newly earned
// coins in a single transaction.
func (r *ProfileRepository) ApplyAggregate(ctx context.Context, userID string, totalPoints int, coins int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin aggregate update: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if coins > 0 {
		if _, err := tx.Exec(ctx,
			`UPDATE profiles SET coins = coins + $1, updated_at = NOW() WHERE user_id = $2`,
			coins, userID); err != nil {
			return fmt.Errorf("failed to credit coins: %w", err)
		}
	}

	tag, err := tx.Exec(ctx,
		`UPDATE profiles SET total_points = $1, updated_at = NOW() WHERE user_id = $2`,
		totalPoints, userID)
	if err != nil {
		return fmt.Errorf("failed to update total points: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return tx.Commit(ctx)
}

// CreditCoins atomically adds delta to the coin balance. The increment happens
// in SQL so two concurrent settlements cannot lose an update.
func (r *ProfileRepository) CreditCoins(ctx context.Context, userID string, delta int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE profiles SET coins = coins + $1, updated_at = NOW() WHERE user_id = $2`,
		delta, userID)
	if err != nil {
		return fmt.Errorf("failed to credit coins: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// DebitCoins atomically subtracts a stake, refusing to go below zero.
func (r *ProfileRepository) DebitCoins(ctx context.Context, userID string, amount int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE profiles SET coins = coins - $1, updated_at = NOW() WHERE user_id = $2 AND coins >= $1`,
		amount, userID)
	if err != nil {
		return fmt.Errorf("failed to debit coins: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the user does not exist or the balance is too low; the
		// caller has already resolved the user, so report the balance.
		return domain.ErrInsufficientCoins
	}
	return nil
}
