package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
)

// BetRepository implements the bet repository for PostgreSQL
type BetRepository struct {
	db *pgxpool.Pool
}

// NewBetRepository creates a new BetRepository
func NewBetRepository(db *pgxpool.Pool) *BetRepository {
	return &BetRepository{db: db}
}

// CreateBet inserts a new bet record
func (r *BetRepository) CreateBet(ctx context.Context, bet *domain.Bet) error {
	query := `
		INSERT INTO bets (bet_id, user_id, race_id, bet_type, selection, stake, odds, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		bet.ID, bet.UserID, bet.RaceID, bet.Type, bet.Selection, bet.Stake, bet.Odds, bet.Status,
	).Scan(&bet.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create bet: %w", err)
	}
	return nil
}

const betColumns = `bet_id, user_id, race_id, bet_type, selection, stake, odds, status, winnings, created_at, settled_at`

func scanBet(row pgx.Row) (*domain.Bet, error) {
	var b domain.Bet
	err := row.Scan(&b.ID, &b.UserID, &b.RaceID, &b.Type, &b.Selection,
		&b.Stake, &b.Odds, &b.Status, &b.Winnings, &b.CreatedAt, &b.SettledAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBet retrieves a bet by id
func (r *BetRepository) GetBet(ctx context.Context, id uuid.UUID) (*domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE bet_id = $1`
	b, err := scanBet(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBetNotFound
		}
		return nil, fmt.Errorf("failed to get bet: %w", err)
	}
	return b, nil
}

func (r *BetRepository) queryBets(ctx context.Context, query string, args ...any) ([]domain.Bet, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets: %w", err)
	}
	defer rows.Close()

	var bets []domain.Bet
	for rows.Next() {
		b, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet row: %w", err)
		}
		bets = append(bets, *b)
	}
	return bets, rows.Err()
}

// ListBetsForUser returns all of a user's bets, newest first
func (r *BetRepository) ListBetsForUser(ctx context.Context, userID string) ([]domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryBets(ctx, query, userID)
}

// ListPendingBetsForRace returns every unsettled bet for a race
func (r *BetRepository) ListPendingBetsForRace(ctx context.Context, raceID int) ([]domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE race_id = $1 AND status = $2`
	return r.queryBets(ctx, query, raceID, domain.BetStatusPending)
}

// SettleBetIfPending performs a compare-and-swap on the bet status.
// Returns the number of rows affected (0 if the bet was already settled).
// The status guard is what makes concurrent settlement runs safe: only one
// of them observes rows affected = 1 and credits the winnings.
func (r *BetRepository) SettleBetIfPending(ctx context.Context, id uuid.UUID, status domain.BetStatus, winnings int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE bets
		SET status = $1, winnings = $2, settled_at = NOW()
		WHERE bet_id = $3 AND status = $4
	`, status, winnings, id, domain.BetStatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to settle bet: %w", err)
	}
	return tag.RowsAffected(), nil
}
