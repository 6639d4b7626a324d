package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
)

// RaceRepository implements the race repository for PostgreSQL
type RaceRepository struct {
	db *pgxpool.Pool
}

// NewRaceRepository creates a new RaceRepository
func NewRaceRepository(db *pgxpool.Pool) *RaceRepository {
	return &RaceRepository{db: db}
}

const raceColumns = `race_id, season, round, race_name, race_date, has_sprint, status`

func scanRace(row pgx.Row) (*domain.Race, error) {
	var race domain.Race
	err := row.Scan(&race.ID, &race.Season, &race.Round, &race.Name, &race.Date, &race.HasSprint, &race.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRaceNotFound
		}
		return nil, fmt.Errorf("failed to scan race: %w", err)
	}
	return &race, nil
}

// GetRace retrieves a race by its id
func (r *RaceRepository) GetRace(ctx context.Context, raceID int) (*domain.Race, error) {
	query := `SELECT ` + raceColumns + ` FROM races WHERE race_id = $1`
	return scanRace(r.db.QueryRow(ctx, query, raceID))
}

// GetRaceByRound retrieves a race by (season, round)
func (r *RaceRepository) GetRaceByRound(ctx context.Context, season, round int) (*domain.Race, error) {
	query := `SELECT ` + raceColumns + ` FROM races WHERE season = $1 AND round = $2`
	return scanRace(r.db.QueryRow(ctx, query, season, round))
}

func (r *RaceRepository) queryRaces(ctx context.Context, query string, args ...any) ([]domain.Race, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query races: %w", err)
	}
	defer rows.Close()

	var races []domain.Race
	for rows.Next() {
		var race domain.Race
		if err := rows.Scan(&race.ID, &race.Season, &race.Round, &race.Name, &race.Date, &race.HasSprint, &race.Status); err != nil {
			return nil, fmt.Errorf("failed to scan race row: %w", err)
		}
		races = append(races, race)
	}
	return races, rows.Err()
}

// ListRaces returns the full calendar of a season in round order
func (r *RaceRepository) ListRaces(ctx context.Context, season int) ([]domain.Race, error) {
	query := `SELECT ` + raceColumns + ` FROM races WHERE season = $1 ORDER BY round`
	return r.queryRaces(ctx, query, season)
}

// ListRacesBefore returns races of a season whose date has passed the cutoff
func (r *RaceRepository) ListRacesBefore(ctx context.Context, season int, cutoff time.Time) ([]domain.Race, error) {
	query := `SELECT ` + raceColumns + ` FROM races WHERE season = $1 AND race_date < $2 ORDER BY round`
	return r.queryRaces(ctx, query, season, cutoff)
}

// ListRacesNotFinished returns races of a season not yet marked finished
func (r *RaceRepository) ListRacesNotFinished(ctx context.Context, season int) ([]domain.Race, error) {
	query := `SELECT ` + raceColumns + ` FROM races WHERE season = $1 AND status <> $2 ORDER BY round`
	return r.queryRaces(ctx, query, season, domain.RaceStatusFinished)
}

// UpdateRaceStatus writes the advisory lifecycle status
func (r *RaceRepository) UpdateRaceStatus(ctx context.Context, raceID int, status domain.RaceStatus) error {
	_, err := r.db.Exec(ctx, `UPDATE races SET status = $1 WHERE race_id = $2`, status, raceID)
	if err != nil {
		return fmt.Errorf("failed to update race status: %w", err)
	}
	return nil
}

// UpsertRace inserts a calendar entry or refreshes its immutable fields
func (r *RaceRepository) UpsertRace(ctx context.Context, race *domain.Race) error {
	query := `
		INSERT INTO races (season, round, race_name, race_date, has_sprint, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (season, round) DO UPDATE
		SET race_name = EXCLUDED.race_name,
		    race_date = EXCLUDED.race_date,
		    has_sprint = EXCLUDED.has_sprint
		RETURNING race_id
	`
	err := r.db.QueryRow(ctx, query,
		race.Season, race.Round, race.Name, race.Date, race.HasSprint, race.Status,
	).Scan(&race.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert race: %w", err)
	}
	return nil
}
