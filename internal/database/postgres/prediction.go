package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
)

// PredictionRepository implements the prediction repository for PostgreSQL
type PredictionRepository struct {
	db *pgxpool.Pool
}

// NewPredictionRepository creates a new PredictionRepository
func NewPredictionRepository(db *pgxpool.Pool) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// UpsertPrediction creates or replaces the user's guess for one (race, session).
// The unique constraint on (user_id, race_id, session_type) keeps the
// one-prediction-per-session invariant; points_earned is left alone here.
func (r *PredictionRepository) UpsertPrediction(ctx context.Context, p *domain.Prediction) error {
	query := `
		INSERT INTO predictions (user_id, race_id, session_type, pole_driver, p1_driver, p2_driver, p3_driver, fastest_lap_driver)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, race_id, session_type) DO UPDATE
		SET pole_driver = EXCLUDED.pole_driver,
		    p1_driver = EXCLUDED.p1_driver,
		    p2_driver = EXCLUDED.p2_driver,
		    p3_driver = EXCLUDED.p3_driver,
		    fastest_lap_driver = EXCLUDED.fastest_lap_driver,
		    updated_at = NOW()
		RETURNING prediction_id
	`
	err := r.db.QueryRow(ctx, query,
		p.UserID, p.RaceID, p.SessionType,
		driverToDB(p.Pole), driverToDB(p.P1), driverToDB(p.P2), driverToDB(p.P3), driverToDB(p.FastestLap),
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert prediction: %w", err)
	}
	return nil
}

const predictionColumns = `prediction_id, user_id, race_id, session_type, pole_driver, p1_driver, p2_driver, p3_driver, fastest_lap_driver, points_earned, created_at, updated_at`

func scanPrediction(row pgx.Row) (*domain.Prediction, error) {
	var (
		p                        domain.Prediction
		pole, p1, p2, p3, flLap  *int
	)
	err := row.Scan(&p.ID, &p.UserID, &p.RaceID, &p.SessionType,
		&pole, &p1, &p2, &p3, &flLap,
		&p.PointsEarned, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Pole = driverFromDB(pole)
	p.P1 = driverFromDB(p1)
	p.P2 = driverFromDB(p2)
	p.P3 = driverFromDB(p3)
	p.FastestLap = driverFromDB(flLap)
	return &p, nil
}

// GetPrediction retrieves one user's prediction for a (race, session)
func (r *PredictionRepository) GetPrediction(ctx context.Context, userID string, raceID int, session domain.SessionType) (*domain.Prediction, error) {
	query := `SELECT ` + predictionColumns + ` FROM predictions WHERE user_id = $1 AND race_id = $2 AND session_type = $3`
	p, err := scanPrediction(r.db.QueryRow(ctx, query, userID, raceID, session))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPredictionNotFound
		}
		return nil, fmt.Errorf("failed to get prediction: %w", err)
	}
	return p, nil
}

func (r *PredictionRepository) queryPredictions(ctx context.Context, query string, args ...any) ([]domain.Prediction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	var predictions []domain.Prediction
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction row: %w", err)
		}
		predictions = append(predictions, *p)
	}
	return predictions, rows.Err()
}

// ListPredictionsForSession returns every stored prediction for one (race, session)
func (r *PredictionRepository) ListPredictionsForSession(ctx context.Context, raceID int, session domain.SessionType) ([]domain.Prediction, error) {
	query := `SELECT ` + predictionColumns + ` FROM predictions WHERE race_id = $1 AND session_type = $2`
	return r.queryPredictions(ctx, query, raceID, session)
}

// ListPredictionsForUser returns all of one user's predictions across races
func (r *PredictionRepository) ListPredictionsForUser(ctx context.Context, userID string) ([]domain.Prediction, error) {
	query := `SELECT ` + predictionColumns + ` FROM predictions WHERE user_id = $1 ORDER BY race_id, session_type`
	return r.queryPredictions(ctx, query, userID)
}

// UpdatePredictionPoints overwrites points_earned for one prediction
func (r *PredictionRepository) UpdatePredictionPoints(ctx context.Context, predictionID, points int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE predictions SET points_earned = $1, updated_at = NOW() WHERE prediction_id = $2`,
		points, predictionID)
	if err != nil {
		return fmt.Errorf("failed to update prediction points: %w", err)
	}
	return nil
}

// UpsertBonusPrediction creates or replaces the user's bonus guesses for a race
func (r *PredictionRepository) UpsertBonusPrediction(ctx context.Context, p *domain.BonusPrediction) error {
	query := `
		INSERT INTO bonus_predictions (user_id, race_id, safety_car, red_flag, rain, first_dnf_driver, driver_of_day, most_overtakes_driver, dnf_bucket)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, race_id) DO UPDATE
		SET safety_car = EXCLUDED.safety_car,
		    red_flag = EXCLUDED.red_flag,
		    rain = EXCLUDED.rain,
		    first_dnf_driver = EXCLUDED.first_dnf_driver,
		    driver_of_day = EXCLUDED.driver_of_day,
		    most_overtakes_driver = EXCLUDED.most_overtakes_driver,
		    dnf_bucket = EXCLUDED.dnf_bucket,
		    updated_at = NOW()
		RETURNING bonus_id
	`
	err := r.db.QueryRow(ctx, query,
		p.UserID, p.RaceID, p.SafetyCar, p.RedFlag, p.Rain,
		driverToDB(p.FirstDNF), driverToDB(p.DriverOfDay), driverToDB(p.MostOvertakes),
		bucketToDB(p.DNFCount),
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert bonus prediction: %w", err)
	}
	return nil
}

const bonusColumns = `bonus_id, user_id, race_id, safety_car, red_flag, rain, first_dnf_driver, driver_of_day, most_overtakes_driver, dnf_bucket, points_earned, created_at, updated_at`

func scanBonusPrediction(row pgx.Row) (*domain.BonusPrediction, error) {
	var (
		p                         domain.BonusPrediction
		firstDNF, dod, overtakes  *int
		bucket                    *string
	)
	err := row.Scan(&p.ID, &p.UserID, &p.RaceID,
		&p.SafetyCar, &p.RedFlag, &p.Rain,
		&firstDNF, &dod, &overtakes, &bucket,
		&p.PointsEarned, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.FirstDNF = driverFromDB(firstDNF)
	p.DriverOfDay = driverFromDB(dod)
	p.MostOvertakes = driverFromDB(overtakes)
	p.DNFCount = bucketFromDB(bucket)
	return &p, nil
}

// GetBonusPrediction retrieves one user's bonus prediction for a race
func (r *PredictionRepository) GetBonusPrediction(ctx context.Context, userID string, raceID int) (*domain.BonusPrediction, error) {
	query := `SELECT ` + bonusColumns + ` FROM bonus_predictions WHERE user_id = $1 AND race_id = $2`
	p, err := scanBonusPrediction(r.db.QueryRow(ctx, query, userID, raceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPredictionNotFound
		}
		return nil, fmt.Errorf("failed to get bonus prediction: %w", err)
	}
	return p, nil
}

// ListBonusPredictionsForRace returns every bonus prediction for a race
func (r *PredictionRepository) ListBonusPredictionsForRace(ctx context.Context, raceID int) ([]domain.BonusPrediction, error) {
	query := `SELECT ` + bonusColumns + ` FROM bonus_predictions WHERE race_id = $1`
	rows, err := r.db.Query(ctx, query, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bonus predictions: %w", err)
	}
	defer rows.Close()

	var predictions []domain.BonusPrediction
	for rows.Next() {
		p, err := scanBonusPrediction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bonus prediction row: %w", err)
		}
		predictions = append(predictions, *p)
	}
	return predictions, rows.Err()
}

// UpdateBonusPredictionPoints overwrites points_earned for one bonus prediction
func (r *PredictionRepository) UpdateBonusPredictionPoints(ctx context.Context, bonusID, points int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE bonus_predictions SET points_earned = $1, updated_at = NOW() WHERE bonus_id = $2`,
		points, bonusID)
	if err != nil {
		return fmt.Errorf("failed to update bonus prediction points: %w", err)
	}
	return nil
}

// UpsertSeasonPrediction creates or replaces the user's championship guesses
func (r *PredictionRepository) UpsertSeasonPrediction(ctx context.Context, p *domain.SeasonPrediction) error {
	query := `
		INSERT INTO season_predictions (user_id, season, driver_p1, driver_p2, driver_p3, constructor_p1, constructor_p2, constructor_p3, most_wins_driver, most_poles_driver, most_dnfs_driver)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id, season) DO UPDATE
		SET driver_p1 = EXCLUDED.driver_p1,
		    driver_p2 = EXCLUDED.driver_p2,
		    driver_p3 = EXCLUDED.driver_p3,
		    constructor_p1 = EXCLUDED.constructor_p1,
		    constructor_p2 = EXCLUDED.constructor_p2,
		    constructor_p3 = EXCLUDED.constructor_p3,
		    most_wins_driver = EXCLUDED.most_wins_driver,
		    most_poles_driver = EXCLUDED.most_poles_driver,
		    most_dnfs_driver = EXCLUDED.most_dnfs_driver,
		    updated_at = NOW()
		RETURNING season_prediction_id
	`
	err := r.db.QueryRow(ctx, query,
		p.UserID, p.Season,
		driverToDB(p.DriverP1), driverToDB(p.DriverP2), driverToDB(p.DriverP3),
		constructorToDB(p.ConstructorP1), constructorToDB(p.ConstructorP2), constructorToDB(p.ConstructorP3),
		driverToDB(p.MostWinsDriver), driverToDB(p.MostPolesDriver), driverToDB(p.MostDNFsDriver),
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert season prediction: %w", err)
	}
	return nil
}

const seasonColumns = `season_prediction_id, user_id, season, driver_p1, driver_p2, driver_p3, constructor_p1, constructor_p2, constructor_p3, most_wins_driver, most_poles_driver, most_dnfs_driver, points_earned, created_at, updated_at`

func scanSeasonPrediction(row pgx.Row) (*domain.SeasonPrediction, error) {
	var (
		p                   domain.SeasonPrediction
		d1, d2, d3          *int
		c1, c2, c3          *string
		wins, poles, dnfs   *int
	)
	err := row.Scan(&p.ID, &p.UserID, &p.Season,
		&d1, &d2, &d3, &c1, &c2, &c3,
		&wins, &poles, &dnfs,
		&p.PointsEarned, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.DriverP1, p.DriverP2, p.DriverP3 = driverFromDB(d1), driverFromDB(d2), driverFromDB(d3)
	p.ConstructorP1, p.ConstructorP2, p.ConstructorP3 = constructorFromDB(c1), constructorFromDB(c2), constructorFromDB(c3)
	p.MostWinsDriver, p.MostPolesDriver, p.MostDNFsDriver = driverFromDB(wins), driverFromDB(poles), driverFromDB(dnfs)
	return &p, nil
}

// GetSeasonPrediction retrieves one user's season prediction
func (r *PredictionRepository) GetSeasonPrediction(ctx context.Context, userID string, season int) (*domain.SeasonPrediction, error) {
	query := `SELECT ` + seasonColumns + ` FROM season_predictions WHERE user_id = $1 AND season = $2`
	p, err := scanSeasonPrediction(r.db.QueryRow(ctx, query, userID, season))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPredictionNotFound
		}
		return nil, fmt.Errorf("failed to get season prediction: %w", err)
	}
	return p, nil
}

// ListSeasonPredictionsForSeason returns every season prediction for a season
func (r *PredictionRepository) ListSeasonPredictionsForSeason(ctx context.Context, season int) ([]domain.SeasonPrediction, error) {
	query := `SELECT ` + seasonColumns + ` FROM season_predictions WHERE season = $1`
	rows, err := r.db.Query(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query season predictions: %w", err)
	}
	defer rows.Close()

	var predictions []domain.SeasonPrediction
	for rows.Next() {
		p, err := scanSeasonPrediction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan season prediction row: %w", err)
		}
		predictions = append(predictions, *p)
	}
	return predictions, rows.Err()
}

// UpdateSeasonPredictionPoints overwrites points_earned for one season prediction
func (r *PredictionRepository) UpdateSeasonPredictionPoints(ctx context.Context, seasonPredictionID, points int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE season_predictions SET points_earned = $1, updated_at = NOW() WHERE season_prediction_id = $2`,
		points, seasonPredictionID)
	if err != nil {
		return fmt.Errorf("failed to update season prediction points: %w", err)
	}
	return nil
}

// SumPointsForUser sums points_earned across all prediction kinds for one user
func (r *PredictionRepository) SumPointsForUser(ctx context.Context, userID string) (int, error) {
	query := `
		SELECT COALESCE((SELECT SUM(points_earned) FROM predictions WHERE user_id = $1), 0)
		     + COALESCE((SELECT SUM(points_earned) FROM bonus_predictions WHERE user_id = $1), 0)
		     + COALESCE((SELECT SUM(points_earned) FROM season_predictions WHERE user_id = $1), 0)
	`
	var total int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum points: %w", err)
	}
	return total, nil
}
