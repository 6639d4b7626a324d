package repository

import (
	"context"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
)

// Prediction defines the data access required by the prediction and
// settlement services.
type Prediction interface {
	UpsertPrediction(ctx context.Context, p *domain.Prediction) error
	GetPrediction(ctx context.Context, userID string, raceID int, session domain.SessionType) (*domain.Prediction, error)
	ListPredictionsForSession(ctx context.Context, raceID int, session domain.SessionType) ([]domain.Prediction, error)
	ListPredictionsForUser(ctx context.Context, userID string) ([]domain.Prediction, error)
	UpdatePredictionPoints(ctx context.Context, predictionID, points int) error

	UpsertBonusPrediction(ctx context.Context, p *domain.BonusPrediction) error
	GetBonusPrediction(ctx context.Context, userID string, raceID int) (*domain.BonusPrediction, error)
	ListBonusPredictionsForRace(ctx context.Context, raceID int) ([]domain.BonusPrediction, error)
	UpdateBonusPredictionPoints(ctx context.Context, bonusID, points int) error

	UpsertSeasonPrediction(ctx context.Context, p *domain.SeasonPrediction) error
	GetSeasonPrediction(ctx context.Context, userID string, season int) (*domain.SeasonPrediction, error)
	ListSeasonPredictionsForSeason(ctx context.Context, season int) ([]domain.SeasonPrediction, error)
	UpdateSeasonPredictionPoints(ctx context.Context, seasonPredictionID, points int) error

	// SumPointsForUser sums points_earned across all prediction kinds for one
	// user. This is the source of truth the profile total is a cache of.
	SumPointsForUser(ctx context.Context, userID string) (int, error)
}
