package prediction

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
)

// MockPredictionRepository
type MockPredictionRepository struct {
	mock.Mock
}

func (m *MockPredictionRepository) UpsertPrediction(ctx context.Context, p *domain.Prediction) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPredictionRepository) GetPrediction(ctx context.Context, userID string, raceID int, session domain.SessionType) (*domain.Prediction, error) {
	args := m.Called(ctx, userID, raceID, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) ListPredictionsForSession(ctx context.Context, raceID int, session domain.SessionType) ([]domain.Prediction, error) {
	args := m.Called(ctx, raceID, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) ListPredictionsForUser(ctx context.Context, userID string) ([]domain.Prediction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) UpdatePredictionPoints(ctx context.Context, predictionID, points int) error {
	args := m.Called(ctx, predictionID, points)
	return args.Error(0)
}

func (m *MockPredictionRepository) UpsertBonusPrediction(ctx context.Context, p *domain.BonusPrediction) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPredictionRepository) GetBonusPrediction(ctx context.Context, userID string, raceID int) (*domain.BonusPrediction, error) {
	args := m.Called(ctx, userID, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BonusPrediction), args.Error(1)
}

func (m *MockPredictionRepository) ListBonusPredictionsForRace(ctx context.Context, raceID int) ([]domain.BonusPrediction, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BonusPrediction), args.Error(1)
}

func (m *MockPredictionRepository) UpdateBonusPredictionPoints(ctx context.Context, bonusID, points int) error {
	args := m.Called(ctx, bonusID, points)
	return args.Error(0)
}

func (m *MockPredictionRepository) UpsertSeasonPrediction(ctx context.Context, p *domain.SeasonPrediction) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPredictionRepository) GetSeasonPrediction(ctx context.Context, userID string, season int) (*domain.SeasonPrediction, error) {
	args := m.Called(ctx, userID, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeasonPrediction), args.Error(1)
}

func (m *MockPredictionRepository) ListSeasonPredictionsForSeason(ctx context.Context, season int) ([]domain.SeasonPrediction, error) {
	args := m.Called(ctx, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeasonPrediction), args.Error(1)
}

func (m *MockPredictionRepository) UpdateSeasonPredictionPoints(ctx context.Context, seasonPredictionID, points int) error {
	args := m.Called(ctx, seasonPredictionID, points)
	return args.Error(0)
}

func (m *MockPredictionRepository) SumPointsForUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// MockRaceRepository
type MockRaceRepository struct {
	mock.Mock
}

func (m *MockRaceRepository) GetRace(ctx context.Context, raceID int) (*domain.Race, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Race), args.Error(1)
}

func (m *MockRaceRepository) GetRaceByRound(ctx context.Context, season, round int) (*domain.Race, error) {
	args := m.Called(ctx, season, round)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Race), args.Error(1)
}

func (m *MockRaceRepository) ListRaces(ctx context.Context, season int) ([]domain.Race, error) {
	args := m.Called(ctx, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Race), args.Error(1)
}

func (m *MockRaceRepository) ListRacesBefore(ctx context.Context, season int, cutoff time.Time) ([]domain.Race, error) {
	args := m.Called(ctx, season, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Race), args.Error(1)
}

func (m *MockRaceRepository) ListRacesNotFinished(ctx context.Context, season int) ([]domain.Race, error) {
	args := m.Called(ctx, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Race), args.Error(1)
}

func (m *MockRaceRepository) UpdateRaceStatus(ctx context.Context, raceID int, status domain.RaceStatus) error {
	args := m.Called(ctx, raceID, status)
	return args.Error(0)
}

func (m *MockRaceRepository) UpsertRace(ctx context.Context, race *domain.Race) error {
	args := m.Called(ctx, race)
	return args.Error(0)
}

// MockProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetProfileByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListStandings(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) ApplyAggregate(ctx context.Context, userID string, totalPoints int, coins int64) error {
	args := m.Called(ctx, userID, totalPoints, coins)
	return args.Error(0)
}

func (m *MockProfileRepository) CreditCoins(ctx context.Context, userID string, delta int64) error {
	args := m.Called(ctx, userID, delta)
	return args.Error(0)
}

func (m *MockProfileRepository) DebitCoins(ctx context.Context, userID string, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}
