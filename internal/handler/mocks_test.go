package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/f1tipp/F1Tipp_Go/internal/calendar"
	"github.com/f1tipp/F1Tipp_Go/internal/domain"
	"github.com/f1tipp/F1Tipp_Go/internal/livetiming"
	"github.com/f1tipp/F1Tipp_Go/internal/settlement"
)

// MockPredictionService is a mock implementation of prediction.Service
type MockPredictionService struct {
	mock.Mock
}

func (m *MockPredictionService) SubmitPrediction(ctx context.Context, p *domain.Prediction) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPredictionService) GetPrediction(ctx context.Context, userID string, raceID int, session domain.SessionType) (*domain.Prediction, error) {
	args := m.Called(ctx, userID, raceID, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *MockPredictionService) ListUserPredictions(ctx context.Context, userID string) ([]domain.Prediction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prediction), args.Error(1)
}

func (m *MockPredictionService) SubmitBonusPrediction(ctx context.Context, p *domain.BonusPrediction) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPredictionService) GetBonusPrediction(ctx context.Context, userID string, raceID int) (*domain.BonusPrediction, error) {
	args := m.Called(ctx, userID, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BonusPrediction), args.Error(1)
}

func (m *MockPredictionService) SubmitSeasonPrediction(ctx context.Context, p *domain.SeasonPrediction) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPredictionService) GetSeasonPrediction(ctx context.Context, userID string) (*domain.SeasonPrediction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeasonPrediction), args.Error(1)
}

// MockBettingService is a mock implementation of betting.Service
type MockBettingService struct {
	mock.Mock
}

func (m *MockBettingService) PlaceBet(ctx context.Context, userID string, raceID int, betType domain.BetType, selection string, stake int64) (*domain.Bet, error) {
	args := m.Called(ctx, userID, raceID, betType, selection, stake)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bet), args.Error(1)
}

func (m *MockBettingService) GetBet(ctx context.Context, id uuid.UUID) (*domain.Bet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bet), args.Error(1)
}

func (m *MockBettingService) ListUserBets(ctx context.Context, userID string) ([]domain.Bet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bet), args.Error(1)
}

// MockSettlementService is a mock implementation of settlement.Service
type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) SettleRound(ctx context.Context, round int) (*settlement.RoundReport, error) {
	args := m.Called(ctx, round)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settlement.RoundReport), args.Error(1)
}

func (m *MockSettlementService) SettleRounds(ctx context.Context, rounds []int) []settlement.RoundReport {
	args := m.Called(ctx, rounds)
	return args.Get(0).([]settlement.RoundReport)
}

func (m *MockSettlementService) SettleAllPassed(ctx context.Context) ([]settlement.RoundReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]settlement.RoundReport), args.Error(1)
}

func (m *MockSettlementService) SettleAuto(ctx context.Context) ([]settlement.RoundReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]settlement.RoundReport), args.Error(1)
}

func (m *MockSettlementService) SettleBets(ctx context.Context, round int) (*settlement.RoundReport, error) {
	args := m.Called(ctx, round)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settlement.RoundReport), args.Error(1)
}

func (m *MockSettlementService) SettleSeason(ctx context.Context) (*settlement.SeasonReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settlement.SeasonReport), args.Error(1)
}

func (m *MockSettlementService) RecomputeAggregates(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockCalendarService is a mock implementation of calendar.Service
type MockCalendarService struct {
	mock.Mock
}

func (m *MockCalendarService) SyncSeason(ctx context.Context) (*calendar.SyncReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calendar.SyncReport), args.Error(1)
}

func (m *MockCalendarService) ListRaces(ctx context.Context) ([]domain.Race, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Race), args.Error(1)
}

func (m *MockCalendarService) GetRace(ctx context.Context, raceID int) (*domain.Race, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Race), args.Error(1)
}

func (m *MockCalendarService) NextRace(ctx context.Context) (*domain.Race, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Race), args.Error(1)
}

// MockProfileService is a mock implementation of profile.Service
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Register(ctx context.Context, userID, username string) (*domain.Profile, error) {
	args := m.Called(ctx, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) GetProfileByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) Standings(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileService) InvalidateStandings() {
	m.Called()
}

// MockLiveService is a mock implementation of livetiming.Service
type MockLiveService struct {
	mock.Mock
}

func (m *MockLiveService) LiveSnapshot(ctx context.Context, sessionKey string) (*livetiming.Snapshot, error) {
	args := m.Called(ctx, sessionKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*livetiming.Snapshot), args.Error(1)
}

func (m *MockLiveService) ProjectPoints(ctx context.Context, raceID int, sessionKey string) (*livetiming.Projection, error) {
	args := m.Called(ctx, raceID, sessionKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*livetiming.Projection), args.Error(1)
}
