package betting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
)

// MockBetRepository
type MockBetRepository struct {
	mock.Mock
}

func (m *MockBetRepository) CreateBet(ctx context.Context, bet *domain.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockBetRepository) GetBet(ctx context.Context, id uuid.UUID) (*domain.Bet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bet), args.Error(1)
}

func (m *MockBetRepository) ListBetsForUser(ctx context.Context, userID string) ([]domain.Bet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bet), args.Error(1)
}

func (m *MockBetRepository) ListPendingBetsForRace(ctx context.Context, raceID int) ([]domain.Bet, error) {
	args := m.Called(ctx, raceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bet), args.Error(1)
}

func (m *MockBetRepository) SettleBetIfPending(ctx context.Context, id uuid.UUID, status domain.BetStatus, winnings int64) (int64, error) {
	args := m.Called(ctx, id, status, winnings)
	return args.Get(0).(int64), args.Error(1)
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
