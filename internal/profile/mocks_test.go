package profile

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
)

// MockProfileRepository is a mock implementation of repository.Profile
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
	return m.Called(ctx, profile).Error(0)
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
	return m.Called(ctx, userID, totalPoints, coins).Error(0)
}

func (m *MockProfileRepository) CreditCoins(ctx context.Context, userID string, delta int64) error {
	return m.Called(ctx, userID, delta).Error(0)
}

func (m *MockProfileRepository) DebitCoins(ctx context.Context, userID string, amount int64) error {
	return m.Called(ctx, userID, amount).Error(0)
}
