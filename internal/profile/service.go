package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
	"github.com/f1tipp/F1Tipp_Go/internal/logger"
	"github.com/f1tipp/F1Tipp_Go/internal/repository"
)

// Service defines the interface for profile operations
type Service interface {
	// Register creates a profile for a new user. Registering an existing user
	// returns the stored profile unchanged.
	Register(ctx context.Context, userID, username string) (*domain.Profile, error)
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	GetProfileByUsername(ctx context.Context, username string) (*domain.Profile, error)
	// Standings returns the leaderboard ordered by total points, cached for a
	// short TTL.
	Standings(ctx context.Context) ([]domain.Profile, error)
	// InvalidateStandings drops the cached leaderboard.
	InvalidateStandings()
}

type service struct {
	profiles repository.Profile
	cache    *standingsCache
}

// NewService creates a new profile service.
func NewService(profiles repository.Profile, standingsTTL time.Duration) Service {
	return &service{
		profiles: profiles,
		cache:    newStandingsCache(standingsTTL),
	}
}

func (s *service) Register(ctx context.Context, userID, username string) (*domain.Profile, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterCalled, "user_id", userID, "username", username)

	userID = strings.TrimSpace(userID)
	username = strings.TrimSpace(username)
	if userID == "" || username == "" {
		return nil, fmt.Errorf("%w: user id and username are required", domain.ErrUserNotFound)
	}

	existing, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetProfile, err)
	}
	if existing != nil {
		return existing, nil
	}

	profile := &domain.Profile{
		UserID:    userID,
		Username:  username,
		Coins:     StartingCoins,
		CreatedAt: time.Now(),
	}
	if err := s.profiles.CreateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateProfile, err)
	}

	log.Info(LogMsgProfileCreated, "user_id", userID)
	return profile, nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetProfile, err)
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	return profile, nil
}

func (s *service) GetProfileByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	profile, err := s.profiles.GetProfileByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetProfile, err)
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}
	return profile, nil
}

func (s *service) Standings(ctx context.Context) ([]domain.Profile, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgStandingsCalled)

	if standings, ok := s.cache.Get(); ok {
		log.Debug(LogMsgStandingsCacheHit)
		return standings, nil
	}

	standings, err := s.profiles.ListStandings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListStandings, err)
	}

	s.cache.Set(standings)
	log.Debug(LogMsgStandingsRefreshed, "entries", len(standings))
	return standings, nil
}

func (s *service) InvalidateStandings() {
	s.cache.Invalidate()
}
