package betting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
	"github.com/f1tipp/F1Tipp_Go/internal/logger"
	"github.com/f1tipp/F1Tipp_Go/internal/repository"
)

// Service defines the interface for novelty bet placement and retrieval.
// Settlement of placed bets lives in the settlement service.
type Service interface {
	PlaceBet(ctx context.Context, userID string, raceID int, betType domain.BetType, selection string, stake int64) (*domain.Bet, error)
	GetBet(ctx context.Context, id uuid.UUID) (*domain.Bet, error)
	ListUserBets(ctx context.Context, userID string) ([]domain.Bet, error)
}

type service struct {
	bets     repository.Bet
	profiles repository.Profile
	races    repository.Race
}

// NewService creates a new betting service
func NewService(bets repository.Bet, profiles repository.Profile, races repository.Race) Service {
	return &service{
		bets:     bets,
		profiles: profiles,
		races:    races,
	}
}

// PlaceBet validates the wager, debits the stake atomically and records the
// bet as pending. The debit happens before the insert; if the insert fails
// the stake is refunded.
func (s *service) PlaceBet(ctx context.Context, userID string, raceID int, betType domain.BetType, selection string, stake int64) (*domain.Bet, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPlaceBetCalled, "user_id", userID, "race_id", raceID, "type", betType, "stake", stake)

	odds, ok := domain.DefaultOdds[betType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownBetType, betType)
	}
	if stake <= 0 || stake > MaxStake {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidStake, stake)
	}
	if selection == "" {
		return nil, fmt.Errorf("%w: empty selection", domain.ErrInvalidStake)
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetProfile, err)
	}
	if profile == nil {
		return nil, domain.ErrUserNotFound
	}

	race, err := s.races.GetRace(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRace, err)
	}
	if race == nil {
		return nil, domain.ErrRaceNotFound
	}
	if race.Status == domain.RaceStatusFinished || time.Now().After(race.Date) {
		return nil, domain.ErrPredictionsLocked
	}

	// The conditional update both checks and reserves the balance; a
	// concurrent bet cannot spend the same coins twice.
	if err := s.profiles.DebitCoins(ctx, userID, stake); err != nil {
		if errors.Is(err, domain.ErrInsufficientCoins) {
			return nil, domain.ErrInsufficientCoins
		}
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToDebitStake, err)
	}

	bet := &domain.Bet{
		ID:        uuid.New(),
		UserID:    userID,
		RaceID:    raceID,
		Type:      betType,
		Selection: selection,
		Stake:     stake,
		Odds:      odds,
		Status:    domain.BetStatusPending,
		CreatedAt: time.Now(),
	}
	if err := s.bets.CreateBet(ctx, bet); err != nil {
		if refundErr := s.profiles.CreditCoins(ctx, userID, stake); refundErr != nil {
			log.Error(ErrContextFailedToRefund, "user_id", userID, "stake", stake, "error", refundErr)
		}
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateBet, err)
	}

	log.Info(LogMsgBetPlaced, "bet_id", bet.ID, "user_id", userID, "odds", odds)
	return bet, nil
}

// GetBet returns one bet by id.
func (s *service) GetBet(ctx context.Context, id uuid.UUID) (*domain.Bet, error) {
	bet, err := s.bets.GetBet(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetBet, err)
	}
	if bet == nil {
		return nil, domain.ErrBetNotFound
	}
	return bet, nil
}

// ListUserBets returns all of a user's bets, newest first.
func (s *service) ListUserBets(ctx context.Context, userID string) ([]domain.Bet, error) {
	bets, err := s.bets.ListBetsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListBets, err)
	}
	return bets, nil
}
