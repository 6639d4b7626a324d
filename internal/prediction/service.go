package prediction

import (
	"context"
	"fmt"
	"time"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
	"github.com/f1tipp/F1Tipp_Go/internal/logger"
	"github.com/f1tipp/F1Tipp_Go/internal/repository"
)

// Service defines the interface for prediction submission and retrieval
type Service interface {
	SubmitPrediction(ctx context.Context, p *domain.Prediction) error
	GetPrediction(ctx context.Context, userID string, raceID int, session domain.SessionType) (*domain.Prediction, error)
	ListUserPredictions(ctx context.Context, userID string) ([]domain.Prediction, error)

	SubmitBonusPrediction(ctx context.Context, p *domain.BonusPrediction) error
	GetBonusPrediction(ctx context.Context, userID string, raceID int) (*domain.BonusPrediction, error)

	SubmitSeasonPrediction(ctx context.Context, p *domain.SeasonPrediction) error
	GetSeasonPrediction(ctx context.Context, userID string) (*domain.SeasonPrediction, error)
}

type service struct {
	predictions repository.Prediction
	races       repository.Race
	profiles    repository.Profile
	season      int
	lockBuffer  time.Duration
}

// NewService creates a new prediction service. lockBuffer is how long before
// the race date submissions close.
func NewService(predictions repository.Prediction, races repository.Race, profiles repository.Profile, season int, lockBuffer time.Duration) Service {
	return &service{
		predictions: predictions,
		races:       races,
		profiles:    profiles,
		season:      season,
		lockBuffer:  lockBuffer,
	}
}

// SubmitPrediction validates and stores a podium prediction. Resubmitting
// before the lock overwrites the previous guess for the same session.
func (s *service) SubmitPrediction(ctx context.Context, p *domain.Prediction) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSubmitPredictionCalled, "user_id", p.UserID, "race_id", p.RaceID, "session", p.SessionType)

	if !p.SessionType.Valid() {
		return domain.ErrInvalidSession
	}

	if err := s.ensureProfile(ctx, p.UserID); err != nil {
		return err
	}

	race, err := s.getOpenRace(ctx, p.RaceID, p.SessionType)
	if err != nil {
		return err
	}
	if p.SessionType == domain.SessionSprint && !race.HasSprint {
		return fmt.Errorf("%w: race has no sprint", domain.ErrInvalidSession)
	}

	if err := validateSlots(p); err != nil {
		return err
	}

	if err := s.predictions.UpsertPrediction(ctx, p); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSavePrediction, err)
	}
	return nil
}

// validateSlots checks the session's required slots are filled and no driver
// occupies two podium slots. The fastest-lap guess is optional and may repeat
// a podium driver.
func validateSlots(p *domain.Prediction) error {
	if p.SessionType == domain.SessionQualifying {
		if !p.Pole.Set() {
			return fmt.Errorf("%w: pole", domain.ErrMissingSlot)
		}
		return nil
	}

	podium := p.PodiumGuess()
	seen := make(map[domain.DriverID]bool, len(podium))
	for i, d := range podium {
		if !d.Set() {
			return fmt.Errorf("%w: p%d", domain.ErrMissingSlot, i+1)
		}
		if seen[d] {
			return fmt.Errorf("%w: driver %d", domain.ErrDuplicateDriver, d)
		}
		seen[d] = true
	}
	return nil
}

// SubmitBonusPrediction validates and stores the bonus side guesses.
func (s *service) SubmitBonusPrediction(ctx context.Context, p *domain.BonusPrediction) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSubmitBonusPredictionCalled, "user_id", p.UserID, "race_id", p.RaceID)

	if err := s.ensureProfile(ctx, p.UserID); err != nil {
		return err
	}
	// Bonus guesses are judged against the race classification, so they
	// stay open until the race itself locks.
	if _, err := s.getOpenRace(ctx, p.RaceID, domain.SessionRace); err != nil {
		return err
	}

	switch p.DNFCount {
	case domain.DNFBucketNone, domain.DNFBucketLow, domain.DNFBucketMid, domain.DNFBucketHigh:
	default:
		return fmt.Errorf("%w: dnf bucket %q", domain.ErrInvalidSession, p.DNFCount)
	}

	if err := s.predictions.UpsertBonusPrediction(ctx, p); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSavePrediction, err)
	}
	return nil
}

// SubmitSeasonPrediction validates and stores championship guesses. The
// prediction becomes immutable once the season's first race date has passed.
func (s *service) SubmitSeasonPrediction(ctx context.Context, p *domain.SeasonPrediction) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSubmitSeasonPredictionCalled, "user_id", p.UserID, "season", s.season)

	if err := s.ensureProfile(ctx, p.UserID); err != nil {
		return err
	}

	locked, err := s.seasonLocked(ctx)
	if err != nil {
		return err
	}
	if locked {
		return domain.ErrSeasonLocked
	}

	if err := validateSeasonSlots(p); err != nil {
		return err
	}

	p.Season = s.season
	if err := s.predictions.UpsertSeasonPrediction(ctx, p); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSavePrediction, err)
	}
	return nil
}

func validateSeasonSlots(p *domain.SeasonPrediction) error {
	seenDrivers := make(map[domain.DriverID]bool, 3)
	for _, d := range p.DriverGuesses() {
		if !d.Set() {
			continue
		}
		if seenDrivers[d] {
			return fmt.Errorf("%w: driver %d", domain.ErrDuplicateDriver, d)
		}
		seenDrivers[d] = true
	}

	seenTeams := make(map[domain.ConstructorID]bool, 3)
	for _, c := range p.ConstructorGuesses() {
		if c == "" {
			continue
		}
		if seenTeams[c] {
			return fmt.Errorf("%w: constructor %s", domain.ErrDuplicateDriver, c)
		}
		seenTeams[c] = true
	}
	return nil
}

// seasonLocked reports whether the season's first race date has passed.
func (s *service) seasonLocked(ctx context.Context) (bool, error) {
	races, err := s.races.ListRaces(ctx, s.season)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextFailedToListRaces, err)
	}
	if len(races) == 0 {
		return false, nil
	}

	first := races[0].Date
	for _, race := range races[1:] {
		if race.Date.Before(first) {
			first = race.Date
		}
	}
	return time.Now().After(first), nil
}

// getOpenRace loads the race and checks submissions for the given session
// are still open. Each session locks at its own start, so qualifying guesses
// close on Saturday even though the race itself is still a day away.
func (s *service) getOpenRace(ctx context.Context, raceID int, session domain.SessionType) (*domain.Race, error) {
	race, err := s.races.GetRace(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRace, err)
	}
	if race == nil {
		return nil, domain.ErrRaceNotFound
	}
	if time.Now().After(sessionStart(race, session).Add(-s.lockBuffer)) {
		return nil, domain.ErrPredictionsLocked
	}
	return race, nil
}

// sessionStart approximates when a session begins. The calendar stores only
// the race start; qualifying and the sprint run the day before.
func sessionStart(race *domain.Race, session domain.SessionType) time.Time {
	switch session {
	case domain.SessionQualifying, domain.SessionSprint:
		return race.Date.Add(-24 * time.Hour)
	default:
		return race.Date
	}
}

func (s *service) ensureProfile(ctx context.Context, userID string) error {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetProfile, err)
	}
	if profile == nil {
		return domain.ErrUserNotFound
	}
	return nil
}

// GetPrediction returns one stored podium prediction.
func (s *service) GetPrediction(ctx context.Context, userID string, raceID int, session domain.SessionType) (*domain.Prediction, error) {
	if !session.Valid() {
		return nil, domain.ErrInvalidSession
	}
	p, err := s.predictions.GetPrediction(ctx, userID, raceID, session)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetPrediction, err)
	}
	if p == nil {
		return nil, domain.ErrPredictionNotFound
	}
	return p, nil
}

// ListUserPredictions returns all of a user's podium predictions.
func (s *service) ListUserPredictions(ctx context.Context, userID string) ([]domain.Prediction, error) {
	predictions, err := s.predictions.ListPredictionsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListPredictions, err)
	}
	return predictions, nil
}

// GetBonusPrediction returns one stored bonus prediction.
func (s *service) GetBonusPrediction(ctx context.Context, userID string, raceID int) (*domain.BonusPrediction, error) {
	p, err := s.predictions.GetBonusPrediction(ctx, userID, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetPrediction, err)
	}
	if p == nil {
		return nil, domain.ErrPredictionNotFound
	}
	return p, nil
}

// GetSeasonPrediction returns the user's championship prediction.
func (s *service) GetSeasonPrediction(ctx context.Context, userID string) (*domain.SeasonPrediction, error) {
	p, err := s.predictions.GetSeasonPrediction(ctx, userID, s.season)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetPrediction, err)
	}
	if p == nil {
		return nil, domain.ErrPredictionNotFound
	}
	return p, nil
}
