package calendar

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
	"github.com/f1tipp/F1Tipp_Go/internal/ergast"
	"github.com/f1tipp/F1Tipp_Go/internal/logger"
	"github.com/f1tipp/F1Tipp_Go/internal/repository"
)

// ScheduleSource is the slice of the results provider the calendar needs.
type ScheduleSource interface {
	Schedule(ctx context.Context, season int) ([]ergast.RacePayload, error)
}

// SyncReport summarizes one calendar sync.
type SyncReport struct {
	Season  int `json:"season"`
	Synced  int `json:"synced"`
	Skipped int `json:"skipped"`
}

// Service defines the interface for calendar operations
type Service interface {
	// SyncSeason pulls the season schedule from the provider and upserts every
	// race. Malformed entries are skipped, not fatal.
	SyncSeason(ctx context.Context) (*SyncReport, error)
	ListRaces(ctx context.Context) ([]domain.Race, error)
	GetRace(ctx context.Context, raceID int) (*domain.Race, error)
	// NextRace returns the next race whose date has not passed, or nil when
	// the season is over.
	NextRace(ctx context.Context) (*domain.Race, error)
}

type service struct {
	source ScheduleSource
	races  repository.Race
	season int
}

// NewService creates a new calendar service.
func NewService(source ScheduleSource, races repository.Race, season int) Service {
	return &service{
		source: source,
		races:  races,
		season: season,
	}
}

func (s *service) SyncSeason(ctx context.Context) (*SyncReport, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSyncSeasonCalled, "season", s.season)

	payloads, err := s.source.Schedule(ctx, s.season)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFetchSchedule, err)
	}

	report := &SyncReport{Season: s.season}
	for _, payload := range payloads {
		race, ok := raceFromPayload(s.season, payload)
		if !ok {
			log.Warn(LogMsgRaceSkipped, "round", payload.Round, "name", payload.RaceName)
			report.Skipped++
			continue
		}
		if err := s.races.UpsertRace(ctx, race); err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", ErrContextFailedToUpsertRace, race.Round, err)
		}
		report.Synced++
	}

	log.Info(LogMsgSeasonSynced, "season", s.season, "synced", report.Synced, "skipped", report.Skipped)
	return report, nil
}

// raceFromPayload converts one provider calendar entry. Rounds and dates are
// strings on the wire; entries that fail to parse are dropped.
func raceFromPayload(season int, payload ergast.RacePayload) (*domain.Race, bool) {
	round, err := strconv.Atoi(payload.Round)
	if err != nil || round <= 0 {
		return nil, false
	}

	date, err := parseRaceDate(payload.Date, payload.Time)
	if err != nil {
		return nil, false
	}

	return &domain.Race{
		Season:    season,
		Round:     round,
		Name:      payload.RaceName,
		Date:      date,
		HasSprint: payload.HasSprint(),
		Status:    domain.RaceStatusUpcoming,
	}, true
}

// parseRaceDate combines the provider's separate date and time fields. A
// missing time means only the day is known; midnight UTC is close enough for
// lock computation then.
func parseRaceDate(date, clock string) (time.Time, error) {
	if clock == "" {
		return time.Parse("2006-01-02", date)
	}
	return time.Parse(time.RFC3339, fmt.Sprintf("%sT%s", date, clock))
}

func (s *service) ListRaces(ctx context.Context) ([]domain.Race, error) {
	races, err := s.races.ListRaces(ctx, s.season)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListRaces, err)
	}
	return races, nil
}

func (s *service) GetRace(ctx context.Context, raceID int) (*domain.Race, error) {
	race, err := s.races.GetRace(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListRaces, err)
	}
	if race == nil {
		return nil, domain.ErrRaceNotFound
	}
	return race, nil
}

func (s *service) NextRace(ctx context.Context) (*domain.Race, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgNextRaceCalled, "season", s.season)

	races, err := s.races.ListRaces(ctx, s.season)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListRaces, err)
	}

	now := time.Now()
	var next *domain.Race
	for i := range races {
		race := &races[i]
		if race.Date.Before(now) {
			continue
		}
		if next == nil || race.Date.Before(next.Date) {
			next = race
		}
	}
	return next, nil
}
