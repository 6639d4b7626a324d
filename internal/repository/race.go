package repository

import (
	"context"
	"time"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
)

// Race defines the data access for the race calendar.
type Race interface {
	GetRace(ctx context.Context, raceID int) (*domain.Race, error)
	GetRaceByRound(ctx context.Context, season, round int) (*domain.Race, error)
	ListRaces(ctx context.Context, season int) ([]domain.Race, error)
	ListRacesBefore(ctx context.Context, season int, cutoff time.Time) ([]domain.Race, error)
	ListRacesNotFinished(ctx context.Context, season int) ([]domain.Race, error)
	UpdateRaceStatus(ctx context.Context, raceID int, status domain.RaceStatus) error
	UpsertRace(ctx context.Context, race *domain.Race) error
}
