package livetiming

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
	"github.com/f1tipp/F1Tipp_Go/internal/logger"
	"github.com/f1tipp/F1Tipp_Go/internal/repository"
	"github.com/f1tipp/F1Tipp_Go/internal/scoring"
)

const (
	LogMsgSnapshotCalled   = "LiveSnapshot called"
	LogMsgProjectionCalled = "ProjectPoints called"
	LogMsgSnapshotCacheHit = "Serving live snapshot from cache"
)

const (
	ErrContextFailedToFetchPositions  = "failed to fetch live positions"
	ErrContextFailedToListPredictions = "failed to list predictions"
)

// PositionSource is the slice of the live-timing client the service needs.
type PositionSource interface {
	Positions(ctx context.Context, sessionKey string) ([]PositionPayload, error)
}

// Snapshot is the current running order of a live session.
type Snapshot struct {
	SessionKey string            `json:"session_key"`
	Order      []domain.DriverID `json:"order"`
	CapturedAt time.Time         `json:"captured_at"`
}

// Top3 returns the provisional podium. Unfilled slots stay DriverNone.
func (s *Snapshot) Top3() [3]domain.DriverID {
	var top [3]domain.DriverID
	for i := 0; i < len(s.Order) && i < 3; i++ {
		top[i] = s.Order[i]
	}
	return top
}

// ProjectedScore is what one race prediction would currently earn if the
// session ended with the live running order.
type ProjectedScore struct {
	UserID string `json:"user_id"`
	Points int    `json:"points"`
}

// Projection pairs a snapshot with the provisional scores derived from it.
type Projection struct {
	Snapshot *Snapshot        `json:"snapshot"`
	Scores   []ProjectedScore `json:"scores"`
}

// Service defines the interface for live timing operations
type Service interface {
	// LiveSnapshot returns the current running order, cached for the
	// configured TTL so clients can poll freely.
	LiveSnapshot(ctx context.Context, sessionKey string) (*Snapshot, error)
	// ProjectPoints scores a race's predictions against the live order.
	// Projections are advisory: nothing is persisted and the fastest lap is
	// treated as unknown until settlement.
	ProjectPoints(ctx context.Context, raceID int, sessionKey string) (*Projection, error)
}

type service struct {
	source      PositionSource
	predictions repository.Prediction
	cache       *snapshotCache
}

// NewService creates a new live timing service.
func NewService(source PositionSource, predictions repository.Prediction, ttl time.Duration) Service {
	return &service{
		source:      source,
		predictions: predictions,
		cache:       newSnapshotCache(ttl),
	}
}

// LiveSnapshot fetches and caches the current running order.
func (s *service) LiveSnapshot(ctx context.Context, sessionKey string) (*Snapshot, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSnapshotCalled, "session_key", sessionKey)

	if snapshot, ok := s.cache.Get(sessionKey); ok {
		log.Debug(LogMsgSnapshotCacheHit, "session_key", sessionKey)
		return snapshot, nil
	}

	positions, err := s.source.Positions(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFetchPositions, err)
	}

	snapshot := buildSnapshot(sessionKey, positions)
	s.cache.Set(sessionKey, snapshot)
	return snapshot, nil
}

// buildSnapshot collapses the append-only position feed into the current
// running order: the latest row per driver wins, ordered by position.
func buildSnapshot(sessionKey string, positions []PositionPayload) *Snapshot {
	type latest struct {
		position int
		date     time.Time
	}
	byDriver := make(map[domain.DriverID]latest)
	for _, p := range positions {
		if p.DriverNumber <= 0 || p.Position <= 0 {
			continue
		}
		driver := domain.DriverID(p.DriverNumber)
		if current, ok := byDriver[driver]; !ok || p.Date.After(current.date) {
			byDriver[driver] = latest{position: p.Position, date: p.Date}
		}
	}

	order := make([]domain.DriverID, 0, len(byDriver))
	for driver := range byDriver {
		order = append(order, driver)
	}
	sort.Slice(order, func(i, j int) bool {
		return byDriver[order[i]].position < byDriver[order[j]].position
	})

	return &Snapshot{
		SessionKey: sessionKey,
		Order:      order,
		CapturedAt: time.Now(),
	}
}

// ProjectPoints computes the provisional race scores for a round.
func (s *service) ProjectPoints(ctx context.Context, raceID int, sessionKey string) (*Projection, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgProjectionCalled, "race_id", raceID, "session_key", sessionKey)

	snapshot, err := s.LiveSnapshot(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	top3 := snapshot.Top3()
	provisional := domain.CanonicalResult{P1: top3[0], P2: top3[1], P3: top3[2]}

	predictions, err := s.predictions.ListPredictionsForSession(ctx, raceID, domain.SessionRace)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListPredictions, err)
	}

	projection := &Projection{Snapshot: snapshot, Scores: make([]ProjectedScore, 0, len(predictions))}
	for _, p := range predictions {
		projection.Scores = append(projection.Scores, ProjectedScore{
			UserID: p.UserID,
			Points: scoring.ScorePrediction(p, provisional),
		})
	}
	return projection, nil
}
