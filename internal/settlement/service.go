package settlement

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/f1tipp/F1Tipp_Go/internal/concurrency"
	"github.com/f1tipp/F1Tipp_Go/internal/domain"
	"github.com/f1tipp/F1Tipp_Go/internal/ergast"
	"github.com/f1tipp/F1Tipp_Go/internal/logger"
	"github.com/f1tipp/F1Tipp_Go/internal/metrics"
	"github.com/f1tipp/F1Tipp_Go/internal/repository"
	"github.com/f1tipp/F1Tipp_Go/internal/results"
	"github.com/f1tipp/F1Tipp_Go/internal/scoring"
)

// ResultSource is the slice of the race-data client settlement needs.
type ResultSource interface {
	RaceResults(ctx context.Context, season, round int) (*ergast.RacePayload, error)
	QualifyingResults(ctx context.Context, season, round int) (*ergast.RacePayload, error)
	SprintResults(ctx context.Context, season, round int) (*ergast.RacePayload, error)
	DriverStandings(ctx context.Context, season int) ([]ergast.DriverStanding, error)
	ConstructorStandings(ctx context.Context, season int) ([]ergast.ConstructorStanding, error)
}

// Service defines the interface for settlement operations
type Service interface {
	// SettleRound settles every session of one round: prediction points,
	// bonus points, novelty bets, aggregate totals and the race status.
	// Running it again against the same result is a no-op in effect.
	SettleRound(ctx context.Context, round int) (*RoundReport, error)
	// SettleRounds settles a list of rounds, isolating failures per round.
	SettleRounds(ctx context.Context, rounds []int) []RoundReport
	// SettleAllPassed settles every race whose date has passed.
	SettleAllPassed(ctx context.Context) ([]RoundReport, error)
	// SettleAuto settles races that have passed but are not yet finished;
	// this is the variant the scheduler drives.
	SettleAuto(ctx context.Context) ([]RoundReport, error)
	// SettleBets settles only the novelty bets of one round, leaving
	// prediction points untouched.
	SettleBets(ctx context.Context, round int) (*RoundReport, error)
	// SettleSeason settles season predictions against current standings.
	SettleSeason(ctx context.Context) (*SeasonReport, error)
	// RecomputeAggregates refreshes profile totals and coin balances.
	RecomputeAggregates(ctx context.Context) error
}

// RoundReport summarizes one round's settlement pass.
type RoundReport struct {
	Round              int    `json:"round"`
	RaceID             int    `json:"race_id"`
	SessionsSettled    int    `json:"sessions_settled"`
	PredictionsScored  int    `json:"predictions_scored"`
	BonusScored        int    `json:"bonus_scored"`
	BetsSettled        int    `json:"bets_settled"`
	RaceFinished       bool   `json:"race_finished"`
	Error              string `json:"error,omitempty"`
}

// SeasonReport summarizes a season settlement pass.
type SeasonReport struct {
	Season            int  `json:"season"`
	PredictionsScored int  `json:"predictions_scored"`
	StandingsKnown    bool `json:"standings_known"`
}

type service struct {
	source      ResultSource
	races       repository.Race
	predictions repository.Prediction
	profiles    repository.Profile
	bets        repository.Bet
	season      int

	// locks serializes settlement per round so the scheduler and a manual
	// trigger cannot double-settle the same race.
	locks *concurrency.LockManager
}

// NewService creates a new settlement service. It fails when the bet
// dispatch table does not cover every known bet type.
func NewService(source ResultSource, races repository.Race, predictions repository.Prediction, profiles repository.Profile, bets repository.Bet, season int) (Service, error) {
	if err := verifyDispatchTable(); err != nil {
		return nil, err
	}
	return &service{
		source:      source,
		races:       races,
		predictions: predictions,
		profiles:    profiles,
		bets:        bets,
		season:      season,
		locks:       concurrency.NewLockManager(),
	}, nil
}

// SettleRound settles one round end to end.
func (s *service) SettleRound(ctx context.Context, round int) (*RoundReport, error) {
	lock := s.locks.GetLock(strconv.Itoa(round))
	lock.Lock()
	defer lock.Unlock()

	log := logger.FromContext(ctx)
	log.Info(LogMsgSettleRoundCalled, "season", s.season, "round", round)

	race, err := s.races.GetRaceByRound(ctx, s.season, round)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRace, err)
	}
	if race == nil {
		return nil, domain.ErrRaceNotFound
	}

	report := &RoundReport{Round: round, RaceID: race.ID}

	racePayload, err := s.source.RaceResults(ctx, s.season, round)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFetchResult, err)
	}
	qualiPayload, err := s.source.QualifyingResults(ctx, s.season, round)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFetchResult, err)
	}
	var sprintPayload *ergast.RacePayload
	if race.HasSprint {
		sprintPayload, err = s.source.SprintResults(ctx, s.season, round)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToFetchResult, err)
		}
	}

	payloads := map[domain.SessionType]*ergast.RacePayload{
		domain.SessionQualifying: qualiPayload,
		domain.SessionSprint:     sprintPayload,
		domain.SessionRace:       racePayload,
	}

	for _, session := range race.Sessions() {
		scored, err := s.settleSession(ctx, race.ID, session, payloads[session])
		if err != nil {
			return report, err
		}
		if scored >= 0 {
			report.SessionsSettled++
			report.PredictionsScored += scored
		}
	}

	if racePayload != nil && len(racePayload.Results) > 0 {
		scored, err := s.settleBonus(ctx, race.ID, racePayload)
		if err != nil {
			return report, err
		}
		report.BonusScored = scored

		stats := DeriveRaceStats(racePayload, qualiPayload)
		s.applyTeamTier(ctx, &stats)
		settled, err := s.settleBets(ctx, race.ID, stats)
		if err != nil {
			return report, err
		}
		report.BetsSettled = settled
	}

	if err := s.RecomputeAggregates(ctx); err != nil {
		return report, err
	}

	if racePayload != nil && len(racePayload.Results) > 0 {
		if err := s.races.UpdateRaceStatus(ctx, race.ID, domain.RaceStatusFinished); err != nil {
			return report, fmt.Errorf("%s: %w", ErrContextFailedToMarkFinished, err)
		}
		report.RaceFinished = true
	} else if qualiPayload != nil && len(qualiPayload.QualifyingResults) > 0 && race.Status == domain.RaceStatusUpcoming {
		// Qualifying is classified but the race is not: the weekend is underway.
		// Status is advisory, so a failure here only logs.
		if err := s.races.UpdateRaceStatus(ctx, race.ID, domain.RaceStatusRacing); err != nil {
			log.Warn(LogMsgStatusUpdateFailed, "race_id", race.ID, "error", err)
		}
	}

	log.Info(LogMsgRoundSettled, "round", round,
		"sessions", report.SessionsSettled,
		"predictions", report.PredictionsScored,
		"bets", report.BetsSettled)
	return report, nil
}

// settleSession scores every prediction of one session against its canonical
// result. It returns -1 when no official result exists yet, so the caller
// does not count the session as settled. Scores are overwritten wholesale,
// which is what makes reruns safe after retroactive corrections.
func (s *service) settleSession(ctx context.Context, raceID int, session domain.SessionType, payload *ergast.RacePayload) (int, error) {
	log := logger.FromContext(ctx)

	result := results.Normalize(payload, session)
	if result.Empty() {
		log.Info(LogMsgNoResultYet, "race_id", raceID, "session", session)
		return -1, nil
	}

	predictions, err := s.predictions.ListPredictionsForSession(ctx, raceID, session)
	if err != nil {
		return -1, fmt.Errorf("%s: %w", ErrContextFailedToListPredictions, err)
	}

	scored := 0
	for _, p := range predictions {
		points := scoring.ScorePrediction(p, result)
		if err := s.predictions.UpdatePredictionPoints(ctx, p.ID, points); err != nil {
			log.Warn(LogMsgPredictionScoreFailed, "prediction_id", p.ID, "error", err)
			continue
		}
		scored++
	}
	metrics.PredictionsScored.WithLabelValues(string(session)).Add(float64(scored))
	return scored, nil
}

// settleBonus scores the bonus predictions of a race against the facts
// derivable from the classification.
func (s *service) settleBonus(ctx context.Context, raceID int, racePayload *ergast.RacePayload) (int, error) {
	log := logger.FromContext(ctx)

	facts := results.BonusFacts(results.Entries(racePayload.Results))
	predictions, err := s.predictions.ListBonusPredictionsForRace(ctx, raceID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToListPredictions, err)
	}

	scored := 0
	for _, p := range predictions {
		points := scoring.ScoreBonus(p, facts)
		if err := s.predictions.UpdateBonusPredictionPoints(ctx, p.ID, points); err != nil {
			log.Warn(LogMsgPredictionScoreFailed, "bonus_id", p.ID, "error", err)
			continue
		}
		scored++
	}
	return scored, nil
}

// SettleBets re-runs only the bet leg of a round. The CAS status guard in
// the repository makes this safe after a partial earlier run: bets already
// settled stay untouched.
func (s *service) SettleBets(ctx context.Context, round int) (*RoundReport, error) {
	lock := s.locks.GetLock(strconv.Itoa(round))
	lock.Lock()
	defer lock.Unlock()

	log := logger.FromContext(ctx)
	log.Info(LogMsgSettleBetsCalled, "season", s.season, "round", round)

	race, err := s.races.GetRaceByRound(ctx, s.season, round)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRace, err)
	}
	if race == nil {
		return nil, domain.ErrRaceNotFound
	}

	report := &RoundReport{Round: round, RaceID: race.ID}

	racePayload, err := s.source.RaceResults(ctx, s.season, round)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFetchResult, err)
	}
	if racePayload == nil || len(racePayload.Results) == 0 {
		log.Info(LogMsgNoResultYet, "race_id", race.ID, "session", domain.SessionRace)
		return report, nil
	}
	qualiPayload, err := s.source.QualifyingResults(ctx, s.season, round)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFetchResult, err)
	}

	stats := DeriveRaceStats(racePayload, qualiPayload)
	s.applyTeamTier(ctx, &stats)
	settled, err := s.settleBets(ctx, race.ID, stats)
	if err != nil {
		return report, err
	}
	report.BetsSettled = settled

	log.Info(LogMsgBetsSettled, "round", round, "bets", settled)
	return report, nil
}

// applyTeamTier marks the top-five constructors on the stats from the
// current championship table. A failed fetch only logs: the underdog
// predicate then errors per bet and those bets stay pending for a rerun.
func (s *service) applyTeamTier(ctx context.Context, stats *RaceStats) {
	constructors, err := s.source.ConstructorStandings(ctx, s.season)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgStandingsUnavailable, "season", s.season, "error", err)
		return
	}
	stats.ApplyConstructorStandings(constructors)
}

// SettleRounds settles each given round, isolating failures: one broken
// round never blocks the others.
func (s *service) SettleRounds(ctx context.Context, rounds []int) []RoundReport {
	log := logger.FromContext(ctx)

	reports := make([]RoundReport, 0, len(rounds))
	for _, round := range rounds {
		report, err := s.SettleRound(ctx, round)
		if report == nil {
			report = &RoundReport{Round: round}
		}
		if err != nil {
			report.Error = err.Error()
			log.Warn(LogMsgRoundFailed, "round", round, "error", err)
		}
		reports = append(reports, *report)
	}
	return reports
}

// SettleAllPassed settles every race of the season whose date has passed,
// regardless of current status. Reruns over already-finished races are
// harmless and pick up retroactive result corrections.
func (s *service) SettleAllPassed(ctx context.Context) ([]RoundReport, error) {
	races, err := s.races.ListRacesBefore(ctx, s.season, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListRaces, err)
	}
	return s.SettleRounds(ctx, rounds(races)), nil
}

// SettleAuto settles races that have passed but were never marked finished.
func (s *service) SettleAuto(ctx context.Context) ([]RoundReport, error) {
	races, err := s.races.ListRacesNotFinished(ctx, s.season)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListRaces, err)
	}

	now := time.Now()
	due := make([]domain.Race, 0, len(races))
	for _, race := range races {
		if race.Date.Before(now) {
			due = append(due, race)
		}
	}
	return s.SettleRounds(ctx, rounds(due)), nil
}

func rounds(races []domain.Race) []int {
	out := make([]int, 0, len(races))
	for _, race := range races {
		out = append(out, race.Round)
	}
	return out
}

// SettleSeason scores season predictions against the current championship
// standings, then refreshes aggregates. With no standings available the
// pass is a no-op.
func (s *service) SettleSeason(ctx context.Context) (*SeasonReport, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSettleSeasonCalled, "season", s.season)

	drivers, err := s.source.DriverStandings(ctx, s.season)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFetchStandings, err)
	}
	constructors, err := s.source.ConstructorStandings(ctx, s.season)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFetchStandings, err)
	}

	report := &SeasonReport{Season: s.season}
	standings := results.SeasonStandings(drivers, constructors)
	if standings.Empty() {
		log.Info(LogMsgNoResultYet, "season", s.season)
		return report, nil
	}
	report.StandingsKnown = true

	predictions, err := s.predictions.ListSeasonPredictionsForSeason(ctx, s.season)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListPredictions, err)
	}

	for _, p := range predictions {
		points := scoring.ScoreSeason(p, standings)
		if err := s.predictions.UpdateSeasonPredictionPoints(ctx, p.ID, points); err != nil {
			log.Warn(LogMsgPredictionScoreFailed, "season_prediction_id", p.ID, "error", err)
			continue
		}
		report.PredictionsScored++
	}

	if err := s.RecomputeAggregates(ctx); err != nil {
		return report, err
	}
	return report, nil
}
