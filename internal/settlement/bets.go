package settlement

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
	"github.com/f1tipp/F1Tipp_Go/internal/logger"
	"github.com/f1tipp/F1Tipp_Go/internal/metrics"
)

// predicate decides one bet against the derived race stats. An error means
// the selection could not be evaluated; the bet then stays pending instead
// of being guessed at.
type predicate func(stats RaceStats, selection string) (bool, error)

var (
	errBadSelection = errors.New("malformed bet selection")
	errTierUnknown  = errors.New("constructor standings unavailable")
)

// betPredicates is the closed dispatch table: exactly one predicate per bet
// type. NewService refuses to construct when a type is missing, so adding a
// domain.BetType without a predicate fails at startup, not at settlement.
var betPredicates = map[domain.BetType]predicate{
	domain.BetPoleWins:          settlePoleWins,
	domain.BetWinningMargin:     settleWinningMargin,
	domain.BetHeadToHead:        settleHeadToHead,
	domain.BetDriverDNF:         settleDriverDNF,
	domain.BetTeamGain:          settleTeamGain,
	domain.BetTeammatesInPoints: settleTeammatesInPoints,
	domain.BetUnderdogTop10:     settleUnderdogTop10,
	domain.BetTotalDNFs:         settleTotalDNFs,
}

// verifyDispatchTable checks the predicate table covers every known bet type.
func verifyDispatchTable() error {
	for _, t := range domain.BetTypes() {
		if _, ok := betPredicates[t]; !ok {
			return fmt.Errorf("%s: %s", ErrMsgDispatchTableIncomplete, t)
		}
	}
	return nil
}

func parseDriverSelection(selection string) (domain.DriverID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(selection))
	if err != nil || n <= 0 {
		return domain.DriverNone, fmt.Errorf("%w: %q", errBadSelection, selection)
	}
	return domain.DriverID(n), nil
}

// settlePoleWins wins when the selected driver takes pole and converts it
// into the race win.
func settlePoleWins(stats RaceStats, selection string) (bool, error) {
	driver, err := parseDriverSelection(selection)
	if err != nil {
		return false, err
	}
	return stats.Pole.Set() && driver == stats.Pole && driver == stats.Winner, nil
}

// settleWinningMargin wins when the winning margin falls into the selected
// bucket.
func settleWinningMargin(stats RaceStats, selection string) (bool, error) {
	bucket := domain.MarginBucket(strings.TrimSpace(selection))
	switch bucket {
	case domain.MarginUnder5s, domain.Margin5to10s, domain.MarginOver10s:
		return bucket == stats.MarginBucket(), nil
	}
	return false, fmt.Errorf("%w: %q", errBadSelection, selection)
}

// settleHeadToHead parses "44>63" and wins when the first driver is
// classified ahead of the second. A retired car is behind every classified
// finisher; two retirees compare by classification as well.
func settleHeadToHead(stats RaceStats, selection string) (bool, error) {
	parts := strings.SplitN(selection, ">", 2)
	if len(parts) != 2 {
		return false, fmt.Errorf("%w: %q", errBadSelection, selection)
	}
	ahead, err := parseDriverSelection(parts[0])
	if err != nil {
		return false, err
	}
	behind, err := parseDriverSelection(parts[1])
	if err != nil {
		return false, err
	}

	aheadPos := stats.FinishPosition(ahead)
	behindPos := stats.FinishPosition(behind)
	if aheadPos == 0 || behindPos == 0 {
		// One of the drivers did not take part; the matchup is void and the
		// bet loses rather than staying pending forever.
		return false, nil
	}
	if stats.DidNotFinish(ahead) && !stats.DidNotFinish(behind) {
		return false, nil
	}
	if !stats.DidNotFinish(ahead) && stats.DidNotFinish(behind) {
		return true, nil
	}
	return aheadPos < behindPos, nil
}

// settleDriverDNF wins when the selected driver retires.
func settleDriverDNF(stats RaceStats, selection string) (bool, error) {
	driver, err := parseDriverSelection(selection)
	if err != nil {
		return false, err
	}
	return stats.DidNotFinish(driver), nil
}

// settleTeamGain wins when the selected constructor gained, combined, more
// grid-to-finish places than every other constructor in the race. A tie for
// the biggest gain has no winner.
func settleTeamGain(stats RaceStats, selection string) (bool, error) {
	team := domain.ConstructorID(strings.TrimSpace(selection))
	if len(stats.TeamDrivers(team)) == 0 {
		return false, fmt.Errorf("%w: %q", errBadSelection, selection)
	}

	gain := stats.TeamGain(team)
	for other := range stats.teams {
		if other != team && stats.TeamGain(other) >= gain {
			return false, nil
		}
	}
	return true, nil
}

// settleTeammatesInPoints wins when both of the constructor's cars score
// championship points.
func settleTeammatesInPoints(stats RaceStats, selection string) (bool, error) {
	drivers := stats.TeamDrivers(domain.ConstructorID(strings.TrimSpace(selection)))
	if len(drivers) < 2 {
		return false, fmt.Errorf("%w: %q", errBadSelection, selection)
	}
	for _, d := range drivers {
		if stats.Points(d) <= 0 {
			return false, nil
		}
	}
	return true, nil
}

// settleUnderdogTop10 wins when the selected driver races for a constructor
// outside the championship top five and still finishes in the top ten. The
// grid slot is irrelevant; the team's tier is what makes the result an upset.
// Without standings the tier is unknown and the bet stays pending.
func settleUnderdogTop10(stats RaceStats, selection string) (bool, error) {
	driver, err := parseDriverSelection(selection)
	if err != nil {
		return false, err
	}
	if !stats.TierKnown() {
		return false, errTierUnknown
	}
	finish := stats.FinishPosition(driver)
	if finish == 0 || stats.DidNotFinish(driver) {
		return false, nil
	}
	return finish <= 10 && !stats.TopTeamDriver(driver), nil
}

// settleTotalDNFs wins when the race's retirement count falls into the
// selected bucket.
func settleTotalDNFs(stats RaceStats, selection string) (bool, error) {
	bucket := domain.DNFBucket(strings.TrimSpace(selection))
	switch bucket {
	case domain.DNFBucketLow, domain.DNFBucketMid, domain.DNFBucketHigh:
		return bucket == domain.BucketForDNFCount(stats.DNFCount), nil
	}
	return false, fmt.Errorf("%w: %q", errBadSelection, selection)
}

// settleBets resolves every pending bet on a race against the derived stats.
// Each bet is claimed with a compare-and-swap status update so concurrent
// settlement runs cannot pay a bet twice; winnings are credited only by the
// run whose update claimed the row. Failures are isolated per bet.
func (s *service) settleBets(ctx context.Context, raceID int, stats RaceStats) (int, error) {
	log := logger.FromContext(ctx)

	bets, err := s.bets.ListPendingBetsForRace(ctx, raceID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToListBets, err)
	}

	settled := 0
	for _, bet := range bets {
		settle, ok := betPredicates[bet.Type]
		if !ok {
			log.Warn(LogMsgBetPredicateFailed, "bet_id", bet.ID, "error", domain.ErrUnknownBetType)
			continue
		}
		won, err := settle(stats, bet.Selection)
		if err != nil {
			log.Warn(LogMsgBetPredicateFailed, "bet_id", bet.ID, "type", bet.Type, "error", err)
			continue
		}

		status := domain.BetStatusLost
		var winnings int64
		if won {
			status = domain.BetStatusWon
			winnings = bet.Payout()
		}

		rows, err := s.bets.SettleBetIfPending(ctx, bet.ID, status, winnings)
		if err != nil {
			log.Warn(LogMsgBetPredicateFailed, "bet_id", bet.ID, "error",
				fmt.Errorf("%s: %w", ErrContextFailedToSettleBet, err))
			continue
		}
		if rows == 0 {
			log.Info(LogMsgBetAlreadyClaimed, "bet_id", bet.ID)
			continue
		}

		if won {
			if err := s.profiles.CreditCoins(ctx, bet.UserID, winnings); err != nil {
				return settled, fmt.Errorf("%s: %w", ErrContextFailedToCreditCoins, err)
			}
			metrics.CoinsCredited.Add(float64(winnings))
		}
		metrics.BetsSettled.WithLabelValues(string(bet.Type), string(status)).Inc()
		settled++
	}
	return settled, nil
}
