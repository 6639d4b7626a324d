package domain

import (
	"time"

	"github.com/google/uuid"
)

// BetType is the closed set of novelty wager kinds. Each type maps to exactly
// one settlement predicate; see the settlement package's dispatch table.
type BetType string

const (
	BetPoleWins          BetType = "pole_wins"
	BetWinningMargin     BetType = "winning_margin"
	BetHeadToHead        BetType = "head_to_head"
	BetDriverDNF         BetType = "driver_dnf"
	BetTeamGain          BetType = "team_gain"
	BetTeammatesInPoints BetType = "teammates_in_points"
	BetUnderdogTop10     BetType = "underdog_top10"
	BetTotalDNFs         BetType = "total_dnfs"
)

// BetTypes lists every known bet type, in a stable order. The settlement
// dispatch table is checked against this list at startup.
func BetTypes() []BetType {
	return []BetType{
		BetPoleWins,
		BetWinningMargin,
		BetHeadToHead,
		BetDriverDNF,
		BetTeamGain,
		BetTeammatesInPoints,
		BetUnderdogTop10,
		BetTotalDNFs,
	}
}

// BetStatus tracks the settlement state of a bet. The only legal transition
// is pending -> won|lost, enforced with a compare-and-swap update.
type BetStatus string

const (
	BetStatusPending BetStatus = "pending"
	BetStatusWon     BetStatus = "won"
	BetStatusLost    BetStatus = "lost"
)

// MarginBucket classifies the winning margin of a race.
type MarginBucket string

const (
	MarginUnder5s MarginBucket = "under_5s"
	Margin5to10s  MarginBucket = "5s_to_10s"
	MarginOver10s MarginBucket = "over_10s"
)

// Bet is a novelty coin wager on one race. Selection is bet-type specific
// free text (a driver number, a constructor id, "44>63", a bucket name).
type Bet struct {
	ID        uuid.UUID  `json:"id"`
	UserID    string     `json:"user_id"`
	RaceID    int        `json:"race_id"`
	Type      BetType    `json:"type"`
	Selection string     `json:"selection"`
	Stake     int64      `json:"stake"`
	Odds      float64    `json:"odds"`
	Status    BetStatus  `json:"status"`
	Winnings  int64      `json:"winnings"`
	CreatedAt time.Time  `json:"created_at"`
	SettledAt *time.Time `json:"settled_at,omitempty"`
}

// Payout is the amount credited when the bet wins.
func (b Bet) Payout() int64 {
	return int64(float64(b.Stake) * b.Odds)
}

// DefaultOdds are the fixed multipliers per bet type.
var DefaultOdds = map[BetType]float64{
	BetPoleWins:          1.8,
	BetWinningMargin:     3.0,
	BetHeadToHead:        1.9,
	BetDriverDNF:         4.0,
	BetTeamGain:          5.0,
	BetTeammatesInPoints: 2.5,
	BetUnderdogTop10:     2.2,
	BetTotalDNFs:         3.5,
}
