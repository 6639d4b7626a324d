package settlement

import (
	"strconv"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
	"github.com/f1tipp/F1Tipp_Go/internal/ergast"
	"github.com/f1tipp/F1Tipp_Go/internal/results"
)

// topTeamCount is how many constructors of the championship table count as
// top teams; a driver from any other constructor is an underdog.
const topTeamCount = 5

// RaceStats is the derived race-weekend state bet predicates evaluate
// against. It is built once per settlement run from the normalized
// classifications and thrown away afterwards.
type RaceStats struct {
	Pole         domain.DriverID
	Winner       domain.DriverID
	MarginMillis int64
	DNFCount     int

	finish   map[domain.DriverID]int
	grid     map[domain.DriverID]int
	points   map[domain.DriverID]float64
	dnf      map[domain.DriverID]bool
	team     map[domain.DriverID]domain.ConstructorID
	teams    map[domain.ConstructorID][]domain.DriverID
	topTeams map[domain.ConstructorID]bool
}

// DeriveRaceStats builds race stats from the race and qualifying payloads.
// Either payload may be nil; the corresponding fields stay at their zero
// values and predicates depending on them resolve to a loss or an error.
func DeriveRaceStats(race, qualifying *ergast.RacePayload) RaceStats {
	stats := RaceStats{
		finish:   make(map[domain.DriverID]int),
		grid:     make(map[domain.DriverID]int),
		points:   make(map[domain.DriverID]float64),
		dnf:      make(map[domain.DriverID]bool),
		team:     make(map[domain.DriverID]domain.ConstructorID),
		teams:    make(map[domain.ConstructorID][]domain.DriverID),
		topTeams: make(map[domain.ConstructorID]bool),
	}

	if qualifying != nil {
		quali := results.Normalize(qualifying, domain.SessionQualifying)
		stats.Pole = quali.Pole
	}

	if race == nil {
		return stats
	}

	entries := results.Entries(race.Results)

	var winnerMillis, runnerUpMillis int64
	for i, entry := range entries {
		payload := race.Results[i]
		if !entry.Finished {
			stats.DNFCount++
		}
		// Unresolved drivers still count toward the DNF total above but can
		// never match a bet selection.
		if !entry.Driver.Set() {
			continue
		}

		stats.finish[entry.Driver] = entry.Position
		stats.grid[entry.Driver] = entry.Grid
		stats.points[entry.Driver] = entry.Points
		if entry.Constructor != "" {
			stats.team[entry.Driver] = entry.Constructor
			stats.teams[entry.Constructor] = append(stats.teams[entry.Constructor], entry.Driver)
		}

		if !entry.Finished {
			stats.dnf[entry.Driver] = true
			continue
		}

		switch entry.Position {
		case 1:
			stats.Winner = entry.Driver
			winnerMillis = payload.GapMillis()
		case 2:
			runnerUpMillis = payload.GapMillis()
		}
	}

	// Provider millis are total race times; the winning margin is the gap
	// between the first two classified cars. A lapped runner-up carries no
	// millis and the margin stays zero, which buckets as over 10s downstream.
	if winnerMillis > 0 && runnerUpMillis > winnerMillis {
		stats.MarginMillis = runnerUpMillis - winnerMillis
	}
	return stats
}

// HasRaceResult reports whether a race classification was available at all.
func (s RaceStats) HasRaceResult() bool {
	return len(s.finish) > 0
}

// FinishPosition returns a driver's official classification, 0 when the
// driver did not appear in the result.
func (s RaceStats) FinishPosition(d domain.DriverID) int {
	return s.finish[d]
}

// GridPosition returns a driver's starting spot, 0 for a pit-lane start or
// an absent driver.
func (s RaceStats) GridPosition(d domain.DriverID) int {
	return s.grid[d]
}

// Points returns the championship points a driver scored in the race.
func (s RaceStats) Points(d domain.DriverID) float64 {
	return s.points[d]
}

// DidNotFinish reports whether the driver retired.
func (s RaceStats) DidNotFinish(d domain.DriverID) bool {
	return s.dnf[d]
}

// TeamDrivers returns the drivers classified for one constructor.
func (s RaceStats) TeamDrivers(c domain.ConstructorID) []domain.DriverID {
	return s.teams[c]
}

// TeamGain is the constructor's combined grid-to-finish place gain.
// Pit-lane starts carry grid 0 and count as last on the grid.
func (s RaceStats) TeamGain(c domain.ConstructorID) int {
	fieldSize := len(s.finish)
	gained := 0
	for _, d := range s.teams[c] {
		grid := s.grid[d]
		if grid == 0 {
			grid = fieldSize
		}
		gained += grid - s.finish[d]
	}
	return gained
}

// ApplyConstructorStandings records which constructors currently sit in the
// championship top five, the tier the underdog bet is judged against.
func (s *RaceStats) ApplyConstructorStandings(standings []ergast.ConstructorStanding) {
	for _, row := range standings {
		pos, err := strconv.Atoi(row.Position)
		if err != nil || pos < 1 || pos > topTeamCount {
			continue
		}
		s.topTeams[domain.ConstructorID(row.Constructor.ConstructorID)] = true
	}
}

// TierKnown reports whether constructor standings were applied.
func (s RaceStats) TierKnown() bool {
	return len(s.topTeams) > 0
}

// TopTeamDriver reports whether the driver races for a top-five constructor.
func (s RaceStats) TopTeamDriver(d domain.DriverID) bool {
	return s.topTeams[s.team[d]]
}

// MarginBucket classifies the winning margin.
func (s RaceStats) MarginBucket() domain.MarginBucket {
	switch {
	case s.MarginMillis > 0 && s.MarginMillis < 5000:
		return domain.MarginUnder5s
	case s.MarginMillis >= 5000 && s.MarginMillis <= 10000:
		return domain.Margin5to10s
	default:
		return domain.MarginOver10s
	}
}
