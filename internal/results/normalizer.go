package results

import (
	"strconv"
	"strings"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
	"github.com/f1tipp/F1Tipp_Go/internal/ergast"
)

// Entries resolves a raw classification into per-driver result entries.
// Entries with an unresolvable driver are kept (they still count toward
// DNF statistics) but can never match a prediction.
func Entries(payload []ergast.ResultPayload) []domain.ResultEntry {
	entries := make([]domain.ResultEntry, 0, len(payload))
	for _, r := range payload {
		position, _ := strconv.Atoi(r.Position)
		grid, _ := strconv.Atoi(r.Grid)
		points, _ := strconv.ParseFloat(r.Points, 64)

		entry := domain.ResultEntry{
			Driver:      ResolveDriver(r.Driver.Code, r.Driver.PermanentNumber),
			Constructor: domain.ConstructorID(r.Constructor.ConstructorID),
			Position:    position,
			Grid:        grid,
			Points:      points,
			Status:      r.Status,
			Finished:    finished(r.Status),
		}
		if r.Time != nil {
			entry.GapToWinner = r.Time.Time
		}
		if r.FastestLap != nil && r.FastestLap.Rank == "1" {
			entry.FastestLap = true
		}
		entries = append(entries, entry)
	}
	return entries
}

// finished reports whether a status string counts as a classified finish.
// Lapped cars come back as "+1 Lap" etc.; everything else is a retirement.
func finished(status string) bool {
	return status == "Finished" || strings.HasPrefix(status, "+")
}

// Normalize builds the canonical result for one session from the provider
// payload. A nil payload, or one without the session's result table, yields
// an empty canonical result - not an error - so settlement can treat
// "session not yet run" uniformly.
func Normalize(race *ergast.RacePayload, session domain.SessionType) domain.CanonicalResult {
	if race == nil {
		return domain.CanonicalResult{}
	}

	switch session {
	case domain.SessionQualifying:
		return normalizeQualifying(Entries(race.QualifyingResults))
	case domain.SessionSprint:
		return normalizePodium(Entries(race.SprintResults))
	case domain.SessionRace:
		result := normalizePodium(Entries(race.Results))
		for _, e := range Entries(race.Results) {
			if e.FastestLap {
				result.FastestLap = e.Driver
				break
			}
		}
		return result
	}
	return domain.CanonicalResult{}
}

func normalizeQualifying(entries []domain.ResultEntry) domain.CanonicalResult {
	var result domain.CanonicalResult
	for _, e := range entries {
		if e.Position == 1 {
			result.Pole = e.Driver
			break
		}
	}
	return result
}

func normalizePodium(entries []domain.ResultEntry) domain.CanonicalResult {
	var result domain.CanonicalResult
	for _, e := range entries {
		switch e.Position {
		case 1:
			result.P1 = e.Driver
		case 2:
			result.P2 = e.Driver
		case 3:
			result.P3 = e.Driver
		}
	}
	return result
}

// BonusFacts derives the canonical side of bonus settlement from the race
// classification. The provider carries no safety-car, red-flag, rain,
// driver-of-the-day or overtake data, so those facts stay unknown and their
// sub-questions award nothing.
func BonusFacts(entries []domain.ResultEntry) domain.BonusFacts {
	facts := domain.BonusFacts{}
	if len(entries) == 0 {
		return facts
	}

	dnfs := 0
	firstDNFPos := -1
	for _, e := range entries {
		if e.Finished {
			continue
		}
		dnfs++
		// Retirees are classified in reverse retirement order, so the
		// highest position among them is the first car out.
		if e.Position > firstDNFPos {
			firstDNFPos = e.Position
			facts.FirstDNF = e.Driver
		}
	}
	facts.DNFCount = &dnfs
	return facts
}

// SeasonStandings normalizes championship tables for season settlement.
// MostPoles and MostDNFs would need a per-round sweep the provider cannot
// answer in one call; they stay unknown and score nothing.
func SeasonStandings(drivers []ergast.DriverStanding, constructors []ergast.ConstructorStanding) domain.SeasonStandings {
	standings := domain.SeasonStandings{}

	mostWins := 0
	for _, d := range drivers {
		id := ResolveDriver(d.Driver.Code, d.Driver.PermanentNumber)
		standings.TopDrivers = append(standings.TopDrivers, id)
		if wins, err := strconv.Atoi(d.Wins); err == nil && wins > mostWins {
			mostWins = wins
			standings.MostWins = id
		}
	}
	for _, c := range constructors {
		standings.TopConstructors = append(standings.TopConstructors, domain.ConstructorID(c.Constructor.ConstructorID))
	}
	return standings
}
