package scoring

import "github.com/f1tipp/F1Tipp_Go/internal/domain"

// Pure scoring rules. Every function here is deterministic in its inputs and
// touches no storage; settlement calls them and persists what comes back.
// Unset guesses and unresolved canonical slots never match anything.

// scoreSlots applies a podium table to three ordered guesses: full slot value
// for an exact position match, the consolation value when the guess appears
// anywhere in the actual top 3 but in the wrong slot, nothing otherwise.
func scoreSlots[T comparable](guess, actual [3]T, table PodiumTable) int {
	var zero T
	points := 0
	for i := range guess {
		if guess[i] == zero {
			continue
		}
		if guess[i] == actual[i] {
			points += table.Slot(i)
			continue
		}
		for j := range actual {
			if guess[i] == actual[j] {
				points += table.Consolation
				break
			}
		}
	}
	return points
}

// ScorePrediction scores one podium prediction against the session's
// canonical result.
func ScorePrediction(p domain.Prediction, result domain.CanonicalResult) int {
	switch p.SessionType {
	case domain.SessionQualifying:
		return scoreQualifying(p, result)
	case domain.SessionSprint:
		return scoreSlots(p.PodiumGuess(), result.Podium(), SprintTable)
	case domain.SessionRace:
		return scoreRace(p, result)
	}
	return 0
}

// scoreQualifying awards the pole prediction on exact match only; there is
// no partial credit for qualifying.
func scoreQualifying(p domain.Prediction, result domain.CanonicalResult) int {
	if p.Pole.Set() && p.Pole == result.Pole {
		return PolePoints
	}
	return 0
}

func scoreRace(p domain.Prediction, result domain.CanonicalResult) int {
	points := scoreSlots(p.PodiumGuess(), result.Podium(), RaceTable)
	if p.FastestLap.Set() && p.FastestLap == result.FastestLap {
		points += FastestLapPoints
	}
	return points
}

// ScoreBonus scores the independent bonus sub-questions. A sub-question only
// awards when both sides are known: an unanswered guess scores nothing, and
// an unknown fact (nil boolean, unresolved driver) scores nothing either.
func ScoreBonus(p domain.BonusPrediction, facts domain.BonusFacts) int {
	points := 0
	if matchBool(p.SafetyCar, facts.SafetyCar) {
		points += BonusPoints.SafetyCar
	}
	if matchBool(p.RedFlag, facts.RedFlag) {
		points += BonusPoints.RedFlag
	}
	if matchBool(p.Rain, facts.Rain) {
		points += BonusPoints.Rain
	}
	if p.FirstDNF.Set() && p.FirstDNF == facts.FirstDNF {
		points += BonusPoints.FirstDNF
	}
	if p.DriverOfDay.Set() && p.DriverOfDay == facts.DriverOfDay {
		points += BonusPoints.DriverOfDay
	}
	if p.MostOvertakes.Set() && p.MostOvertakes == facts.MostOvertakes {
		points += BonusPoints.MostOvertakes
	}
	if p.DNFCount != domain.DNFBucketNone && facts.DNFCount != nil &&
		p.DNFCount == domain.BucketForDNFCount(*facts.DNFCount) {
		points += BonusPoints.DNFCount
	}
	return points
}

func matchBool(guess, fact *bool) bool {
	return guess != nil && fact != nil && *guess == *fact
}

// ScoreSeason scores championship guesses against the final standings: the
// driver and constructor top 3 through their podium tables, plus one flat
// award for each correct "most X" driver guess.
func ScoreSeason(p domain.SeasonPrediction, standings domain.SeasonStandings) int {
	points := scoreSlots(p.DriverGuesses(), top3Drivers(standings.TopDrivers), SeasonDriverTable)
	points += scoreSlots(p.ConstructorGuesses(), top3Constructors(standings.TopConstructors), SeasonConstructorTable)

	if p.MostWinsDriver.Set() && p.MostWinsDriver == standings.MostWins {
		points += SeasonSuperlativePoints
	}
	if p.MostPolesDriver.Set() && p.MostPolesDriver == standings.MostPoles {
		points += SeasonSuperlativePoints
	}
	if p.MostDNFsDriver.Set() && p.MostDNFsDriver == standings.MostDNFs {
		points += SeasonSuperlativePoints
	}
	return points
}

func top3Drivers(drivers []domain.DriverID) [3]domain.DriverID {
	var top [3]domain.DriverID
	for i := 0; i < len(drivers) && i < 3; i++ {
		top[i] = drivers[i]
	}
	return top
}

func top3Constructors(constructors []domain.ConstructorID) [3]domain.ConstructorID {
	var top [3]domain.ConstructorID
	for i := 0; i < len(constructors) && i < 3; i++ {
		top[i] = constructors[i]
	}
	return top
}
