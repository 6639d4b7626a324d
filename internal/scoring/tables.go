package scoring

// PodiumTable parameterizes the shared "exact slot vs. anywhere in top-3"
// rule. Every event type scores podium guesses through the same function
// with its own table; only the point values differ.
type PodiumTable struct {
	P1          int
	P2          int
	P3          int
	Consolation int // awarded when the guess is on the podium but in the wrong slot
}

// Slot returns the exact-match value for the given podium position (0-based).
func (t PodiumTable) Slot(i int) int {
	switch i {
	case 0:
		return t.P1
	case 1:
		return t.P2
	case 2:
		return t.P3
	}
	return 0
}

var (
	// SprintTable scores sprint podium guesses.
	SprintTable = PodiumTable{P1: 3, P2: 2, P3: 1, Consolation: 1}
	// RaceTable scores race podium guesses.
	RaceTable = PodiumTable{P1: 5, P2: 4, P3: 3, Consolation: 1}
	// SeasonDriverTable scores drivers' championship top-3 guesses.
	SeasonDriverTable = PodiumTable{P1: 100, P2: 50, P3: 30, Consolation: 15}
	// SeasonConstructorTable scores constructors' championship top-3 guesses.
	SeasonConstructorTable = PodiumTable{P1: 75, P2: 40, P3: 25, Consolation: 10}
)

// Fixed single-slot values.
const (
	PolePoints       = 10 // qualifying pole, exact match only
	FastestLapPoints = 1  // race fastest-lap bonus, additive
)

// BonusPointsTable fixes the value of each independent bonus sub-question.
type BonusPointsTable struct {
	SafetyCar     int
	RedFlag       int
	Rain          int
	FirstDNF      int
	DriverOfDay   int
	MostOvertakes int
	DNFCount      int
}

// BonusPoints is the configured bonus value set.
var BonusPoints = BonusPointsTable{
	SafetyCar:     5,
	RedFlag:       10,
	Rain:          8,
	FirstDNF:      15,
	DriverOfDay:   10,
	MostOvertakes: 10,
	DNFCount:      5,
}

// SeasonSuperlativePoints is awarded for each correct "most wins/poles/DNFs"
// driver guess.
const SeasonSuperlativePoints = 25
