package ergast

// Payload types mirror the provider's MRData envelope. Everything is a string
// on the wire; normalization into numeric ids happens in the results package.

type responseEnvelope struct {
	MRData mrData `json:"MRData"`
}

type mrData struct {
	RaceTable      *raceTable      `json:"RaceTable,omitempty"`
	StandingsTable *standingsTable `json:"StandingsTable,omitempty"`
}

type raceTable struct {
	Races []RacePayload `json:"Races"`
}

type standingsTable struct {
	StandingsLists []StandingsList `json:"StandingsLists"`
}

// RacePayload is one race of the calendar, optionally carrying result tables.
type RacePayload struct {
	Season            string          `json:"season"`
	Round             string          `json:"round"`
	RaceName          string          `json:"raceName"`
	Date              string          `json:"date"`
	Time              string          `json:"time"`
	Sprint            *sessionDate    `json:"Sprint,omitempty"`
	Results           []ResultPayload `json:"Results,omitempty"`
	QualifyingResults []ResultPayload `json:"QualifyingResults,omitempty"`
	SprintResults     []ResultPayload `json:"SprintResults,omitempty"`
}

type sessionDate struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// HasSprint reports whether the weekend carries a sprint session.
func (r RacePayload) HasSprint() bool {
	return r.Sprint != nil
}

// ResultPayload is one per-driver entry of a session classification.
type ResultPayload struct {
	Number       string              `json:"number"`
	Position     string              `json:"position"`
	PositionText string              `json:"positionText"`
	Points       string              `json:"points"`
	Grid         string              `json:"grid"`
	Status       string              `json:"status"`
	Driver       DriverPayload       `json:"Driver"`
	Constructor  ConstructorPayload  `json:"Constructor"`
	Time         *ResultTime         `json:"Time,omitempty"`
	FastestLap   *FastestLapPayload  `json:"FastestLap,omitempty"`
}

type ResultTime struct {
	Millis string `json:"millis"`
	Time   string `json:"time"`
}

type FastestLapPayload struct {
	Rank string `json:"rank"`
	Lap  string `json:"lap"`
}

// DriverPayload identifies a driver on the wire.
type DriverPayload struct {
	DriverID        string `json:"driverId"`
	PermanentNumber string `json:"permanentNumber"`
	Code            string `json:"code"`
	GivenName       string `json:"givenName"`
	FamilyName      string `json:"familyName"`
}

// ConstructorPayload identifies a constructor on the wire.
type ConstructorPayload struct {
	ConstructorID string `json:"constructorId"`
	Name          string `json:"name"`
}

// StandingsList is one season's championship table.
type StandingsList struct {
	Season               string                `json:"season"`
	Round                string                `json:"round"`
	DriverStandings      []DriverStanding      `json:"DriverStandings,omitempty"`
	ConstructorStandings []ConstructorStanding `json:"ConstructorStandings,omitempty"`
}

// DriverStanding is one row of the drivers' championship.
type DriverStanding struct {
	Position string        `json:"position"`
	Points   string        `json:"points"`
	Wins     string        `json:"wins"`
	Driver   DriverPayload `json:"Driver"`
}

// ConstructorStanding is one row of the constructors' championship.
type ConstructorStanding struct {
	Position    string             `json:"position"`
	Points      string             `json:"points"`
	Wins        string             `json:"wins"`
	Constructor ConstructorPayload `json:"Constructor"`
}

// GapMillis returns the finishing time in milliseconds, 0 when absent or
// unparsable. For the winner this is the total race time; the winning margin
// is the difference between P2 and P1.
func (r ResultPayload) GapMillis() int64 {
	if r.Time == nil {
		return 0
	}
	var ms int64
	for _, c := range r.Time.Millis {
		if c < '0' || c > '9' {
			return 0
		}
		ms = ms*10 + int64(c-'0')
	}
	return ms
}
