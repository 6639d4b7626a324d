package domain

// CanonicalResult is the normalized official outcome for one (race, session).
// It is built fresh on every settlement run and never persisted. Slots that
// the provider payload did not contain stay DriverNone.
type CanonicalResult struct {
	Pole       DriverID `json:"pole,omitempty"`
	P1         DriverID `json:"p1,omitempty"`
	P2         DriverID `json:"p2,omitempty"`
	P3         DriverID `json:"p3,omitempty"`
	FastestLap DriverID `json:"fastest_lap,omitempty"`
}

// Empty reports whether no slot at all could be resolved, i.e. the session
// has not happened (or the provider returned nothing usable).
func (r CanonicalResult) Empty() bool {
	return !r.Pole.Set() && !r.P1.Set() && !r.P2.Set() && !r.P3.Set() && !r.FastestLap.Set()
}

// Podium returns the top-3 finishers in order. Unset slots are included as
// DriverNone so callers index positions directly.
func (r CanonicalResult) Podium() [3]DriverID {
	return [3]DriverID{r.P1, r.P2, r.P3}
}

// InPodium reports whether the driver appears anywhere in the top 3.
func (r CanonicalResult) InPodium(d DriverID) bool {
	return d.Set() && (d == r.P1 || d == r.P2 || d == r.P3)
}

// ResultEntry is one per-driver line of a session result after driver identity
// resolution. Position is the official classification, Grid the starting spot.
type ResultEntry struct {
	Driver      DriverID
	Constructor ConstructorID
	Position    int
	Grid        int
	Points      float64
	Status      string
	GapToWinner string
	FastestLap  bool
	Finished    bool
}

// SeasonStandings is the normalized championship state used to settle season
// predictions: drivers and constructors in classification order, plus the
// per-driver tallies the "most X" guesses score against.
type SeasonStandings struct {
	TopDrivers      []DriverID
	TopConstructors []ConstructorID
	MostWins        DriverID
	MostPoles       DriverID
	MostDNFs        DriverID
}

// Empty reports whether no standings could be resolved.
func (s SeasonStandings) Empty() bool {
	return len(s.TopDrivers) == 0 && len(s.TopConstructors) == 0
}
