package domain

import "time"

// Prediction is a user's podium guess for one (race, session) pair. At most
// one row exists per (user, race, session); settlement overwrites
// PointsEarned on every pass, it never creates or deletes predictions.
type Prediction struct {
	ID           int         `json:"id"`
	UserID       string      `json:"user_id"`
	RaceID       int         `json:"race_id"`
	SessionType  SessionType `json:"session_type"`
	Pole         DriverID    `json:"pole,omitempty"`
	P1           DriverID    `json:"p1,omitempty"`
	P2           DriverID    `json:"p2,omitempty"`
	P3           DriverID    `json:"p3,omitempty"`
	FastestLap   DriverID    `json:"fastest_lap,omitempty"`
	PointsEarned int         `json:"points_earned"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// PodiumGuess returns the guessed top-3 slots in order.
func (p Prediction) PodiumGuess() [3]DriverID {
	return [3]DriverID{p.P1, p.P2, p.P3}
}

// DNFBucket buckets the total number of retirements in a race.
type DNFBucket string

const (
	DNFBucketNone DNFBucket = ""
	DNFBucketLow  DNFBucket = "0-2"
	DNFBucketMid  DNFBucket = "3-5"
	DNFBucketHigh DNFBucket = "6+"
)

// BucketForDNFCount maps a retirement count onto its bucket.
func BucketForDNFCount(n int) DNFBucket {
	switch {
	case n <= 2:
		return DNFBucketLow
	case n <= 5:
		return DNFBucketMid
	default:
		return DNFBucketHigh
	}
}

// BonusPrediction holds the independent side guesses for one (user, race).
// Boolean guesses use pointers so "not answered" is distinguishable from "no".
type BonusPrediction struct {
	ID            int       `json:"id"`
	UserID        string    `json:"user_id"`
	RaceID        int       `json:"race_id"`
	SafetyCar     *bool     `json:"safety_car,omitempty"`
	RedFlag       *bool     `json:"red_flag,omitempty"`
	Rain          *bool     `json:"rain,omitempty"`
	FirstDNF      DriverID  `json:"first_dnf,omitempty"`
	DriverOfDay   DriverID  `json:"driver_of_day,omitempty"`
	MostOvertakes DriverID  `json:"most_overtakes,omitempty"`
	DNFCount      DNFBucket `json:"dnf_count,omitempty"`
	PointsEarned  int       `json:"points_earned"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BonusFacts is the canonical side of bonus settlement. Nil booleans and
// DriverNone slots mean the fact is unknown for this race; the corresponding
// sub-question then awards nothing.
type BonusFacts struct {
	SafetyCar     *bool
	RedFlag       *bool
	Rain          *bool
	FirstDNF      DriverID
	DriverOfDay   DriverID
	MostOvertakes DriverID
	DNFCount      *int
}

// SeasonPrediction holds championship guesses for one (user, season). It
// becomes immutable once the season's first race date has passed.
type SeasonPrediction struct {
	ID              int           `json:"id"`
	UserID          string        `json:"user_id"`
	Season          int           `json:"season"`
	DriverP1        DriverID      `json:"driver_p1,omitempty"`
	DriverP2        DriverID      `json:"driver_p2,omitempty"`
	DriverP3        DriverID      `json:"driver_p3,omitempty"`
	ConstructorP1   ConstructorID `json:"constructor_p1,omitempty"`
	ConstructorP2   ConstructorID `json:"constructor_p2,omitempty"`
	ConstructorP3   ConstructorID `json:"constructor_p3,omitempty"`
	MostWinsDriver  DriverID      `json:"most_wins_driver,omitempty"`
	MostPolesDriver DriverID      `json:"most_poles_driver,omitempty"`
	MostDNFsDriver  DriverID      `json:"most_dnfs_driver,omitempty"`
	PointsEarned    int           `json:"points_earned"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// DriverGuesses returns the guessed championship top-3 in order.
func (p SeasonPrediction) DriverGuesses() [3]DriverID {
	return [3]DriverID{p.DriverP1, p.DriverP2, p.DriverP3}
}

// ConstructorGuesses returns the guessed constructor top-3 in order.
func (p SeasonPrediction) ConstructorGuesses() [3]ConstructorID {
	return [3]ConstructorID{p.ConstructorP1, p.ConstructorP2, p.ConstructorP3}
}
