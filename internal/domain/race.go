package domain

import "time"

// SessionType identifies which event of a race weekend a prediction targets.
type SessionType string

const (
	SessionQualifying SessionType = "qualifying"
	SessionSprint     SessionType = "sprint"
	SessionRace       SessionType = "race"
)

// Valid reports whether the session type is one of the known values.
func (s SessionType) Valid() bool {
	switch s {
	case SessionQualifying, SessionSprint, SessionRace:
		return true
	}
	return false
}

// RaceStatus is advisory lifecycle state, written by settlement.
type RaceStatus string

const (
	RaceStatusUpcoming   RaceStatus = "upcoming"
	RaceStatusQualifying RaceStatus = "qualifying"
	RaceStatusRacing     RaceStatus = "racing"
	RaceStatusFinished   RaceStatus = "finished"
)

// Race describes one event of the calendar.
type Race struct {
	ID        int        `json:"id"`
	Season    int        `json:"season"`
	Round     int        `json:"round"`
	Name      string     `json:"name"`
	Date      time.Time  `json:"date"`
	HasSprint bool       `json:"has_sprint"`
	Status    RaceStatus `json:"status"`
}

// Sessions returns the session types that exist for this race.
func (r Race) Sessions() []SessionType {
	sessions := []SessionType{SessionQualifying, SessionRace}
	if r.HasSprint {
		sessions = append(sessions, SessionSprint)
	}
	return sessions
}
