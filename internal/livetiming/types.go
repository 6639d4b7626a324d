package livetiming

import "time"

// PositionPayload is one row of the live-timing position feed. The feed is
// append-only: a driver appears once per position change, so the latest row
// per driver is the current running order.
type PositionPayload struct {
	SessionKey   int       `json:"session_key"`
	MeetingKey   int       `json:"meeting_key"`
	DriverNumber int       `json:"driver_number"`
	Position     int       `json:"position"`
	Date         time.Time `json:"date"`
}

// SessionPayload identifies a live-timing session.
type SessionPayload struct {
	SessionKey  int       `json:"session_key"`
	MeetingKey  int       `json:"meeting_key"`
	SessionName string    `json:"session_name"`
	SessionType string    `json:"session_type"`
	DateStart   time.Time `json:"date_start"`
	DateEnd     time.Time `json:"date_end"`
	Year        int       `json:"year"`
}
