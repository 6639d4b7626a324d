package domain

import "time"

// Profile aggregates a user's standing. TotalPoints is a cache of the sum of
// points_earned across all of the user's predictions; settlement recomputes it
// rather than incrementing it. Coins only ever grow from recompute, so
// retroactive result corrections never claw back currency already granted.
type Profile struct {
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	TotalPoints int       `json:"total_points"`
	Coins       int64     `json:"coins"`
	Rank        int       `json:"rank,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CoinsPerPoint is the conversion rate applied to newly earned points.
const CoinsPerPoint = 10
