package profile

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgRegisterCalled     = "Register called"
	LogMsgProfileCreated     = "Profile created"
	LogMsgStandingsCalled    = "Standings called"
	LogMsgStandingsCacheHit  = "Serving standings from cache"
	LogMsgStandingsRefreshed = "Standings cache refreshed"
)

// ============================================================================
// Error Contexts
// ============================================================================

const (
	ErrContextFailedToGetProfile    = "failed to get profile"
	ErrContextFailedToCreateProfile = "failed to create profile"
	ErrContextFailedToListStandings = "failed to list standings"
)

// StartingCoins is the balance every new profile opens with.
const StartingCoins = 500
