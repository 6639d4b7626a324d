package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidIntParam   = "Invalid %s parameter"

	// Prediction operation error messages
	ErrMsgSubmitPredictionFailed = "Failed to submit prediction"
	ErrMsgGetPredictionFailed    = "Failed to get prediction"
	ErrMsgListPredictionsFailed  = "Failed to list predictions"

	// Bet operation error messages
	ErrMsgPlaceBetFailed  = "Failed to place bet"
	ErrMsgGetBetFailed    = "Failed to get bet"
	ErrMsgListBetsFailed  = "Failed to list bets"
	ErrMsgInvalidBetID    = "Invalid bet ID"
	ErrMsgBetNotFoundHTTP = "Bet not found"

	// Settlement operation error messages
	ErrMsgSettleRoundFailed      = "Failed to settle round"
	ErrMsgSettleBetsFailed       = "Failed to settle bets"
	ErrMsgSettleSeasonFailed     = "Failed to settle season"
	ErrMsgRecomputeFailed        = "Failed to recompute aggregates"
	ErrMsgSettlementModeRequired = "One of round, all or auto is required"

	// Calendar operation error messages
	ErrMsgSyncCalendarFailed = "Failed to sync calendar"
	ErrMsgGetRaceFailed      = "Failed to get race"
	ErrMsgListRacesFailed    = "Failed to list races"
	ErrMsgRaceNotFoundHTTP   = "Race not found"
	ErrMsgNoUpcomingRace     = "No upcoming race"

	// Profile operation error messages
	ErrMsgRegisterFailed      = "Failed to register user"
	ErrMsgGetProfileFailed    = "Failed to get profile"
	ErrMsgGetStandingsFailed  = "Failed to get standings"
	ErrMsgUserNotFoundHTTP    = "user not found"
	ErrMsgMissingRequiredData = "Missing required fields"

	// Live timing error messages
	ErrMsgLiveSnapshotFailed = "Failed to fetch live snapshot"
	ErrMsgProjectionFailed   = "Failed to project points"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgPredictionSavedSuccess = "Prediction saved"
	MsgBonusSavedSuccess      = "Bonus prediction saved"
	MsgSeasonSavedSuccess     = "Season prediction saved"
	MsgBetPlacedSuccess       = "Bet placed"
	MsgCalendarSyncedSuccess  = "Calendar synced successfully"
	MsgAggregatesRecomputed   = "Aggregates recomputed successfully"
)
