package settlement

// ============================================================================
// Log Messages
// ============================================================================

// Log operation identifiers
const (
	LogMsgSettleRoundCalled  = "SettleRound called"
	LogMsgSettleBetsCalled   = "SettleBets called"
	LogMsgSettleSeasonCalled = "SettleSeason called"
	LogMsgRecomputeCalled    = "RecomputeAggregates called"
)

// Warning/Info messages
const (
	LogMsgNoResultYet           = "No official result yet, skipping session"
	LogMsgRoundSettled          = "Round settled"
	LogMsgBetsSettled           = "Bets settled"
	LogMsgStatusUpdateFailed    = "Failed to update race status, continuing"
	LogMsgStandingsUnavailable  = "Constructor standings unavailable, underdog bets stay pending"
	LogMsgRoundFailed           = "Round settlement failed, continuing with next round"
	LogMsgUserRecomputeFailed   = "Aggregate recompute failed for user, continuing with next user"
	LogMsgBetAlreadyClaimed     = "Bet already claimed by another settlement run"
	LogMsgBetPredicateFailed    = "Bet predicate failed, leaving bet pending"
	LogMsgPredictionScoreFailed = "Failed to persist prediction points, continuing"
)

// ============================================================================
// Error Messages (local to settlement service)
// ============================================================================

// Error context messages for wrapped errors
const (
	ErrContextFailedToFetchResult     = "failed to fetch official result"
	ErrContextFailedToFetchStandings  = "failed to fetch championship standings"
	ErrContextFailedToGetRace         = "failed to get race"
	ErrContextFailedToListRaces       = "failed to list races"
	ErrContextFailedToListPredictions = "failed to list predictions"
	ErrContextFailedToListBets        = "failed to list pending bets"
	ErrContextFailedToListProfiles    = "failed to list profiles"
	ErrContextFailedToSumPoints       = "failed to sum prediction points"
	ErrContextFailedToUpdatePoints    = "failed to update prediction points"
	ErrContextFailedToUpdateTotal     = "failed to update profile total"
	ErrContextFailedToCreditCoins     = "failed to credit coins"
	ErrContextFailedToSettleBet       = "failed to settle bet"
	ErrContextFailedToMarkFinished    = "failed to mark race finished"
)

// ErrMsgDispatchTableIncomplete is returned when the bet predicate table does
// not cover every known bet type.
const ErrMsgDispatchTableIncomplete = "bet dispatch table does not cover all bet types"
