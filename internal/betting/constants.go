package betting

// ============================================================================
// Stake limits
// ============================================================================

// MaxStake caps a single wager so one bad bet cannot drain a balance in an
// unintended way through a fat-fingered amount.
const MaxStake int64 = 10000

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPlaceBetCalled = "PlaceBet called"
	LogMsgBetPlaced      = "Bet placed"
)

// ============================================================================
// Error Messages (local to betting service)
// ============================================================================

const (
	ErrContextFailedToGetRace    = "failed to get race"
	ErrContextFailedToGetProfile = "failed to get profile"
	ErrContextFailedToDebitStake = "failed to debit stake"
	ErrContextFailedToCreateBet  = "failed to create bet"
	ErrContextFailedToRefund     = "failed to refund stake after bet creation failure"
	ErrContextFailedToGetBet     = "failed to get bet"
	ErrContextFailedToListBets   = "failed to list bets"
)
