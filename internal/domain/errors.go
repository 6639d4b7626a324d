package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgUserNotFound       = "user not found"
	ErrMsgRaceNotFound       = "race not found"
	ErrMsgPredictionNotFound = "prediction not found"
	ErrMsgBetNotFound        = "bet not found"

	ErrMsgPredictionsLocked = "predictions are locked for this session"
	ErrMsgSeasonLocked      = "season predictions are locked"
	ErrMsgDuplicateDriver   = "the same driver cannot fill more than one slot"
	ErrMsgMissingSlot       = "a required slot is missing"
	ErrMsgUnknownDriver     = "unknown driver"

	ErrMsgInsufficientCoins = "insufficient coins"
	ErrMsgInvalidStake      = "stake must be positive"
	ErrMsgUnknownBetType    = "unknown bet type"
	ErrMsgBetAlreadySettled = "bet already settled"

	ErrMsgResultUnavailable = "official result not available"
	ErrMsgInvalidSession    = "invalid session type"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrRaceNotFound       = errors.New(ErrMsgRaceNotFound)
	ErrPredictionNotFound = errors.New(ErrMsgPredictionNotFound)
	ErrBetNotFound        = errors.New(ErrMsgBetNotFound)

	ErrPredictionsLocked = errors.New(ErrMsgPredictionsLocked)
	ErrSeasonLocked      = errors.New(ErrMsgSeasonLocked)
	ErrDuplicateDriver   = errors.New(ErrMsgDuplicateDriver)
	ErrMissingSlot       = errors.New(ErrMsgMissingSlot)
	ErrUnknownDriver     = errors.New(ErrMsgUnknownDriver)

	ErrInsufficientCoins = errors.New(ErrMsgInsufficientCoins)
	ErrInvalidStake      = errors.New(ErrMsgInvalidStake)
	ErrUnknownBetType    = errors.New(ErrMsgUnknownBetType)
	ErrBetAlreadySettled = errors.New(ErrMsgBetAlreadySettled)

	ErrResultUnavailable = errors.New(ErrMsgResultUnavailable)
	ErrInvalidSession    = errors.New(ErrMsgInvalidSession)
)
