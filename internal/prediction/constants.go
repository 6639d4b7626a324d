package prediction

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgSubmitPredictionCalled       = "SubmitPrediction called"
	LogMsgSubmitBonusPredictionCalled  = "SubmitBonusPrediction called"
	LogMsgSubmitSeasonPredictionCalled = "SubmitSeasonPrediction called"
)

// ============================================================================
// Error Messages (local to prediction service)
// ============================================================================

const (
	ErrContextFailedToGetRace          = "failed to get race"
	ErrContextFailedToListRaces        = "failed to list races"
	ErrContextFailedToGetProfile       = "failed to get profile"
	ErrContextFailedToSavePrediction   = "failed to save prediction"
	ErrContextFailedToGetPrediction    = "failed to get prediction"
	ErrContextFailedToListPredictions  = "failed to list predictions"
)
