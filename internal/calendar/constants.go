package calendar

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgSyncSeasonCalled = "SyncSeason called"
	LogMsgSeasonSynced     = "Season calendar synced"
	LogMsgRaceSkipped      = "Skipping malformed calendar entry"
	LogMsgNextRaceCalled   = "NextRace called"
)

// ============================================================================
// Error Contexts
// ============================================================================

const (
	ErrContextFailedToFetchSchedule = "failed to fetch season schedule"
	ErrContextFailedToUpsertRace    = "failed to upsert race"
	ErrContextFailedToListRaces     = "failed to list races"
)
