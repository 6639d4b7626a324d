package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Settlement Worker
// ============================================================================

// Log messages for settlement worker operations
const (
	LogMsgSettlementSweepStarting  = "Settlement sweep starting"
	LogMsgSettlementSweepCompleted = "Settlement sweep completed"
	LogMsgSettlementRoundFailed    = "Settlement sweep round failed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
