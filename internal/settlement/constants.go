package settlement

import "time"

const (
	// DefaultMaxAttempts bounds the retry loop for transient store
	// conflicts (serialization failures, deadlocks).
	DefaultMaxAttempts = 3

	// RetryBackoff is the pause between settlement attempts.
	RetryBackoff = 25 * time.Millisecond
)

// Log message constants
const (
	LogMsgSettlementConflict = "Settlement conflict, retrying"
	LogMsgSettlementReplay   = "Duplicate attempt id, settlement already applied"
	LogMsgRetriesExhausted   = "Settlement retries exhausted"
)
