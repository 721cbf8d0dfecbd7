package winrate

import "time"

// Default timeouts for the optional collaborators
const (
	DefaultScorerTimeout  = 500 * time.Millisecond
	DefaultReserveTimeout = 2 * time.Second
)

// Log messages
const (
	LogMsgScorerUnavailable  = "Scorer unavailable, using arithmetic baseline"
	LogMsgScorerOutOfRange   = "Scorer prediction out of range, using arithmetic baseline"
	LogMsgReserveUnavailable = "Reserve signal unavailable, using fallback reserve"
)
