package database

import "time"

// Pool configuration
const (
	DefaultMaxConnections = 10
	DefaultMinConnections = 2

	// PingTimeout bounds the startup connectivity check.
	PingTimeout = 5 * time.Second
)

// Error context messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log messages
const (
	LogMsgConnected = "Connected to ledger database"
)
