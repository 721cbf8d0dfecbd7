package config

import "time"

// External-call timeouts. Both collaborators have a bounded timeout so a
// single bet never blocks on the model or the reserve signal.
const (
	DefaultScorerTimeout  = 500 * time.Millisecond
	DefaultPaylinkTimeout = 2 * time.Second
)

// Database pool defaults
const (
	DefaultMaxConns        = 10
	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = 30 * time.Minute
)
