package scorer

import "time"

const (
	// ScorePath is the model's prediction endpoint.
	ScorePath = "/v1/score"

	DefaultTimeout = 500 * time.Millisecond

	DefaultCacheSize = 1024
	DefaultCacheTTL  = 5 * time.Minute
)
