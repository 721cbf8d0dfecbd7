package server

import "time"

const (
	ReadHeaderTimeout = 5 * time.Second
	ReadyzTimeout     = 2 * time.Second

	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Log message constants
const (
	LogMsgRequestHandled = "Request handled"
	LogMsgReadyzFailed   = "Readiness check failed"
)
