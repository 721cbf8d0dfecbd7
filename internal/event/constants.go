package event

// SchemaVersion is the current event payload schema version
const SchemaVersion = "1.0"

// Log messages
const (
	LogMsgHandlerFailed = "Event handler failed"
)
