package event

import (
	"context"

	"github.com/pncplay/casino-bot/internal/domain"
)

// Event represents a generic event in the system
type Event struct {
	Version string           `json:"version"` // Event schema version (e.g., "1.0")
	Type    domain.EventType `json:"type"`
	Payload interface{}      `json:"payload"`
}

// Handler processes a published event
type Handler func(ctx context.Context, evt Event) error

// Bus is the in-process publish/subscribe boundary
type Bus interface {
	Publish(ctx context.Context, evt Event) error
	Subscribe(eventType domain.EventType, handler Handler)
}
