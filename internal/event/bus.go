package event

import (
	"context"
	"sync"

	"github.com/pncplay/casino-bot/internal/domain"
	"github.com/pncplay/casino-bot/internal/logger"
)

// bus is a synchronous in-memory Bus. Handler errors are logged, not
// propagated; publishing must never fail a settlement.
type bus struct {
	mu       sync.RWMutex
	handlers map[domain.EventType][]Handler
}

// NewBus creates a new in-memory event bus
func NewBus() Bus {
	return &bus{
		handlers: make(map[domain.EventType][]Handler),
	}
}

// Subscribe registers a handler for an event type
func (b *bus) Subscribe(eventType domain.EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish delivers the event to all subscribed handlers
func (b *bus) Publish(ctx context.Context, evt Event) error {
	b.mu.RLock()
	handlers := b.handlers[evt.Type]
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgHandlerFailed, "type", evt.Type, "error", err)
		}
	}
	return nil
}
