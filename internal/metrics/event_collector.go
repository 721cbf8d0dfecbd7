package metrics

import (
	"context"

	"github.com/pncplay/casino-bot/internal/domain"
	"github.com/pncplay/casino-bot/internal/event"
	"github.com/pncplay/casino-bot/internal/logger"
)

// EventCollector subscribes to settlement events and records metrics
type EventCollector struct{}

// NewEventCollector creates a new event metrics collector
func NewEventCollector() *EventCollector {
	return &EventCollector{}
}

// Register subscribes to all events the collector cares about
func (c *EventCollector) Register(bus event.Bus) {
	bus.Subscribe(domain.EventBetSettled, c.handleBetSettled)
	bus.Subscribe(domain.EventTransferCompleted, c.handleTransferCompleted)
	bus.Subscribe(domain.EventPayoutCreated, c.handlePayoutCreated)
}

func (c *EventCollector) handleBetSettled(ctx context.Context, evt event.Event) error {
	payload, ok := evt.Payload.(domain.BetSettledPayloadV1)
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgEventPayloadUnexpected, "type", evt.Type)
		return nil
	}

	result := ResultLoss
	if payload.Won {
		result = ResultWin
	}
	BetsTotal.WithLabelValues(string(payload.Game), result).Inc()
	BetAmountTotal.WithLabelValues(string(payload.Game)).Add(float64(payload.Amount))
	if payload.Won {
		PayoutAmountTotal.WithLabelValues(string(payload.Game)).Add(float64(payload.Payout))
	}
	return nil
}

func (c *EventCollector) handleTransferCompleted(ctx context.Context, evt event.Event) error {
	if _, ok := evt.Payload.(domain.TransferCompletedPayloadV1); !ok {
		logger.FromContext(ctx).Debug(LogMsgEventPayloadUnexpected, "type", evt.Type)
		return nil
	}
	TransfersTotal.Inc()
	return nil
}

func (c *EventCollector) handlePayoutCreated(ctx context.Context, evt event.Event) error {
	if _, ok := evt.Payload.(domain.PayoutCreatedPayloadV1); !ok {
		logger.FromContext(ctx).Debug(LogMsgEventPayloadUnexpected, "type", evt.Type)
		return nil
	}
	PayoutsTotal.Inc()
	return nil
}
