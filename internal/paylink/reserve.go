package paylink

import "context"

// ReserveSignal adapts the provider's usable balance to the win-rate
// adjuster's reserve input.
type ReserveSignal struct {
	client Client
}

// NewReserveSignal wraps a provider client. A nil client returns nil so
// the adjuster falls back to its neutral reserve.
func NewReserveSignal(client Client) *ReserveSignal {
	if client == nil {
		return nil
	}
	return &ReserveSignal{client: client}
}

func (r *ReserveSignal) Reserve(ctx context.Context) (int64, error) {
	return r.client.UsableBalance(ctx)
}
