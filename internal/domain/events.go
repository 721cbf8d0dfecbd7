package domain

// EventType identifies an event published on the in-process bus.
type EventType string

const (
	EventBetSettled        EventType = "bet.settled"
	EventTransferCompleted EventType = "transfer.completed"
	EventPayoutCreated     EventType = "payout.created"
)

// BetSettledPayloadV1 is the typed payload for bet.settled events.
type BetSettledPayloadV1 struct {
	UserID      string   `json:"user_id"`
	Game        GameType `json:"game"`
	Variant     string   `json:"variant"`
	Amount      int64    `json:"amount"`
	Won         bool     `json:"won"`
	Payout      int64    `json:"payout"`
	Probability float64  `json:"probability"`
}

// TransferCompletedPayloadV1 is the typed payload for transfer.completed events.
type TransferCompletedPayloadV1 struct {
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Amount      int64  `json:"amount"`
	Fee         int64  `json:"fee"`
}

// PayoutCreatedPayloadV1 is the typed payload for payout.created events.
type PayoutCreatedPayloadV1 struct {
	UserID    string `json:"user_id"`
	AmountJPY int64  `json:"amount_jpy"`
	AmountPNC int64  `json:"amount_pnc"`
	Fee       int64  `json:"fee"`
	OrderID   string `json:"order_id"`
}
