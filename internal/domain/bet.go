package domain

import (
	"time"

	"github.com/google/uuid"
)

// GameType identifies a casino game.
type GameType string

const (
	GameGamble   GameType = "gamble"
	GameRoulette GameType = "roulette"
)

// Transaction types recorded in the ledger history.
const (
	TxTypeBet      = "bet"
	TxTypePayout   = "payout"
	TxTypeTransfer = "transfer"
)

// BetRecord is an append-only record of a resolved bet. Never mutated;
// only read back as a feature source for win-rate adjustment.
type BetRecord struct {
	ID        int64     `json:"id"`
	AttemptID uuid.UUID `json:"attempt_id"`
	UserID    string    `json:"user_id"`
	Game      GameType  `json:"game"`
	Amount    int64     `json:"amount"`
	Won       bool      `json:"won"`
	CreatedAt time.Time `json:"created_at"`
}

// TransactionRecord is an append-only balance-history entry. Game is set
// for bet transactions only and drives per-game net-profit aggregation;
// Counterpart is set for transfers.
type TransactionRecord struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Game        GameType  `json:"game,omitempty"`
	Amount      int64     `json:"amount"`
	Fee         int64     `json:"fee"`
	Net         int64     `json:"net"`
	Counterpart string    `json:"counterpart,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// BetResult is returned to the caller after a bet settles.
type BetResult struct {
	AttemptID   uuid.UUID `json:"attempt_id"`
	Game        GameType  `json:"game"`
	Variant     string    `json:"variant"`
	Amount      int64     `json:"amount"`
	Won         bool      `json:"won"`
	Payout      int64     `json:"payout"`
	NewBalance  int64     `json:"new_balance"`
	DisplayFace string    `json:"display_face,omitempty"`
}

// PayoutResult describes a completed cash-out.
type PayoutResult struct {
	LinkURL    string `json:"link_url"`
	OrderID    string `json:"order_id"`
	AmountJPY  int64  `json:"amount_jpy"`
	AmountPNC  int64  `json:"amount_pnc"`
	Fee        int64  `json:"fee"`
	TotalPNC   int64  `json:"total_pnc"`
	NewBalance int64  `json:"new_balance"`
}
