package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/pncplay/casino-bot/internal/domain"
)

// SettlementTx is the single mutation path for accounts, streaks and
// history records. All operations run inside one database transaction so
// a settlement either applies completely or not at all.
type SettlementTx interface {
	// GetAccountForUpdate reads the account row with a row-level lock,
	// serializing concurrent settlements for the same user at the store.
	GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error)

	// SetBalance writes the new balance for a locked account row.
	SetBalance(ctx context.Context, userID string, balance int64) error

	// ApplyStreak applies a resolved outcome to the (user, game) streak
	// pair: a win increments win_streak and resets lose_streak, a loss is
	// symmetric.
	ApplyStreak(ctx context.Context, userID string, game domain.GameType, won bool) error

	// InsertBetRecord appends a bet record keyed by attempt id. Returns
	// false without error when the attempt id was already recorded, which
	// makes settlement retries safe no-ops.
	InsertBetRecord(ctx context.Context, attemptID uuid.UUID, userID string, game domain.GameType, amount int64, won bool) (bool, error)

	// InsertTransaction appends a transaction history record.
	InsertTransaction(ctx context.Context, rec *domain.TransactionRecord) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
