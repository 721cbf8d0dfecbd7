package repository

import (
	"context"
	"time"

	"github.com/pncplay/casino-bot/internal/domain"
)

// Ledger defines the data access required by the bet, settlement and
// economy services. Reads are plain pool queries; every balance, streak
// or history mutation goes through a SettlementTx.
type Ledger interface {
	// Account reads
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
	CreateAccount(ctx context.Context, account *domain.Account) error

	// Feature reads for win-rate adjustment
	GetStreak(ctx context.Context, userID string, game domain.GameType) (domain.StreakState, error)
	GetBetStats(ctx context.Context, userID string, game domain.GameType) (domain.BetStats, error)
	GetNetProfit(ctx context.Context, userID string, game domain.GameType, since time.Time) (int64, error)

	// History reads
	GetRecentTransactions(ctx context.Context, userID string, limit int) ([]domain.TransactionRecord, error)

	// Transaction support
	BeginSettlementTx(ctx context.Context) (SettlementTx, error)
}
