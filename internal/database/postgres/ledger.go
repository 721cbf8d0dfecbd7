package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pncplay/casino-bot/internal/domain"
	"github.com/pncplay/casino-bot/internal/repository"
)

// LedgerRepository implements the ledger repository for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// GetAccount retrieves an account by user id
func (r *LedgerRepository) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	query := `
		SELECT user_id, username, external_id, balance, created_at, updated_at
		FROM accounts
		WHERE user_id = $1
	`

	var acct domain.Account
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&acct.UserID,
		&acct.Username,
		&acct.ExternalID,
		&acct.Balance,
		&acct.CreatedAt,
		&acct.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &acct, nil
}

// CreateAccount inserts a new account
func (r *LedgerRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (user_id, username, external_id, balance)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, account.UserID, account.Username, account.ExternalID, account.Balance)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return domain.ErrAccountExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetStreak retrieves the streak pair for a (user, game). A missing row
// means a zero streak on both sides.
func (r *LedgerRepository) GetStreak(ctx context.Context, userID string, game domain.GameType) (domain.StreakState, error) {
	query := `
		SELECT win_streak, lose_streak
		FROM streaks
		WHERE user_id = $1 AND game_type = $2
	`

	var streak domain.StreakState
	err := r.db.QueryRow(ctx, query, userID, string(game)).Scan(&streak.WinStreak, &streak.LoseStreak)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.StreakState{}, nil
		}
		return domain.StreakState{}, fmt.Errorf("failed to get streak: %w", err)
	}
	return streak, nil
}

// GetBetStats aggregates bet history for one (user, game) pair
func (r *LedgerRepository) GetBetStats(ctx context.Context, userID string, game domain.GameType) (domain.BetStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE won),
		       COALESCE(AVG(amount), 0)
		FROM bet_records
		WHERE user_id = $1 AND game_type = $2
	`

	var stats domain.BetStats
	err := r.db.QueryRow(ctx, query, userID, string(game)).Scan(&stats.TotalBets, &stats.TotalWins, &stats.AvgBet)
	if err != nil {
		return domain.BetStats{}, fmt.Errorf("failed to get bet stats: %w", err)
	}
	return stats, nil
}

// GetNetProfit sums net amounts of bet transactions for one game since the
// given time. Losing streaks push this negative.
func (r *LedgerRepository) GetNetProfit(ctx context.Context, userID string, game domain.GameType, since time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(net), 0)
		FROM transactions
		WHERE user_id = $1 AND type = $2 AND game_type = $3 AND created_at >= $4
	`

	var net int64
	err := r.db.QueryRow(ctx, query, userID, domain.TxTypeBet, string(game), since).Scan(&net)
	if err != nil {
		return 0, fmt.Errorf("failed to get net profit: %w", err)
	}
	return net, nil
}

// GetRecentTransactions returns the newest transaction records first
func (r *LedgerRepository) GetRecentTransactions(ctx context.Context, userID string, limit int) ([]domain.TransactionRecord, error) {
	query := `
		SELECT id, user_id, type, COALESCE(game_type, ''), amount, fee, net, COALESCE(counterpart, ''), created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var records []domain.TransactionRecord
	for rows.Next() {
		var rec domain.TransactionRecord
		var game string
		err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Type,
			&game,
			&rec.Amount,
			&rec.Fee,
			&rec.Net,
			&rec.Counterpart,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		rec.Game = domain.GameType(game)
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return records, nil
}

// BeginSettlementTx starts the transaction used for all ledger mutations
func (r *LedgerRepository) BeginSettlementTx(ctx context.Context) (repository.SettlementTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &settlementTx{tx: tx}, nil
}
