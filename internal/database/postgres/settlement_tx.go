package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pncplay/casino-bot/internal/domain"
)

// settlementTx implements repository.SettlementTx on a pgx transaction.
type settlementTx struct {
	tx pgx.Tx
}

// GetAccountForUpdate reads the account row with FOR UPDATE so concurrent
// settlements for the same user queue at the row lock.
func (t *settlementTx) GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error) {
	query := `
		SELECT user_id, username, external_id, balance, created_at, updated_at
		FROM accounts
		WHERE user_id = $1
		FOR UPDATE
	`

	var acct domain.Account
	err := t.tx.QueryRow(ctx, query, userID).Scan(
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
		return nil, mapConflict("failed to lock account", err)
	}
	return &acct, nil
}

// SetBalance writes the new balance for a locked account row
func (t *settlementTx) SetBalance(ctx context.Context, userID string, balance int64) error {
	query := `
		UPDATE accounts
		SET balance = $2, updated_at = NOW()
		WHERE user_id = $1
	`

	tag, err := t.tx.Exec(ctx, query, userID, balance)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeCheckViolation {
			return domain.ErrInsufficientFunds
		}
		return mapConflict("failed to set balance", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// ApplyStreak applies the reset-on-loss streak scheme in one statement
func (t *settlementTx) ApplyStreak(ctx context.Context, userID string, game domain.GameType, won bool) error {
	query := `
		INSERT INTO streaks (user_id, game_type, win_streak, lose_streak)
		VALUES ($1, $2, CASE WHEN $3 THEN 1 ELSE 0 END, CASE WHEN $3 THEN 0 ELSE 1 END)
		ON CONFLICT (user_id, game_type) DO UPDATE
		SET win_streak  = CASE WHEN $3 THEN streaks.win_streak + 1 ELSE 0 END,
		    lose_streak = CASE WHEN $3 THEN 0 ELSE streaks.lose_streak + 1 END,
		    updated_at  = NOW()
	`

	if _, err := t.tx.Exec(ctx, query, userID, string(game), won); err != nil {
		return mapConflict("failed to apply streak", err)
	}
	return nil
}

// InsertBetRecord appends a bet record. A duplicate attempt id is reported
// as (false, nil) so the caller can treat the settlement as already applied.
func (t *settlementTx) InsertBetRecord(ctx context.Context, attemptID uuid.UUID, userID string, game domain.GameType, amount int64, won bool) (bool, error) {
	query := `
		INSERT INTO bet_records (attempt_id, user_id, game_type, amount, won)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (attempt_id) DO NOTHING
	`

	tag, err := t.tx.Exec(ctx, query, attemptID, userID, string(game), amount, won)
	if err != nil {
		return false, mapConflict("failed to insert bet record", err)
	}
	return tag.RowsAffected() > 0, nil
}

// InsertTransaction appends a transaction history record
func (t *settlementTx) InsertTransaction(ctx context.Context, rec *domain.TransactionRecord) error {
	query := `
		INSERT INTO transactions (user_id, type, game_type, amount, fee, net, counterpart)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''))
	`

	_, err := t.tx.Exec(ctx, query,
		rec.UserID,
		rec.Type,
		string(rec.Game),
		rec.Amount,
		rec.Fee,
		rec.Net,
		rec.Counterpart,
	)
	if err != nil {
		return mapConflict("failed to insert transaction", err)
	}
	return nil
}

// Commit commits the transaction
func (t *settlementTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *settlementTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// mapConflict translates serialization and deadlock failures into the
// retryable domain error; everything else keeps its context.
func mapConflict(context string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
			return fmt.Errorf("%s: %w", context, domain.ErrSettlementConflict)
		}
	}
	return fmt.Errorf("%s: %w", context, err)
}
