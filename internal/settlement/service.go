package settlement

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pncplay/casino-bot/internal/concurrency"
	"github.com/pncplay/casino-bot/internal/domain"
	"github.com/pncplay/casino-bot/internal/logger"
	"github.com/pncplay/casino-bot/internal/metrics"
	"github.com/pncplay/casino-bot/internal/repository"
)

// SettleRequest carries one resolved bet into settlement. AttemptID is the
// idempotency key: replaying the same request never moves the balance twice.
type SettleRequest struct {
	AttemptID uuid.UUID
	UserID    string
	Game      domain.GameType
	Amount    int64
	Won       bool
	Payout    int64
}

// Service applies money movements atomically. Every method runs a single
// database transaction under a per-user lock, so partial application is
// impossible.
type Service interface {
	// Settle applies one resolved bet and returns the new balance.
	Settle(ctx context.Context, req SettleRequest) (int64, error)

	// Transfer moves amount from one account to another, charging fee to
	// the sender. Returns the sender's new balance.
	Transfer(ctx context.Context, fromID, toID string, amount, fee int64) (int64, error)

	// Withdraw debits a cash-out (amount plus fee) and returns the new
	// balance.
	Withdraw(ctx context.Context, userID string, amount, fee int64) (int64, error)
}

type service struct {
	repo        repository.Ledger
	locks       *concurrency.LockManager
	maxAttempts int
	backoff     time.Duration
}

// NewService creates a settlement service.
func NewService(repo repository.Ledger, locks *concurrency.LockManager) Service {
	return &service{
		repo:        repo,
		locks:       locks,
		maxAttempts: DefaultMaxAttempts,
		backoff:     RetryBackoff,
	}
}

func (s *service) Settle(ctx context.Context, req SettleRequest) (int64, error) {
	var balance int64
	err := s.locks.WithLock(req.UserID, func() error {
		var err error
		balance, err = s.withRetry(ctx, func() (int64, error) {
			return s.settleOnce(ctx, req)
		})
		return err
	})
	return balance, err
}

func (s *service) settleOnce(ctx context.Context, req SettleRequest) (int64, error) {
	tx, err := s.repo.BeginSettlementTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin settlement tx: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	account, err := tx.GetAccountForUpdate(ctx, req.UserID)
	if err != nil {
		return 0, err
	}

	inserted, err := tx.InsertBetRecord(ctx, req.AttemptID, req.UserID, req.Game, req.Amount, req.Won)
	if err != nil {
		return 0, err
	}
	if !inserted {
		// Already applied by an earlier attempt; report the current
		// balance and change nothing.
		metrics.SettlementReplays.Inc()
		logger.FromContext(ctx).Info(LogMsgSettlementReplay,
			"attempt_id", req.AttemptID,
			"user_id", req.UserID)
		return account.Balance, nil
	}

	if account.Balance < req.Amount {
		return 0, fmt.Errorf("balance %d, bet %d: %w", account.Balance, req.Amount, domain.ErrInsufficientFunds)
	}

	newBalance := account.Balance - req.Amount + req.Payout
	if err := tx.SetBalance(ctx, req.UserID, newBalance); err != nil {
		return 0, err
	}
	if err := tx.ApplyStreak(ctx, req.UserID, req.Game, req.Won); err != nil {
		return 0, err
	}

	if err := tx.InsertTransaction(ctx, &domain.TransactionRecord{
		UserID: req.UserID,
		Type:   domain.TxTypeBet,
		Game:   req.Game,
		Amount: req.Amount,
		Net:    req.Payout - req.Amount,
	}); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit settlement: %w", err)
	}
	return newBalance, nil
}

func (s *service) Transfer(ctx context.Context, fromID, toID string, amount, fee int64) (int64, error) {
	var balance int64
	err := s.locks.WithLocks([]string{fromID, toID}, func() error {
		var err error
		balance, err = s.withRetry(ctx, func() (int64, error) {
			return s.transferOnce(ctx, fromID, toID, amount, fee)
		})
		return err
	})
	return balance, err
}

func (s *service) transferOnce(ctx context.Context, fromID, toID string, amount, fee int64) (int64, error) {
	tx, err := s.repo.BeginSettlementTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin settlement tx: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Lock rows in sorted order so opposing transfers between the same
	// pair cannot deadlock at the store.
	accounts := make(map[string]*domain.Account, 2)
	ids := []string{fromID, toID}
	sort.Strings(ids)
	for _, id := range ids {
		account, err := tx.GetAccountForUpdate(ctx, id)
		if err != nil {
			return 0, err
		}
		accounts[id] = account
	}

	total := amount + fee
	if accounts[fromID].Balance < total {
		return 0, fmt.Errorf("balance %d, transfer %d: %w", accounts[fromID].Balance, total, domain.ErrInsufficientFunds)
	}

	newFromBalance := accounts[fromID].Balance - total
	if err := tx.SetBalance(ctx, fromID, newFromBalance); err != nil {
		return 0, err
	}
	if err := tx.SetBalance(ctx, toID, accounts[toID].Balance+amount); err != nil {
		return 0, err
	}

	if err := tx.InsertTransaction(ctx, &domain.TransactionRecord{
		UserID:      fromID,
		Type:        domain.TxTypeTransfer,
		Amount:      amount,
		Fee:         fee,
		Net:         -total,
		Counterpart: toID,
	}); err != nil {
		return 0, err
	}
	if err := tx.InsertTransaction(ctx, &domain.TransactionRecord{
		UserID:      toID,
		Type:        domain.TxTypeTransfer,
		Amount:      amount,
		Net:         amount,
		Counterpart: fromID,
	}); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transfer: %w", err)
	}
	return newFromBalance, nil
}

func (s *service) Withdraw(ctx context.Context, userID string, amount, fee int64) (int64, error) {
	var balance int64
	err := s.locks.WithLock(userID, func() error {
		var err error
		balance, err = s.withRetry(ctx, func() (int64, error) {
			return s.withdrawOnce(ctx, userID, amount, fee)
		})
		return err
	})
	return balance, err
}

func (s *service) withdrawOnce(ctx context.Context, userID string, amount, fee int64) (int64, error) {
	tx, err := s.repo.BeginSettlementTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin settlement tx: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	account, err := tx.GetAccountForUpdate(ctx, userID)
	if err != nil {
		return 0, err
	}

	total := amount + fee
	if account.Balance < total {
		return 0, fmt.Errorf("balance %d, withdrawal %d: %w", account.Balance, total, domain.ErrInsufficientFunds)
	}

	newBalance := account.Balance - total
	if err := tx.SetBalance(ctx, userID, newBalance); err != nil {
		return 0, err
	}

	if err := tx.InsertTransaction(ctx, &domain.TransactionRecord{
		UserID: userID,
		Type:   domain.TxTypePayout,
		Amount: amount,
		Fee:    fee,
		Net:    -total,
	}); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit withdrawal: %w", err)
	}
	return newBalance, nil
}

// withRetry runs fn, retrying on store conflicts up to the attempt bound.
func (s *service) withRetry(ctx context.Context, fn func() (int64, error)) (int64, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		balance, err := fn()
		if err == nil {
			return balance, nil
		}
		if !errors.Is(err, domain.ErrSettlementConflict) {
			return 0, err
		}

		lastErr = err
		metrics.SettlementRetries.Inc()
		log.Warn(LogMsgSettlementConflict, "attempt", attempt, "error", err)

		if attempt < s.maxAttempts {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(s.backoff):
			}
		}
	}

	log.Error(LogMsgRetriesExhausted, "attempts", s.maxAttempts, "error", lastErr)
	return 0, fmt.Errorf("%s after %d attempts: %w", domain.ErrMsgRetriesExhausted, s.maxAttempts, domain.ErrRetriesExhausted)
}
