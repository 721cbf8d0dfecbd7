package settlement

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pncplay/casino-bot/internal/concurrency"
	"github.com/pncplay/casino-bot/internal/domain"
	"github.com/pncplay/casino-bot/internal/repository"
)

func newTestService(repo *MockLedger) *service {
	return &service{
		repo:        repo,
		locks:       concurrency.NewLockManager(),
		maxAttempts: DefaultMaxAttempts,
		backoff:     time.Millisecond,
	}
}

func TestSettle(t *testing.T) {
	ctx := context.Background()

	req := SettleRequest{
		AttemptID: uuid.New(),
		UserID:    "user-1",
		Game:      domain.GameRoulette,
		Amount:    500,
		Won:       true,
		Payout:    1000,
	}

	t.Run("Win credits payout minus stake", func(t *testing.T) {
		repo := new(MockLedger)
		tx := new(MockSettlementTx)

		repo.On("BeginSettlementTx", mock.Anything).Return(tx, nil)
		tx.On("GetAccountForUpdate", mock.Anything, "user-1").Return(&domain.Account{UserID: "user-1", Balance: 2000}, nil)
		tx.On("InsertBetRecord", mock.Anything, req.AttemptID, "user-1", domain.GameRoulette, int64(500), true).Return(true, nil)
		tx.On("SetBalance", mock.Anything, "user-1", int64(2500)).Return(nil)
		tx.On("ApplyStreak", mock.Anything, "user-1", domain.GameRoulette, true).Return(nil)
		tx.On("InsertTransaction", mock.Anything, mock.MatchedBy(func(rec *domain.TransactionRecord) bool {
			return rec.Type == domain.TxTypeBet && rec.Game == domain.GameRoulette && rec.Net == 500
		})).Return(nil)
		tx.On("Commit", mock.Anything).Return(nil)
		tx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed))

		svc := newTestService(repo)
		balance, err := svc.Settle(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, int64(2500), balance)
		tx.AssertExpectations(t)
	})

	t.Run("Loss debits stake only", func(t *testing.T) {
		repo := new(MockLedger)
		tx := new(MockSettlementTx)

		lost := req
		lost.AttemptID = uuid.New()
		lost.Won = false
		lost.Payout = 0

		repo.On("BeginSettlementTx", mock.Anything).Return(tx, nil)
		tx.On("GetAccountForUpdate", mock.Anything, "user-1").Return(&domain.Account{UserID: "user-1", Balance: 2000}, nil)
		tx.On("InsertBetRecord", mock.Anything, lost.AttemptID, "user-1", domain.GameRoulette, int64(500), false).Return(true, nil)
		tx.On("SetBalance", mock.Anything, "user-1", int64(1500)).Return(nil)
		tx.On("ApplyStreak", mock.Anything, "user-1", domain.GameRoulette, false).Return(nil)
		tx.On("InsertTransaction", mock.Anything, mock.MatchedBy(func(rec *domain.TransactionRecord) bool {
			return rec.Net == -500
		})).Return(nil)
		tx.On("Commit", mock.Anything).Return(nil)
		tx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed))

		svc := newTestService(repo)
		balance, err := svc.Settle(ctx, lost)

		assert.NoError(t, err)
		assert.Equal(t, int64(1500), balance)
		tx.AssertExpectations(t)
	})

	t.Run("Insufficient funds rejects before mutation", func(t *testing.T) {
		repo := new(MockLedger)
		tx := new(MockSettlementTx)

		broke := req
		broke.AttemptID = uuid.New()

		repo.On("BeginSettlementTx", mock.Anything).Return(tx, nil)
		tx.On("GetAccountForUpdate", mock.Anything, "user-1").Return(&domain.Account{UserID: "user-1", Balance: 100}, nil)
		tx.On("InsertBetRecord", mock.Anything, broke.AttemptID, "user-1", domain.GameRoulette, int64(500), true).Return(true, nil)
		tx.On("Rollback", mock.Anything).Return(nil)

		svc := newTestService(repo)
		_, err := svc.Settle(ctx, broke)

		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		tx.AssertNotCalled(t, "SetBalance", mock.Anything, mock.Anything, mock.Anything)
		tx.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Duplicate attempt id is a no-op returning current balance", func(t *testing.T) {
		repo := new(MockLedger)
		tx := new(MockSettlementTx)

		replay := req
		replay.AttemptID = uuid.New()

		repo.On("BeginSettlementTx", mock.Anything).Return(tx, nil)
		tx.On("GetAccountForUpdate", mock.Anything, "user-1").Return(&domain.Account{UserID: "user-1", Balance: 2500}, nil)
		tx.On("InsertBetRecord", mock.Anything, replay.AttemptID, "user-1", domain.GameRoulette, int64(500), true).Return(false, nil)
		tx.On("Rollback", mock.Anything).Return(nil)

		svc := newTestService(repo)
		balance, err := svc.Settle(ctx, replay)

		assert.NoError(t, err)
		assert.Equal(t, int64(2500), balance)
		tx.AssertNotCalled(t, "SetBalance", mock.Anything, mock.Anything, mock.Anything)
		tx.AssertNotCalled(t, "ApplyStreak", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		tx.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Conflict retries then succeeds", func(t *testing.T) {
		repo := new(MockLedger)
		failTx := new(MockSettlementTx)
		okTx := new(MockSettlementTx)

		retried := req
		retried.AttemptID = uuid.New()

		repo.On("BeginSettlementTx", mock.Anything).Return(failTx, nil).Once()
		repo.On("BeginSettlementTx", mock.Anything).Return(okTx, nil).Once()

		failTx.On("GetAccountForUpdate", mock.Anything, "user-1").
			Return(nil, domain.ErrSettlementConflict)
		failTx.On("Rollback", mock.Anything).Return(nil)

		okTx.On("GetAccountForUpdate", mock.Anything, "user-1").Return(&domain.Account{UserID: "user-1", Balance: 2000}, nil)
		okTx.On("InsertBetRecord", mock.Anything, retried.AttemptID, "user-1", domain.GameRoulette, int64(500), true).Return(true, nil)
		okTx.On("SetBalance", mock.Anything, "user-1", int64(2500)).Return(nil)
		okTx.On("ApplyStreak", mock.Anything, "user-1", domain.GameRoulette, true).Return(nil)
		okTx.On("InsertTransaction", mock.Anything, mock.Anything).Return(nil)
		okTx.On("Commit", mock.Anything).Return(nil)
		okTx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed))

		svc := newTestService(repo)
		balance, err := svc.Settle(ctx, retried)

		assert.NoError(t, err)
		assert.Equal(t, int64(2500), balance)
		repo.AssertNumberOfCalls(t, "BeginSettlementTx", 2)
	})

	t.Run("Persistent conflict exhausts retries", func(t *testing.T) {
		repo := new(MockLedger)
		tx := new(MockSettlementTx)

		stuck := req
		stuck.AttemptID = uuid.New()

		repo.On("BeginSettlementTx", mock.Anything).Return(tx, nil)
		tx.On("GetAccountForUpdate", mock.Anything, "user-1").Return(nil, domain.ErrSettlementConflict)
		tx.On("Rollback", mock.Anything).Return(nil)

		svc := newTestService(repo)
		_, err := svc.Settle(ctx, stuck)

		assert.ErrorIs(t, err, domain.ErrRetriesExhausted)
		repo.AssertNumberOfCalls(t, "BeginSettlementTx", DefaultMaxAttempts)
	})

	t.Run("Non-conflict error does not retry", func(t *testing.T) {
		repo := new(MockLedger)
		tx := new(MockSettlementTx)

		failing := req
		failing.AttemptID = uuid.New()

		repo.On("BeginSettlementTx", mock.Anything).Return(tx, nil)
		tx.On("GetAccountForUpdate", mock.Anything, "user-1").Return(nil, domain.ErrAccountNotFound)
		tx.On("Rollback", mock.Anything).Return(nil)

		svc := newTestService(repo)
		_, err := svc.Settle(ctx, failing)

		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
		repo.AssertNumberOfCalls(t, "BeginSettlementTx", 1)
	})
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("Moves amount and charges fee to sender", func(t *testing.T) {
		repo := new(MockLedger)
		tx := new(MockSettlementTx)

		repo.On("BeginSettlementTx", mock.Anything).Return(tx, nil)
		tx.On("GetAccountForUpdate", mock.Anything, "alice").Return(&domain.Account{UserID: "alice", Balance: 1000}, nil)
		tx.On("GetAccountForUpdate", mock.Anything, "bob").Return(&domain.Account{UserID: "bob", Balance: 200}, nil)
		tx.On("SetBalance", mock.Anything, "alice", int64(450)).Return(nil)
		tx.On("SetBalance", mock.Anything, "bob", int64(700)).Return(nil)
		tx.On("InsertTransaction", mock.Anything, mock.MatchedBy(func(rec *domain.TransactionRecord) bool {
			return rec.UserID == "alice" && rec.Net == -550 && rec.Counterpart == "bob"
		})).Return(nil)
		tx.On("InsertTransaction", mock.Anything, mock.MatchedBy(func(rec *domain.TransactionRecord) bool {
			return rec.UserID == "bob" && rec.Net == 500 && rec.Counterpart == "alice"
		})).Return(nil)
		tx.On("Commit", mock.Anything).Return(nil)
		tx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed))

		svc := newTestService(repo)
		balance, err := svc.Transfer(ctx, "alice", "bob", 500, 50)

		assert.NoError(t, err)
		assert.Equal(t, int64(450), balance)
		tx.AssertExpectations(t)
	})

	t.Run("Insufficient funds covers amount plus fee", func(t *testing.T) {
		repo := new(MockLedger)
		tx := new(MockSettlementTx)

		repo.On("BeginSettlementTx", mock.Anything).Return(tx, nil)
		tx.On("GetAccountForUpdate", mock.Anything, "alice").Return(&domain.Account{UserID: "alice", Balance: 520}, nil)
		tx.On("GetAccountForUpdate", mock.Anything, "bob").Return(&domain.Account{UserID: "bob", Balance: 0}, nil)
		tx.On("Rollback", mock.Anything).Return(nil)

		svc := newTestService(repo)
		_, err := svc.Transfer(ctx, "alice", "bob", 500, 50)

		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		tx.AssertNotCalled(t, "SetBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown recipient aborts before mutation", func(t *testing.T) {
		repo := new(MockLedger)
		tx := new(MockSettlementTx)

		repo.On("BeginSettlementTx", mock.Anything).Return(tx, nil)
		tx.On("GetAccountForUpdate", mock.Anything, "alice").Return(&domain.Account{UserID: "alice", Balance: 1000}, nil)
		tx.On("GetAccountForUpdate", mock.Anything, "ghost").Return(nil, domain.ErrAccountNotFound)
		tx.On("Rollback", mock.Anything).Return(nil)

		svc := newTestService(repo)
		_, err := svc.Transfer(ctx, "alice", "ghost", 500, 0)

		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
		tx.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("Debits amount plus fee", func(t *testing.T) {
		repo := new(MockLedger)
		tx := new(MockSettlementTx)

		repo.On("BeginSettlementTx", mock.Anything).Return(tx, nil)
		tx.On("GetAccountForUpdate", mock.Anything, "user-1").Return(&domain.Account{UserID: "user-1", Balance: 5000}, nil)
		tx.On("SetBalance", mock.Anything, "user-1", int64(3820)).Return(nil)
		tx.On("InsertTransaction", mock.Anything, mock.MatchedBy(func(rec *domain.TransactionRecord) bool {
			return rec.Type == domain.TxTypePayout && rec.Amount == 1000 && rec.Fee == 180 && rec.Net == -1180
		})).Return(nil)
		tx.On("Commit", mock.Anything).Return(nil)
		tx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed))

		svc := newTestService(repo)
		balance, err := svc.Withdraw(ctx, "user-1", 1000, 180)

		assert.NoError(t, err)
		assert.Equal(t, int64(3820), balance)
		tx.AssertExpectations(t)
	})

	t.Run("Insufficient funds rejects", func(t *testing.T) {
		repo := new(MockLedger)
		tx := new(MockSettlementTx)

		repo.On("BeginSettlementTx", mock.Anything).Return(tx, nil)
		tx.On("GetAccountForUpdate", mock.Anything, "user-1").Return(&domain.Account{UserID: "user-1", Balance: 1000}, nil)
		tx.On("Rollback", mock.Anything).Return(nil)

		svc := newTestService(repo)
		_, err := svc.Withdraw(ctx, "user-1", 1000, 180)

		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		tx.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

// fakeLedger wraps a single mutable balance behind the repository
// interfaces. It is deliberately not thread safe: interleaved settlements
// would corrupt the balance, which is exactly what the per-user lock must
// prevent.
type fakeLedger struct {
	MockLedger
	balance int64
}

func (f *fakeLedger) BeginSettlementTx(ctx context.Context) (repository.SettlementTx, error) {
	return &fakeTx{ledger: f}, nil
}

type fakeTx struct {
	MockSettlementTx
	ledger *fakeLedger
}

func (f *fakeTx) GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error) {
	return &domain.Account{UserID: userID, Balance: f.ledger.balance}, nil
}

func (f *fakeTx) SetBalance(ctx context.Context, userID string, balance int64) error {
	f.ledger.balance = balance
	return nil
}

func (f *fakeTx) ApplyStreak(ctx context.Context, userID string, game domain.GameType, won bool) error {
	return nil
}

func (f *fakeTx) InsertBetRecord(ctx context.Context, attemptID uuid.UUID, userID string, game domain.GameType, amount int64, won bool) (bool, error) {
	return true, nil
}

func (f *fakeTx) InsertTransaction(ctx context.Context, rec *domain.TransactionRecord) error {
	return nil
}

func (f *fakeTx) Commit(ctx context.Context) error { return nil }

func (f *fakeTx) Rollback(ctx context.Context) error {
	return errors.New(domain.ErrMsgTxClosed)
}

func TestSettleConcurrent(t *testing.T) {
	ctx := context.Background()

	ledger := &fakeLedger{balance: 100000}
	svc := &service{
		repo:        ledger,
		locks:       concurrency.NewLockManager(),
		maxAttempts: DefaultMaxAttempts,
		backoff:     time.Millisecond,
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Settle(ctx, SettleRequest{
				AttemptID: uuid.New(),
				UserID:    "user-1",
				Game:      domain.GameGamble,
				Amount:    500,
				Won:       false,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100000-50*500), ledger.balance)
}
