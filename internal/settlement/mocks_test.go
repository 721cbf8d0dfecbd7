package settlement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pncplay/casino-bot/internal/domain"
	"github.com/pncplay/casino-bot/internal/repository"
)

// MockLedger
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedger) CreateAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockLedger) GetStreak(ctx context.Context, userID string, game domain.GameType) (domain.StreakState, error) {
	args := m.Called(ctx, userID, game)
	return args.Get(0).(domain.StreakState), args.Error(1)
}

func (m *MockLedger) GetBetStats(ctx context.Context, userID string, game domain.GameType) (domain.BetStats, error) {
	args := m.Called(ctx, userID, game)
	return args.Get(0).(domain.BetStats), args.Error(1)
}

func (m *MockLedger) GetNetProfit(ctx context.Context, userID string, game domain.GameType, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, game, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedger) GetRecentTransactions(ctx context.Context, userID string, limit int) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

func (m *MockLedger) BeginSettlementTx(ctx context.Context) (repository.SettlementTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.SettlementTx), args.Error(1)
}

// MockSettlementTx
type MockSettlementTx struct {
	mock.Mock
}

func (m *MockSettlementTx) GetAccountForUpdate(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockSettlementTx) SetBalance(ctx context.Context, userID string, balance int64) error {
	args := m.Called(ctx, userID, balance)
	return args.Error(0)
}

func (m *MockSettlementTx) ApplyStreak(ctx context.Context, userID string, game domain.GameType, won bool) error {
	args := m.Called(ctx, userID, game, won)
	return args.Error(0)
}

func (m *MockSettlementTx) InsertBetRecord(ctx context.Context, attemptID uuid.UUID, userID string, game domain.GameType, amount int64, won bool) (bool, error) {
	args := m.Called(ctx, attemptID, userID, game, amount, won)
	return args.Bool(0), args.Error(1)
}

func (m *MockSettlementTx) InsertTransaction(ctx context.Context, rec *domain.TransactionRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockSettlementTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettlementTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
