package economy

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pncplay/casino-bot/internal/domain"
	"github.com/pncplay/casino-bot/internal/event"
	"github.com/pncplay/casino-bot/internal/paylink"
	"github.com/pncplay/casino-bot/internal/repository"
	"github.com/pncplay/casino-bot/internal/settlement"
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

// MockSettlement
type MockSettlement struct {
	mock.Mock
}

func (m *MockSettlement) Settle(ctx context.Context, req settlement.SettleRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSettlement) Transfer(ctx context.Context, fromID, toID string, amount, fee int64) (int64, error) {
	args := m.Called(ctx, fromID, toID, amount, fee)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSettlement) Withdraw(ctx context.Context, userID string, amount, fee int64) (int64, error) {
	args := m.Called(ctx, userID, amount, fee)
	return args.Get(0).(int64), args.Error(1)
}

// MockPaylink
type MockPaylink struct {
	mock.Mock
}

func (m *MockPaylink) CreateLink(ctx context.Context, amountJPY int64) (*paylink.Link, error) {
	args := m.Called(ctx, amountJPY)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paylink.Link), args.Error(1)
}

func (m *MockPaylink) UsableBalance(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventBus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType domain.EventType, handler event.Handler) {
	m.Called(eventType, handler)
}
