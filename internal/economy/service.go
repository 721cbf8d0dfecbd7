package economy

import (
	"context"
	"fmt"

	"github.com/pncplay/casino-bot/internal/domain"
	"github.com/pncplay/casino-bot/internal/event"
	"github.com/pncplay/casino-bot/internal/logger"
	"github.com/pncplay/casino-bot/internal/paylink"
	"github.com/pncplay/casino-bot/internal/repository"
	"github.com/pncplay/casino-bot/internal/settlement"
)

// Service covers the non-betting account operations: registration,
// balance reads, transfers between users and payment-link cash-outs.
type Service interface {
	Register(ctx context.Context, userID, username, externalID string) (*domain.Account, error)
	GetBalance(ctx context.Context, userID string) (*domain.Account, []domain.TransactionRecord, error)
	Transfer(ctx context.Context, fromID, toID string, amount int64) (int64, error)
	Payout(ctx context.Context, userID string, amountJPY int64) (*domain.PayoutResult, error)
}

type service struct {
	repo           repository.Ledger
	settlement     settlement.Service
	paylink        paylink.Client
	eventBus       event.Bus
	payoutDisabled bool
}

// NewService creates an economy service. payoutDisabled is the operator
// kill switch for cash-outs.
func NewService(repo repository.Ledger, settlementSvc settlement.Service, paylinkClient paylink.Client, eventBus event.Bus, payoutDisabled bool) Service {
	return &service{
		repo:           repo,
		settlement:     settlementSvc,
		paylink:        paylinkClient,
		eventBus:       eventBus,
		payoutDisabled: payoutDisabled,
	}
}

func (s *service) Register(ctx context.Context, userID, username, externalID string) (*domain.Account, error) {
	account := &domain.Account{
		UserID:     userID,
		Username:   username,
		ExternalID: externalID,
		Balance:    StartingBalance,
	}
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgAccountRegistered, "user_id", userID)
	return account, nil
}

func (s *service) GetBalance(ctx context.Context, userID string) (*domain.Account, []domain.TransactionRecord, error) {
	account, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	history, err := s.repo.GetRecentTransactions(ctx, userID, RecentTransactionLimit)
	if err != nil {
		// Balance still answers without history.
		logger.FromContext(ctx).Warn("Failed to load recent transactions", "user_id", userID, "error", err)
		history = nil
	}
	return account, history, nil
}

func (s *service) Transfer(ctx context.Context, fromID, toID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	if fromID == toID {
		return 0, domain.ErrSelfTransfer
	}

	// Resolve both accounts up front so the caller gets a clean not-found
	// instead of a settlement failure.
	if _, err := s.repo.GetAccount(ctx, fromID); err != nil {
		return 0, fmt.Errorf("sender: %w", err)
	}
	if _, err := s.repo.GetAccount(ctx, toID); err != nil {
		return 0, fmt.Errorf("recipient: %w", err)
	}

	newBalance, err := s.settlement.Transfer(ctx, fromID, toID, amount, 0)
	if err != nil {
		return 0, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgTransferComplete, "from", fromID, "to", toID, "amount", amount)

	if err := s.eventBus.Publish(ctx, event.Event{
		Version: event.SchemaVersion,
		Type:    domain.EventTransferCompleted,
		Payload: domain.TransferCompletedPayloadV1{
			SenderID:    fromID,
			RecipientID: toID,
			Amount:      amount,
		},
	}); err != nil {
		log.Warn(LogMsgPublishFailed, "error", err)
	}

	return newBalance, nil
}

func (s *service) Payout(ctx context.Context, userID string, amountJPY int64) (*domain.PayoutResult, error) {
	if s.payoutDisabled {
		return nil, domain.ErrPayoutsDisabled
	}
	if amountJPY < MinPayoutJPY {
		return nil, fmt.Errorf("%w: minimum %d JPY", domain.ErrBelowMinPayout, MinPayoutJPY)
	}

	amountPNC := amountJPY * JPYToPNC
	fee := PayoutFee(amountPNC)
	total := amountPNC + fee

	account, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account.Balance < total {
		return nil, fmt.Errorf("balance %d, payout %d: %w", account.Balance, total, domain.ErrInsufficientFunds)
	}

	// Create the link before touching the ledger: a provider failure must
	// leave the balance untouched. The rare inverse (link created, debit
	// fails) is recoverable from the provider's order log.
	link, err := s.paylink.CreateLink(ctx, amountJPY)
	if err != nil {
		return nil, err
	}

	newBalance, err := s.settlement.Withdraw(ctx, userID, amountPNC, fee)
	if err != nil {
		logger.FromContext(ctx).Error("Payout debit failed after link creation",
			"user_id", userID,
			"order_id", link.OrderID,
			"error", err)
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgPayoutCreated,
		"user_id", userID,
		"amount_jpy", amountJPY,
		"fee", fee,
		"order_id", link.OrderID)

	if err := s.eventBus.Publish(ctx, event.Event{
		Version: event.SchemaVersion,
		Type:    domain.EventPayoutCreated,
		Payload: domain.PayoutCreatedPayloadV1{
			UserID:    userID,
			AmountJPY: amountJPY,
			AmountPNC: amountPNC,
			Fee:       fee,
			OrderID:   link.OrderID,
		},
	}); err != nil {
		log.Warn(LogMsgPublishFailed, "error", err)
	}

	return &domain.PayoutResult{
		LinkURL:    link.URL,
		OrderID:    link.OrderID,
		AmountJPY:  amountJPY,
		AmountPNC:  amountPNC,
		Fee:        fee,
		TotalPNC:   total,
		NewBalance: newBalance,
	}, nil
}

// PayoutFee is a percentage of the cashed-out amount with a floor.
func PayoutFee(amountPNC int64) int64 {
	fee := amountPNC * PayoutFeePercent / 100
	if fee < MinPayoutFee {
		return MinPayoutFee
	}
	return fee
}
