package bet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pncplay/casino-bot/internal/domain"
	"github.com/pncplay/casino-bot/internal/event"
	"github.com/pncplay/casino-bot/internal/logger"
	"github.com/pncplay/casino-bot/internal/outcome"
	"github.com/pncplay/casino-bot/internal/repository"
	"github.com/pncplay/casino-bot/internal/settlement"
	"github.com/pncplay/casino-bot/internal/winrate"
)

// Service places bets end to end: validate, personalize the win rate,
// resolve the outcome and settle atomically.
type Service interface {
	PlaceBet(ctx context.Context, userID string, game domain.GameType, variant string, amount int64) (*domain.BetResult, error)
}

type service struct {
	registry   *Registry
	repo       repository.Ledger
	adjuster   *winrate.Adjuster
	resolver   *outcome.Resolver
	settlement settlement.Service
	eventBus   event.Bus
}

// NewService creates a bet service.
func NewService(registry *Registry, repo repository.Ledger, adjuster *winrate.Adjuster, resolver *outcome.Resolver, settlementSvc settlement.Service, eventBus event.Bus) Service {
	return &service{
		registry:   registry,
		repo:       repo,
		adjuster:   adjuster,
		resolver:   resolver,
		settlement: settlementSvc,
		eventBus:   eventBus,
	}
}

func (s *service) PlaceBet(ctx context.Context, userID string, game domain.GameType, variantKey string, amount int64) (*domain.BetResult, error) {
	log := logger.FromContext(ctx)

	variant, err := s.registry.Lookup(game, variantKey)
	if err != nil {
		return nil, err
	}
	if !variant.Tuning.AmountAllowed(amount) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidBetAmount, amount)
	}

	account, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	// Early check for a friendly rejection; settlement re-checks under the
	// row lock.
	if account.Balance < amount {
		return nil, fmt.Errorf("balance %d, bet %d: %w", account.Balance, amount, domain.ErrInsufficientFunds)
	}

	log.Debug(LogMsgBetPlaced, "user_id", userID, "game", game, "variant", variantKey, "amount", amount)

	snap := s.loadSnapshot(ctx, userID, game, variant.Tuning)

	probability, err := s.adjuster.Compute(ctx, variant.Tuning, amount, snap)
	if err != nil {
		return nil, err
	}

	won := s.resolver.Resolve(probability)
	payout := outcome.Payout(amount, variant.Multiplier, won)

	attemptID := uuid.New()
	newBalance, err := s.settlement.Settle(ctx, settlement.SettleRequest{
		AttemptID: attemptID,
		UserID:    userID,
		Game:      game,
		Amount:    amount,
		Won:       won,
		Payout:    payout,
	})
	if err != nil {
		return nil, err
	}

	result := &domain.BetResult{
		AttemptID:   attemptID,
		Game:        game,
		Variant:     variantKey,
		Amount:      amount,
		Won:         won,
		Payout:      payout,
		NewBalance:  newBalance,
		DisplayFace: s.displayFace(variant, won),
	}

	log.Info(LogMsgBetSettled,
		"user_id", userID,
		"game", game,
		"variant", variantKey,
		"amount", amount,
		"won", won,
		"probability", probability)

	if err := s.eventBus.Publish(ctx, event.Event{
		Version: event.SchemaVersion,
		Type:    domain.EventBetSettled,
		Payload: domain.BetSettledPayloadV1{
			UserID:      userID,
			Game:        game,
			Variant:     variantKey,
			Amount:      amount,
			Won:         won,
			Payout:      payout,
			Probability: probability,
		},
	}); err != nil {
		log.Warn(LogMsgPublishFailed, "error", err)
	}

	return result, nil
}

// loadSnapshot gathers the per-user features for win-rate adjustment.
// Each read degrades to its zero value on error: personalization must
// never block a bet.
func (s *service) loadSnapshot(ctx context.Context, userID string, game domain.GameType, t winrate.Tuning) winrate.Snapshot {
	log := logger.FromContext(ctx)
	var snap winrate.Snapshot

	streak, err := s.repo.GetStreak(ctx, userID, game)
	if err != nil {
		log.Warn(LogMsgSnapshotPartial, "field", "streak", "error", err)
	} else {
		snap.Streak = streak
	}

	stats, err := s.repo.GetBetStats(ctx, userID, game)
	if err != nil {
		log.Warn(LogMsgSnapshotPartial, "field", "stats", "error", err)
	} else {
		snap.Stats = stats
	}

	if t.ProfitWindow > 0 {
		since := time.Now().Add(-t.ProfitWindow)
		profit, err := s.repo.GetNetProfit(ctx, userID, game, since)
		if err != nil {
			log.Warn(LogMsgSnapshotPartial, "field", "net_profit", "error", err)
		} else {
			snap.NetProfit = profit
		}
	}

	return snap
}

func (s *service) displayFace(v Variant, won bool) string {
	if won {
		return v.WinFace
	}
	return s.resolver.PickFace(v.LossFaces)
}
