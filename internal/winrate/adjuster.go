package winrate

import (
	"context"
	"fmt"
	"time"

	"github.com/pncplay/casino-bot/internal/domain"
	"github.com/pncplay/casino-bot/internal/logger"
	"github.com/pncplay/casino-bot/internal/metrics"
)

// Scorer is the learned-model boundary. It maps a user's observed win
// rate, average bet size and the variant base rate to a personalized
// predicted win rate in [0,100]. Owned and versioned externally; the
// adjuster treats it as optional and replaceable.
type Scorer interface {
	Score(ctx context.Context, observedWinRate, avgBet, baseRate float64) (float64, error)
}

// ReserveSignal reports the house's available payout reserve. Used to
// globally bias odds; unavailability degrades to a fixed neutral value.
type ReserveSignal interface {
	Reserve(ctx context.Context) (int64, error)
}

// Snapshot carries the per-user state the adjuster reads. All fields are
// loaded by the caller before Compute; the adjuster itself never writes.
type Snapshot struct {
	Streak    domain.StreakState
	Stats     domain.BetStats
	NetProfit int64
}

// Adjuster computes the adjusted win probability for a bet. Pure over the
// snapshot except for the two optional collaborators, each bounded by its
// own timeout with a defined fallback so a bet never fails or blocks on
// them.
type Adjuster struct {
	scorer         Scorer
	reserve        ReserveSignal
	scorerTimeout  time.Duration
	reserveTimeout time.Duration
}

// NewAdjuster creates a new Adjuster. Either collaborator may be nil.
func NewAdjuster(scorer Scorer, reserve ReserveSignal, scorerTimeout, reserveTimeout time.Duration) *Adjuster {
	if scorerTimeout <= 0 {
		scorerTimeout = DefaultScorerTimeout
	}
	if reserveTimeout <= 0 {
		reserveTimeout = DefaultReserveTimeout
	}
	return &Adjuster{
		scorer:         scorer,
		reserve:        reserve,
		scorerTimeout:  scorerTimeout,
		reserveTimeout: reserveTimeout,
	}
}

// Compute returns the adjusted win probability for one bet, clamped to the
// variant's safety band. The bet amount must be one of the variant's
// allowed denominations.
func (a *Adjuster) Compute(ctx context.Context, t Tuning, amount int64, snap Snapshot) (float64, error) {
	penalty, ok := t.BetPenalty[amount]
	if !ok {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidBetAmount, amount)
	}

	// Variants with corrections disabled (roulette green) always play at
	// their fixed base rate.
	if !t.Corrections {
		return t.clamp(t.BaseRate), nil
	}

	rate := a.baseline(ctx, t, snap)

	rate -= penalty
	rate -= float64(snap.Streak.WinStreak) * t.WinStreakStep
	rate += float64(snap.Streak.LoseStreak) * t.LoseStreakStep

	rate += a.profitCorrection(t, snap.NetProfit)
	rate += a.reserveCorrection(ctx, t)

	return t.clamp(rate), nil
}

// baseline returns the starting rate: the scorer's personalized prediction
// when available, otherwise the variant base rate. The model estimates a
// replacement baseline, not an additive delta.
func (a *Adjuster) baseline(ctx context.Context, t Tuning, snap Snapshot) float64 {
	if a.scorer == nil || snap.Stats.TotalBets == 0 {
		return t.BaseRate
	}

	sctx, cancel := context.WithTimeout(ctx, a.scorerTimeout)
	defer cancel()

	predicted, err := a.scorer.Score(sctx, snap.Stats.ObservedWinRate(), snap.Stats.AvgBet, t.BaseRate)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgScorerUnavailable, "error", err)
		metrics.ScorerFallbacks.Inc()
		return t.BaseRate
	}
	if predicted < 0 || predicted > 100 {
		logger.FromContext(ctx).Warn(LogMsgScorerOutOfRange, "predicted", predicted)
		metrics.ScorerFallbacks.Inc()
		return t.BaseRate
	}
	return predicted
}

// profitCorrection claws back from users running hot over the trailing
// window and offers relief to users running cold.
func (a *Adjuster) profitCorrection(t Tuning, netProfit int64) float64 {
	if t.ProfitWindow <= 0 {
		return 0
	}
	if netProfit > t.ProfitClawbackAt {
		return -t.ProfitClawback
	}
	if netProfit < t.ProfitReliefAt {
		return t.ProfitRelief
	}
	return 0
}

// reserveCorrection nudges the rate by the configured band for the current
// house reserve. A failed fetch substitutes the neutral fallback reserve.
func (a *Adjuster) reserveCorrection(ctx context.Context, t Tuning) float64 {
	if !t.UseReserve {
		return 0
	}

	reserve := t.FallbackReserve
	if a.reserve != nil {
		rctx, cancel := context.WithTimeout(ctx, a.reserveTimeout)
		defer cancel()

		r, err := a.reserve.Reserve(rctx)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgReserveUnavailable, "error", err)
			metrics.ReserveFallbacks.Inc()
		} else {
			reserve = r
		}
	}

	for _, band := range t.LowReserveBands {
		if reserve < band.Below {
			return -band.Penalty
		}
	}
	if t.HighReserveAbove > 0 && reserve > t.HighReserveAbove {
		return t.HighReserveBonus
	}
	return 0
}
