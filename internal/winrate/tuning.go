package winrate

import "time"

// ReserveBand maps a reserve level to a rate penalty. Bands are evaluated
// in order; the first match wins.
type ReserveBand struct {
	Below   int64
	Penalty float64
}

// Tuning holds the per-variant win-rate parameters. Corrections gates the
// whole personalization stack: when false only the base rate and the clamp
// apply.
type Tuning struct {
	// BaseRate is the nominal win probability in percent.
	BaseRate float64

	// Corrections enables the personalization stack for this variant.
	Corrections bool

	// BetPenalty maps each allowed bet amount to a rate penalty. The key
	// set doubles as the variant's allowed denominations.
	BetPenalty map[int64]float64

	// Streak steps: win streaks subtract, lose streaks add.
	WinStreakStep  float64
	LoseStreakStep float64

	// Trailing net-profit correction. Zero window disables it.
	ProfitWindow     time.Duration
	ProfitClawbackAt int64
	ProfitClawback   float64
	ProfitReliefAt   int64
	ProfitRelief     float64

	// House reserve correction.
	UseReserve       bool
	FallbackReserve  int64
	LowReserveBands  []ReserveBand
	HighReserveAbove int64
	HighReserveBonus float64

	// Safety band. The resolver must never see a rate outside it.
	FloorRate float64
	CeilRate  float64
}

// AmountAllowed reports whether the amount is one of the variant's
// denominations.
func (t Tuning) AmountAllowed(amount int64) bool {
	_, ok := t.BetPenalty[amount]
	return ok
}

func (t Tuning) clamp(rate float64) float64 {
	if rate < t.FloorRate {
		return t.FloorRate
	}
	if rate > t.CeilRate {
		return t.CeilRate
	}
	return rate
}
