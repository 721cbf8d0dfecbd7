package domain

import "time"

// Account is the per-user ledger record. Balance is in PNC minor units
// (1 unit = 1 PNC) and must never go negative.
type Account struct {
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	ExternalID string    `json:"external_id"` // payment-provider recipient id
	Balance    int64     `json:"balance"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StreakState tracks consecutive wins/losses for one (user, game) pair.
// At most one of the two counters is nonzero at any time.
type StreakState struct {
	WinStreak  int `json:"win_streak"`
	LoseStreak int `json:"lose_streak"`
}

// BetStats aggregates a user's bet history for one game. Used as the
// feature source for the learned scorer.
type BetStats struct {
	TotalBets int64   `json:"total_bets"`
	TotalWins int64   `json:"total_wins"`
	AvgBet    float64 `json:"avg_bet"`
}

// ObservedWinRate returns the historical win rate in percent.
func (s BetStats) ObservedWinRate() float64 {
	if s.TotalBets == 0 {
		return 0
	}
	return float64(s.TotalWins) / float64(s.TotalBets) * 100
}
