package bet

import "time"

// Variant keys
const (
	VariantGamble2x = "2x"
	VariantGamble3x = "3x"

	VariantRouletteRed   = "red"
	VariantRouletteBlack = "black"
	VariantRouletteGreen = "green"
)

// Display faces for the gamble game
const (
	FaceWin  = "win"
	FaceLoss = "loss"
)

// Roulette wheel display weights: 14 pockets per color, one green.
const (
	RouletteColorPockets = 14
	RouletteGreenPockets = 1
)

// Gamble tuning
const (
	Gamble2xBaseRate = 47.0
	Gamble3xBaseRate = 28.57

	GambleHighBetPenalty = 5.0
	GambleWinStreakStep  = 3.0
	GambleLoseStreakStep = 3.0
	GambleFloorRate      = 5.0
	GambleCeilRate       = 95.0
)

// Roulette tuning
const (
	RouletteColorBaseRate = 43.0
	RouletteGreenBaseRate = 2.0

	RouletteWinStreakStep  = 5.0
	RouletteLoseStreakStep = 2.0

	RouletteProfitWindow     = 7 * 24 * time.Hour
	RouletteProfitClawbackAt = 3000
	RouletteProfitClawback   = 5.0
	RouletteProfitReliefAt   = -2000
	RouletteProfitRelief     = 5.0

	RouletteFallbackReserve  = 5000
	RouletteHighReserveAbove = 12000
	RouletteHighReserveBonus = 2.0

	RouletteFloorRate = 0.0
	RouletteCeilRate  = 100.0
)

// Log message constants
const (
	LogMsgBetPlaced       = "Bet placed"
	LogMsgBetSettled      = "Bet settled"
	LogMsgPublishFailed   = "Failed to publish bet event"
	LogMsgSnapshotPartial = "Feature snapshot incomplete, using defaults"
)
