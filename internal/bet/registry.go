package bet

import (
	"fmt"

	"github.com/pncplay/casino-bot/internal/domain"
	"github.com/pncplay/casino-bot/internal/outcome"
	"github.com/pncplay/casino-bot/internal/winrate"
)

// Variant is one playable option of a game: a named outcome with its
// multiplier, win-rate tuning and display faces.
type Variant struct {
	Key        string
	Multiplier int64
	Tuning     winrate.Tuning
	WinFace    string
	LossFaces  []outcome.Face
}

// Game groups the variants of one game type.
type Game struct {
	Type     domain.GameType
	Variants map[string]Variant
}

// Registry resolves (game, variant) pairs to their definitions.
type Registry struct {
	games map[domain.GameType]Game
}

// Lookup returns the variant definition, or a domain error when the game
// or variant does not exist.
func (r *Registry) Lookup(game domain.GameType, variant string) (Variant, error) {
	g, ok := r.games[game]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %s", domain.ErrUnknownGame, game)
	}
	v, ok := g.Variants[variant]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %s/%s", domain.ErrUnknownVariant, game, variant)
	}
	return v, nil
}

// NewRegistry builds the production game tables.
func NewRegistry() *Registry {
	return &Registry{
		games: map[domain.GameType]Game{
			domain.GameGamble: {
				Type: domain.GameGamble,
				Variants: map[string]Variant{
					VariantGamble2x: {
						Key:        VariantGamble2x,
						Multiplier: 2,
						Tuning:     gambleTuning(Gamble2xBaseRate),
						WinFace:    FaceWin,
						LossFaces:  []outcome.Face{{Name: FaceLoss, Weight: 1}},
					},
					VariantGamble3x: {
						Key:        VariantGamble3x,
						Multiplier: 3,
						Tuning:     gambleTuning(Gamble3xBaseRate),
						WinFace:    FaceWin,
						LossFaces:  []outcome.Face{{Name: FaceLoss, Weight: 1}},
					},
				},
			},
			domain.GameRoulette: {
				Type: domain.GameRoulette,
				Variants: map[string]Variant{
					VariantRouletteRed: {
						Key:        VariantRouletteRed,
						Multiplier: 2,
						Tuning:     rouletteColorTuning(),
						WinFace:    VariantRouletteRed,
						LossFaces: []outcome.Face{
							{Name: VariantRouletteBlack, Weight: RouletteColorPockets},
							{Name: VariantRouletteGreen, Weight: RouletteGreenPockets},
						},
					},
					VariantRouletteBlack: {
						Key:        VariantRouletteBlack,
						Multiplier: 2,
						Tuning:     rouletteColorTuning(),
						WinFace:    VariantRouletteBlack,
						LossFaces: []outcome.Face{
							{Name: VariantRouletteRed, Weight: RouletteColorPockets},
							{Name: VariantRouletteGreen, Weight: RouletteGreenPockets},
						},
					},
					VariantRouletteGreen: {
						Key:        VariantRouletteGreen,
						Multiplier: 14,
						Tuning:     rouletteGreenTuning(),
						WinFace:    VariantRouletteGreen,
						LossFaces: []outcome.Face{
							{Name: VariantRouletteRed, Weight: RouletteColorPockets},
							{Name: VariantRouletteBlack, Weight: RouletteColorPockets},
						},
					},
				},
			},
		},
	}
}

// gambleTuning is shared by both gamble variants; only the base rate
// differs between the multipliers.
func gambleTuning(baseRate float64) winrate.Tuning {
	return winrate.Tuning{
		BaseRate:    baseRate,
		Corrections: true,
		BetPenalty: map[int64]float64{
			500:  0,
			1000: GambleHighBetPenalty,
		},
		WinStreakStep:  GambleWinStreakStep,
		LoseStreakStep: GambleLoseStreakStep,
		FloorRate:      GambleFloorRate,
		CeilRate:       GambleCeilRate,
	}
}

func rouletteColorTuning() winrate.Tuning {
	return winrate.Tuning{
		BaseRate:    RouletteColorBaseRate,
		Corrections: true,
		BetPenalty: map[int64]float64{
			25:   0,
			50:   1,
			100:  2,
			200:  3.5,
			500:  5.5,
			1000: 8,
		},
		WinStreakStep:  RouletteWinStreakStep,
		LoseStreakStep: RouletteLoseStreakStep,

		ProfitWindow:     RouletteProfitWindow,
		ProfitClawbackAt: RouletteProfitClawbackAt,
		ProfitClawback:   RouletteProfitClawback,
		ProfitReliefAt:   RouletteProfitReliefAt,
		ProfitRelief:     RouletteProfitRelief,

		UseReserve:      true,
		FallbackReserve: RouletteFallbackReserve,
		LowReserveBands: []winrate.ReserveBand{
			{Below: 3000, Penalty: 5},
			{Below: 5000, Penalty: 3},
		},
		HighReserveAbove: RouletteHighReserveAbove,
		HighReserveBonus: RouletteHighReserveBonus,

		FloorRate: RouletteFloorRate,
		CeilRate:  RouletteCeilRate,
	}
}

// rouletteGreenTuning plays at a fixed rate: no personalization on the
// long-shot pocket.
func rouletteGreenTuning() winrate.Tuning {
	return winrate.Tuning{
		BaseRate:    RouletteGreenBaseRate,
		Corrections: false,
		BetPenalty: map[int64]float64{
			25: 0, 50: 0, 100: 0, 200: 0, 500: 0, 1000: 0,
		},
		FloorRate: RouletteFloorRate,
		CeilRate:  RouletteCeilRate,
	}
}
