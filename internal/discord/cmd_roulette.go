package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/pncplay/casino-bot/internal/bet"
	"github.com/pncplay/casino-bot/internal/domain"
)

// RouletteCommand returns the roulette command
func RouletteCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "roulette",
		Description: "Bet PNC on a roulette color",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "color",
				Description: "Color to bet on",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Red (x2)", Value: bet.VariantRouletteRed},
					{Name: "Black (x2)", Value: bet.VariantRouletteBlack},
					{Name: "Green (x14)", Value: bet.VariantRouletteGreen},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "Bet amount in PNC",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "25", Value: 25},
					{Name: "50", Value: 50},
					{Name: "100", Value: 100},
					{Name: "200", Value: 200},
					{Name: "500", Value: 500},
					{Name: "1000", Value: 1000},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		options := getOptions(i)
		color := options[0].StringValue()
		amount := options[1].IntValue()

		result, err := svc.Bet.PlaceBet(commandContext(), user.ID, domain.GameRoulette, color, amount)
		if err != nil {
			slog.Error("Failed to place roulette bet", "error", err, "username", user.Username)
			respondFriendlyError(s, i, err.Error())
			return
		}

		sendEmbed(s, i, buildRouletteEmbed(result))
	}

	return cmd, handler
}

var pocketEmoji = map[string]string{
	bet.VariantRouletteRed:   "🔴",
	bet.VariantRouletteBlack: "⚫",
	bet.VariantRouletteGreen: "🟢",
}

func buildRouletteEmbed(result *domain.BetResult) *discordgo.MessageEmbed {
	landed := fmt.Sprintf("%s **%s**", pocketEmoji[result.DisplayFace], result.DisplayFace)

	var embed *discordgo.MessageEmbed
	switch {
	case result.Won && result.Variant == bet.VariantRouletteGreen:
		embed = createEmbed("🟢 GREEN!",
			fmt.Sprintf("The ball landed on %s. You won **%d PNC**!", landed, result.Payout),
			ColorGreenWin)
	case result.Won:
		embed = createEmbed("🎉 You won!",
			fmt.Sprintf("The ball landed on %s. You won **%d PNC**.", landed, result.Payout),
			ColorWin)
	default:
		embed = createEmbed("💸 You lost",
			fmt.Sprintf("The ball landed on %s.", landed),
			ColorLoss)
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Bet", Value: fmt.Sprintf("%d PNC on %s", result.Amount, result.Variant), Inline: true},
		{Name: "Balance", Value: fmt.Sprintf("%d PNC", result.NewBalance), Inline: true},
	}
	return embed
}
