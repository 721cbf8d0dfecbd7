package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/pncplay/casino-bot/internal/bet"
	"github.com/pncplay/casino-bot/internal/domain"
)

// GambleCommand returns the double-or-nothing command
func GambleCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "gamble",
		Description: "Bet PNC on a multiplier",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "multiplier",
				Description: "Payout multiplier",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "2x", Value: bet.VariantGamble2x},
					{Name: "3x", Value: bet.VariantGamble3x},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "Bet amount in PNC",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
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
		variant := options[0].StringValue()
		amount := options[1].IntValue()

		result, err := svc.Bet.PlaceBet(commandContext(), user.ID, domain.GameGamble, variant, amount)
		if err != nil {
			slog.Error("Failed to place gamble", "error", err, "username", user.Username)
			respondFriendlyError(s, i, err.Error())
			return
		}

		sendEmbed(s, i, buildGambleEmbed(result))
	}

	return cmd, handler
}

func buildGambleEmbed(result *domain.BetResult) *discordgo.MessageEmbed {
	var embed *discordgo.MessageEmbed
	if result.Won {
		embed = createEmbed("🎉 You won!",
			fmt.Sprintf("Bet **%d** at %s and won **%d PNC**.", result.Amount, result.Variant, result.Payout),
			ColorWin)
	} else {
		embed = createEmbed("💸 You lost",
			fmt.Sprintf("Bet **%d** at %s.", result.Amount, result.Variant),
			ColorLoss)
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Balance", Value: fmt.Sprintf("%d PNC", result.NewBalance), Inline: true},
	}
	return embed
}
