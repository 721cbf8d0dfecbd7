package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/pncplay/casino-bot/internal/economy"
)

// PayoutCommand returns the cash-out command
func PayoutCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minAmount := float64(economy.MinPayoutJPY)

	cmd := &discordgo.ApplicationCommand{
		Name:        "payout",
		Description: "Cash out your PNC to a payment link",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "Amount to cash out in JPY (10 PNC = 1 JPY)",
				Required:    true,
				MinValue:    &minAmount,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		options := getOptions(i)
		amountJPY := options[0].IntValue()

		result, err := svc.Economy.Payout(commandContext(), user.ID, amountJPY)
		if err != nil {
			slog.Error("Failed to create payout", "error", err, "username", user.Username)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := createEmbed("💴 Payout ready",
			fmt.Sprintf("Your payment link for **%d JPY**:\n%s", result.AmountJPY, result.LinkURL),
			ColorNeutral)
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Debited", Value: fmt.Sprintf("%d PNC", result.AmountPNC), Inline: true},
			{Name: "Fee", Value: fmt.Sprintf("%d PNC", result.Fee), Inline: true},
			{Name: "Balance", Value: fmt.Sprintf("%d PNC", result.NewBalance), Inline: true},
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
