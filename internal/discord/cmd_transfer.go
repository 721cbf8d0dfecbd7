package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// TransferCommand returns the PNC transfer command
func TransferCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minAmount := float64(1)

	cmd := &discordgo.ApplicationCommand{
		Name:        "transfer",
		Description: "Send PNC to another player",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "recipient",
				Description: "Player to send PNC to",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "Amount of PNC to send",
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
		recipient := options[0].UserValue(s)
		amount := options[1].IntValue()

		newBalance, err := svc.Economy.Transfer(commandContext(), user.ID, recipient.ID, amount)
		if err != nil {
			slog.Error("Failed to transfer", "error", err, "username", user.Username)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := createEmbed("💸 Transfer complete",
			fmt.Sprintf("Sent **%d PNC** to **%s**.", amount, recipient.Username),
			ColorNeutral)
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: fmt.Sprintf("%d PNC", newBalance), Inline: true},
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
