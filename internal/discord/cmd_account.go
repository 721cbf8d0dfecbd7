package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/pncplay/casino-bot/internal/domain"
)

// RegisterCommand returns the account registration command
func RegisterCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "register",
		Description: "Open your casino account",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "payment_id",
				Description: "Payment provider recipient id used for cash-outs",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		externalID := ""
		for _, opt := range getOptions(i) {
			if opt.Name == "payment_id" {
				externalID = opt.StringValue()
			}
		}

		user := getInteractionUser(i)
		account, err := svc.Economy.Register(commandContext(), user.ID, user.Username, externalID)
		if err != nil {
			slog.Error("Failed to register account", "error", err, "username", user.Username)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := createEmbed("🎰 Welcome!",
			fmt.Sprintf("Your account is open. Balance: **%d PNC**.", account.Balance),
			ColorNeutral)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// BalanceCommand returns the balance command
func BalanceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "balance",
		Description: "Show your balance and recent activity",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		account, history, err := svc.Economy.GetBalance(commandContext(), user.ID)
		if err != nil {
			slog.Error("Failed to get balance", "error", err, "username", user.Username)
			respondFriendlyError(s, i, err.Error())
			return
		}

		embed := createEmbed("💰 Balance",
			fmt.Sprintf("**%d PNC**", account.Balance),
			ColorNeutral)
		if len(history) > 0 {
			embed.Fields = []*discordgo.MessageEmbedField{
				{
					Name:  "Recent activity",
					Value: formatHistory(history),
				},
			}
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

func formatHistory(history []domain.TransactionRecord) string {
	lines := make([]string, 0, len(history))
	for _, rec := range history {
		sign := ""
		if rec.Net > 0 {
			sign = "+"
		}
		lines = append(lines, fmt.Sprintf("%s: %s%d PNC", historyLabel(rec), sign, rec.Net))
	}
	return strings.Join(lines, "\n")
}

func historyLabel(rec domain.TransactionRecord) string {
	switch rec.Type {
	case domain.TxTypeBet:
		return string(rec.Game)
	case domain.TxTypeTransfer:
		if rec.Net < 0 {
			return "sent"
		}
		return "received"
	case domain.TxTypePayout:
		return "payout"
	default:
		return rec.Type
	}
}
