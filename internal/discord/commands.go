package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/pncplay/casino-bot/internal/domain"
	"github.com/pncplay/casino-bot/internal/logger"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	if h, ok := r.Handlers[i.ApplicationCommandData().Name]; ok {
		h(s, i, svc)
	}
}

// RegisterAll wires every command into the registry.
func (b *Bot) RegisterAll() {
	register := func(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
		b.Registry.Register(cmd, handler)
	}
	register(RegisterCommand())
	register(BalanceCommand())
	register(GambleCommand())
	register(RouletteCommand())
	register(TransferCommand())
	register(PayoutCommand())
}

// RegisterCommands pushes the registry to Discord with a bulk overwrite.
func (b *Bot) RegisterCommands() error {
	desired := make([]*discordgo.ApplicationCommand, 0, len(b.Registry.Commands))
	for _, cmd := range b.Registry.Commands {
		desired = append(desired, cmd)
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desired); err != nil {
		return fmt.Errorf("failed to overwrite commands: %w", err)
	}
	slog.Info("Commands registered", "count", len(desired))
	return nil
}

// commandContext creates a request-scoped context for one interaction.
func commandContext() context.Context {
	return logger.WithRequestID(context.Background(), logger.GenerateRequestID())
}

// deferResponse acknowledges an interaction with a deferred message.
// Required before anything that might outlive Discord's 3 second window.
// Returns false if deferral failed (should return early from handler).
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// getOptions extracts command options from an interaction.
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// respondError sends a plain error message.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// respondFriendlyError maps technical errors to player-readable messages
// before responding.
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	respondError(s, i, formatFriendlyError(message))
}

// formatFriendlyError cleans up technical error messages
func formatFriendlyError(msg string) string {
	switch {
	case strings.Contains(msg, domain.ErrMsgInsufficientFunds):
		return MsgInsufficientFunds
	case strings.Contains(msg, domain.ErrMsgAccountNotFound):
		return MsgAccountNotFound
	case strings.Contains(msg, domain.ErrMsgAccountExists):
		return MsgAccountExists
	case strings.Contains(msg, domain.ErrMsgInvalidBetAmount):
		return MsgInvalidBetAmount
	case strings.Contains(msg, domain.ErrMsgSelfTransfer):
		return MsgSelfTransfer
	case strings.Contains(msg, domain.ErrMsgPayoutsDisabled):
		return MsgPayoutsDisabled
	case strings.Contains(msg, domain.ErrMsgBelowMinPayout):
		return MsgBelowMinPayout
	case strings.Contains(msg, domain.ErrMsgPaylinkFailed):
		return MsgPaylinkFailed
	case strings.Contains(msg, domain.ErrMsgRetriesExhausted):
		return MsgTryAgain
	default:
		return "❌ " + msg
	}
}

// sendEmbed sends an embed message with standardized error handling.
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// createEmbed creates a standard embed with the bot footer.
func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterText,
		},
	}
}
