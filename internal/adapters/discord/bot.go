package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"storedash/internal/domain/entities"
	"storedash/internal/ports/output"
	discordpkg "storedash/pkg/discord"
)

var _ output.Notifier = (*Bot)(nil)

// Bot is the Discord adapter: it posts alert digests to a channel and
// answers the /alerts slash command.
type Bot struct {
	session   *discordgo.Session
	channelID string
	handler   *Handler
	t         output.T
	logger    *zap.Logger
}

// NewBot creates the Discord session. Nothing is sent until Notify or Start.
// Slash commands are answered once a Handler is attached with Serve.
func NewBot(token, channelID string, t output.T, logger *zap.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	bot := &Bot{
		session:   s,
		channelID: channelID,
		t:         t,
		logger:    logger,
	}
	return bot, nil
}

// Serve routes slash command interactions to h. Call it before Start.
func (b *Bot) Serve(h *Handler) {
	b.handler = h
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.handler == nil || i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name == commandAlerts {
		b.handler.HandleAlertsCommand(s, i)
	}
}

// Start opens the gateway, registers the slash commands and blocks until ctx
// is done.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord open: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range Commands(b.t) {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd); err != nil {
			b.logger.Warn("discord command registration failed",
				zap.String("command", cmd.Name),
				zap.Error(err))
		}
	}

	b.logger.Info("discord bot online", zap.String("alert_channel", b.channelID))
	<-ctx.Done()
	return nil
}

// Notify posts digest to the alert channel.
func (b *Bot) Notify(ctx context.Context, digest entities.AlertDigest) error {
	embed := discordpkg.BuildAlertEmbed(digest, b.t.T(digest.Locale, "alerts.critical", nil), time.Now())
	if _, err := b.session.ChannelMessageSendEmbed(b.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord send: %w", err)
	}
	return nil
}
