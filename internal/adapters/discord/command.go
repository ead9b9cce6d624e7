package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"storedash/internal/domain/entities"
	"storedash/internal/ports/output"
	discordpkg "storedash/pkg/discord"
)

const commandAlerts = "alerts"

// Commands returns the slash commands the bot registers, described in every
// supported locale.
func Commands(t output.T) []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:              commandAlerts,
			NameLocalizations: &map[discordgo.Locale]string{discordgo.PortugueseBR: "alertas"},
			Description:       t.T(entities.LocaleEnglish, "alerts.commandDescription", nil),
			DescriptionLocalizations: &map[discordgo.Locale]string{
				discordgo.PortugueseBR: t.T(entities.LocalePortugues, "alerts.commandDescription", nil),
			},
		},
	}
}

// HandleAlertsCommand answers /alerts with the open alerts, localized for
// the caller's Discord client.
func (h *Handler) HandleAlertsCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := h.locales(ctx, string(i.Locale))

	digest, err := h.alerts.Digest(ctx, locale)
	if err != nil {
		h.logger.Error("alerts command failed", zap.Error(err))
		respondEphemeral(s, i.Interaction, locale.T("errors.general", nil))
		return
	}
	if digest.Empty() {
		respondEphemeral(s, i.Interaction, digest.Summary)
		return
	}
	respondEmbed(s, i.Interaction, discordpkg.BuildAlertEmbed(digest, locale.T("alerts.critical", nil), time.Now()))
}
