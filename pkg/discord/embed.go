package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"storedash/internal/domain/entities"
)

const (
	colorCritical = 0xED4245
	colorWarning  = 0xFEE75C

	// Discord rejects embed descriptions longer than this.
	maxDescription = 4096
	ellipsis       = "\n…"
)

// BuildAlertEmbed renders a localized alert digest as a Discord embed.
// criticalLabel is the already translated name of the critical counter.
func BuildAlertEmbed(d entities.AlertDigest, criticalLabel string, at time.Time) *discordgo.MessageEmbed {
	color := colorWarning
	if d.Critical > 0 {
		color = colorCritical
	}
	embed := &discordgo.MessageEmbed{
		Title:       d.Title,
		Description: buildDescription(d.Summary, d.Lines),
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: d.Locale},
	}
	if !at.IsZero() {
		embed.Timestamp = at.UTC().Format(time.RFC3339)
	}
	if d.Critical > 0 {
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: criticalLabel, Value: fmt.Sprintf("%d", d.Critical), Inline: true},
		}
	}
	return embed
}

func buildDescription(summary string, lines []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("**%s**", summary))
	for _, l := range lines {
		entry := "\n- " + l
		if b.Len()+len(entry)+len(ellipsis) > maxDescription {
			b.WriteString(ellipsis)
			break
		}
		b.WriteString(entry)
	}
	return b.String()
}
