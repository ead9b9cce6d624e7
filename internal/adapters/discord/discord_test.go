package discord

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"storedash/internal/domain/entities"
	"storedash/internal/infrastructure/i18n"
	"storedash/internal/ports/input"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCommands_Localized(t *testing.T) {
	cmds := Commands(i18n.NewTranslator(entities.DefaultLocale))
	require.Len(t, cmds, 1)

	cmd := cmds[0]
	assert.Equal(t, "alerts", cmd.Name)
	assert.Equal(t, "Show the open store alerts", cmd.Description)
	require.NotNil(t, cmd.NameLocalizations)
	assert.Equal(t, "alertas", (*cmd.NameLocalizations)[discordgo.PortugueseBR])
	assert.Equal(t, "Mostra os alertas abertos da loja", (*cmd.DescriptionLocalizations)[discordgo.PortugueseBR])
}

// countingAlerts records Dispatch calls.
type countingAlerts struct {
	input.AlertUseCase
	dispatched atomic.Int32
	locale     atomic.Value
}

func (c *countingAlerts) Dispatch(_ context.Context, locale input.LocaleUseCase) (int, error) {
	c.dispatched.Add(1)
	c.locale.Store(locale.Current())
	return 0, nil
}

// fixedLocale is a LocaleUseCase that only knows its code.
type fixedLocale struct {
	input.LocaleUseCase
	code string
}

func (f fixedLocale) Current() string { return f.code }

func TestRunScheduledDigest(t *testing.T) {
	alerts := &countingAlerts{}
	var requested atomic.Value
	h := NewHandler(alerts, func(_ context.Context, l string) input.LocaleUseCase {
		requested.Store(l)
		return fixedLocale{code: l}
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.RunScheduledDigest(ctx, 5*time.Millisecond, "pt-BR") }()

	assert.Eventually(t, func() bool { return alerts.dispatched.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, "pt-BR", requested.Load())
	assert.Equal(t, "pt-BR", alerts.locale.Load())
}
