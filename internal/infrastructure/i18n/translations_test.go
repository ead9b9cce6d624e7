package i18n

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"storedash/internal/ports/output"
)

func TestTranslator_Plural(t *testing.T) {
	tr := NewTranslator("pt-BR")

	tests := []struct {
		locale string
		count  any
		want   string
	}{
		{"en", 1, "1 minute ago"},
		{"en", 5, "5 minutes ago"},
		{"en", 0, "0 minutes ago"},
		{"pt-BR", 1, "Há 1 minuto"},
		{"pt-BR", 5, "Há 5 minutos"},
		// CLDR would call 0 singular in Portuguese; the dashboard rule does not
		{"pt-BR", 0, "Há 0 minutos"},
		{"en", int64(1), "1 minute ago"},
		{"en", 1.0, "1 minute ago"},
	}
	for _, tt := range tests {
		got := tr.T(tt.locale, "common.time.minutesAgo", map[string]any{"count": tt.count})
		assert.Equal(t, tt.want, got, "%s count=%v", tt.locale, tt.count)
	}
}

func TestTranslator_Interpolation(t *testing.T) {
	tr := NewTranslator("pt-BR")

	got := tr.T("en", "dashboard.activity.productStock", map[string]any{"product": "Smartphone X Pro", "units": 2})
	assert.Equal(t, "Smartphone X Pro has 2 units left", got)

	got = tr.T("pt-BR", "dashboard.activity.orderAmount", map[string]any{"order": 12345, "amount": "R$ 450,00"})
	assert.Equal(t, "Pedido #12345 - R$ 450,00", got)
}

func TestTranslator_CountOnPlainMessage(t *testing.T) {
	tr := NewTranslator("pt-BR")
	assert.Equal(t, "Now", tr.T("en", "common.time.now", map[string]any{"count": 1}))
	assert.Equal(t, "Now", tr.T("en", "common.time.now", map[string]any{"count": 3}))
}

type missCounter struct {
	output.Metrics
	misses map[string]int
}

func (m *missCounter) TranslationMiss(locale string) { m.misses[locale]++ }

func TestTranslator_MissingTemplateDataIsAMiss(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	metrics := &missCounter{misses: map[string]int{}}
	tr := NewTranslator("pt-BR", WithLogger(zap.New(core)), WithMetrics(metrics))

	assert.Equal(t, "common.time.minutesAgo", tr.T("en", "common.time.minutesAgo", nil))
	assert.Equal(t, "dashboard.activity.productStock",
		tr.T("en", "dashboard.activity.productStock", map[string]any{"product": "Cabo HDMI"}))
	assert.Equal(t, "5 minutes ago", tr.T("en", "common.time.minutesAgo", map[string]any{"count": 5}))

	assert.Equal(t, 2, logs.FilterMessage("i18n: localize failed").Len())
	assert.Equal(t, 2, metrics.misses["en"])
}

func TestTranslator_FallbackLocale(t *testing.T) {
	tr := NewTranslator("pt-BR")

	// only shipped in the Brazilian table
	assert.Equal(t, "Boleto", tr.T("en", "sales.paymentMethods.boleto", nil))
	// unknown locale resolves through the fallback table
	assert.Equal(t, "Vendas", tr.T("fr", "sales.title", nil))
}

func TestTranslator_MissingKeyReturnsKey(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	tr := NewTranslator("pt-BR", WithLogger(zap.New(core)))

	assert.Equal(t, "nonexistent.key", tr.T("en", "nonexistent.key", nil))
	assert.Equal(t, "", tr.T("en", "", nil))

	entries := logs.FilterMessage("i18n: missing translation key").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "nonexistent.key", entries[0].ContextMap()["key"])
}

func TestTranslator_EnglishOnlyKeyMissesInPortuguese(t *testing.T) {
	tr := NewTranslator("pt-BR")
	assert.Equal(t, "My Store", tr.T("en", "common.storeName", nil))
	assert.Equal(t, "common.storeName", tr.T("pt-BR", "common.storeName", nil))
}

func TestTranslator_OverrideDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "active.en.toml"), []byte("[common]\nsearch = \"Find\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "active.pt-BR.yaml"), []byte("common:\n  search: Procurar\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644))

	tr := NewTranslator("pt-BR", WithOverrideDir(dir))
	assert.Equal(t, "Find", tr.T("en", "common.search", nil))
	assert.Equal(t, "Procurar", tr.T("pt-BR", "common.search", nil))
	// untouched keys still come from the embedded tables
	assert.Equal(t, "Notifications", tr.T("en", "common.notifications", nil))
}

func TestTranslator_WatchReloads(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "active.en.toml")
	require.NoError(t, os.WriteFile(file, []byte("[common]\nsearch = \"Find\"\n"), 0o644))

	tr := NewTranslator("pt-BR", WithOverrideDir(dir))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tr.Watch(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// give the watcher a moment to register
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte("[common]\nsearch = \"Lookup\"\n"), 0o644))

	assert.Eventually(t, func() bool {
		return tr.T("en", "common.search", nil) == "Lookup"
	}, 3*time.Second, 50*time.Millisecond)
}

func TestTranslator_WatchWithoutDir(t *testing.T) {
	tr := NewTranslator("pt-BR")
	assert.NoError(t, tr.Watch(context.Background()))
}

func TestTranslator_WatchMissingDir(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	tr := NewTranslator("pt-BR",
		WithLogger(zap.New(core)),
		WithOverrideDir(filepath.Join(t.TempDir(), "missing")))

	assert.NoError(t, tr.Watch(context.Background()))
	assert.Equal(t, 1, logs.FilterMessage("i18n: hot reload disabled").Len())
	assert.Equal(t, "Vendas", tr.T("pt-BR", "sales.title", nil))
}

func TestPluralSelector(t *testing.T) {
	assert.Equal(t, 1, pluralSelector(1))
	assert.Equal(t, 2, pluralSelector(0))
	assert.Equal(t, 2, pluralSelector(1.5))
	assert.Equal(t, 2, pluralSelector(-1))

	_, ok := pluralCount(map[string]any{"count": "3"})
	assert.False(t, ok)
	_, ok = pluralCount(nil)
	assert.False(t, ok)
}
