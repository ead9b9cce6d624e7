package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"storedash/internal/domain/entities"
	"storedash/internal/infrastructure/memory"
)

func TestPreferenceStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewPreferenceStore(memory.NewPreferenceRepository(), "client-1", nil, nil)

	_, ok := store.Get(ctx, entities.PreferenceTheme)
	assert.False(t, ok)

	store.Set(ctx, entities.PreferenceTheme, "dark")
	v, ok := store.Get(ctx, entities.PreferenceTheme)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	store.Remove(ctx, entities.PreferenceTheme)
	_, ok = store.Get(ctx, entities.PreferenceTheme)
	assert.False(t, ok)
}

func TestPreferenceStore_SwallowsFailures(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.WarnLevel)
	store := NewPreferenceStore(brokenRepo{}, "client-1", zap.New(core), nil)

	assert.NotPanics(t, func() {
		_, ok := store.Get(ctx, entities.PreferenceLocale)
		assert.False(t, ok)
		store.Set(ctx, entities.PreferenceLocale, "en")
		store.Remove(ctx, entities.PreferenceTheme)
	})

	entries := logs.FilterMessage("preference store unavailable").All()
	assert.Len(t, entries, 3)
	assert.Equal(t, "preference_unavailable", entries[0].ContextMap()["code"])
}

func TestPreferenceStore_AbsentIsNotLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	store := NewPreferenceStore(memory.NewPreferenceRepository(), "client-1", zap.New(core), nil)

	_, ok := store.Get(context.Background(), entities.PreferenceLocale)
	assert.False(t, ok)
	assert.Zero(t, logs.Len())
}
