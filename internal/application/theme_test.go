package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storedash/internal/domain/entities"
	"storedash/internal/infrastructure/memory"
	"storedash/internal/ports/output"
)

func newTheme(repo output.PreferenceRepository, os *fakeScheme) *ThemeService {
	return NewThemeService(NewPreferenceStore(repo, "client-1", nil, nil), os, nil, nil)
}

func TestThemeService_InitializeFollowsOS(t *testing.T) {
	os := newFakeScheme(entities.ThemeDark)
	svc := newTheme(memory.NewPreferenceRepository(), os)
	svc.Initialize(context.Background())
	defer svc.Close()

	assert.Equal(t, entities.ThemeDark, svc.Theme())
	assert.False(t, svc.State().IsExplicit())
	assert.Equal(t, "dark", svc.RootClass())
}

func TestThemeService_InitializeAdoptsStored(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPreferenceRepository()
	require.NoError(t, repo.Set(ctx, "client-1", entities.PreferenceTheme, "light"))

	svc := newTheme(repo, newFakeScheme(entities.ThemeDark))
	svc.Initialize(ctx)
	defer svc.Close()

	assert.Equal(t, entities.ThemeLight, svc.Theme())
	assert.True(t, svc.State().IsExplicit())
}

func TestThemeService_InvalidStoredValueFollowsOS(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPreferenceRepository()
	require.NoError(t, repo.Set(ctx, "client-1", entities.PreferenceTheme, "system"))

	svc := newTheme(repo, newFakeScheme(entities.ThemeDark))
	svc.Initialize(ctx)
	defer svc.Close()

	assert.Equal(t, entities.ThemeDark, svc.Theme())
	assert.False(t, svc.State().IsExplicit())
}

func TestThemeService_ToggleTwiceRestores(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPreferenceRepository()
	svc := newTheme(repo, newFakeScheme(entities.ThemeLight))
	svc.Initialize(ctx)
	defer svc.Close()

	assert.Equal(t, entities.ThemeDark, svc.ToggleTheme(ctx))
	assert.True(t, svc.State().IsExplicit())
	stored, err := repo.Get(ctx, "client-1", entities.PreferenceTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", stored)

	assert.Equal(t, entities.ThemeLight, svc.ToggleTheme(ctx))
	assert.True(t, svc.State().IsExplicit())
	stored, err = repo.Get(ctx, "client-1", entities.PreferenceTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", stored)
}

func TestThemeService_ResetToSystem(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPreferenceRepository()
	os := newFakeScheme(entities.ThemeLight)
	svc := newTheme(repo, os)
	svc.Initialize(ctx)
	defer svc.Close()

	svc.ToggleTheme(ctx)
	svc.ToggleTheme(ctx)
	svc.ToggleTheme(ctx)
	os.setQuietly(entities.ThemeLight)

	assert.Equal(t, entities.ThemeLight, svc.ResetToSystemTheme(ctx))
	assert.False(t, svc.State().IsExplicit())
	_, err := repo.Get(ctx, "client-1", entities.PreferenceTheme)
	assert.Error(t, err)

	// the OS value is read at call time
	svc.ToggleTheme(ctx)
	os.setQuietly(entities.ThemeDark)
	assert.Equal(t, entities.ThemeDark, svc.ResetToSystemTheme(ctx))
}

func TestThemeService_ExplicitChoiceBeatsOSChange(t *testing.T) {
	ctx := context.Background()
	os := newFakeScheme(entities.ThemeLight)
	svc := newTheme(memory.NewPreferenceRepository(), os)
	svc.Initialize(ctx)
	defer svc.Close()

	svc.ToggleTheme(ctx) // explicit dark
	os.change(entities.ThemeLight)
	os.change(entities.ThemeDark)
	os.change(entities.ThemeLight)
	assert.Equal(t, entities.ThemeDark, svc.Theme())
	assert.True(t, svc.State().IsExplicit())
}

func TestThemeService_ImplicitFollowsOSChange(t *testing.T) {
	ctx := context.Background()
	os := newFakeScheme(entities.ThemeLight)
	svc := newTheme(memory.NewPreferenceRepository(), os)
	svc.Initialize(ctx)
	defer svc.Close()

	var seen []entities.Theme
	svc.Subscribe(func(th entities.Theme) { seen = append(seen, th) })

	os.change(entities.ThemeDark)
	assert.Equal(t, entities.ThemeDark, svc.Theme())
	assert.False(t, svc.State().IsExplicit())

	// repeated value is not a change
	os.change(entities.ThemeDark)
	assert.Equal(t, []entities.Theme{entities.ThemeDark}, seen)
}

func TestThemeService_CloseReleasesListener(t *testing.T) {
	ctx := context.Background()
	os := newFakeScheme(entities.ThemeLight)
	svc := newTheme(memory.NewPreferenceRepository(), os)

	svc.Initialize(ctx)
	svc.Initialize(ctx)
	assert.Equal(t, 1, os.listenerCount())

	svc.Close()
	svc.Close()
	assert.Zero(t, os.listenerCount())

	os.change(entities.ThemeDark)
	assert.Equal(t, entities.ThemeLight, svc.Theme())
}

func TestThemeService_BrokenStorage(t *testing.T) {
	ctx := context.Background()
	os := newFakeScheme(entities.ThemeDark)
	svc := NewThemeService(NewPreferenceStore(brokenRepo{}, "c", nil, nil), os, nil, nil)
	svc.Initialize(ctx)
	defer svc.Close()

	assert.Equal(t, entities.ThemeDark, svc.Theme())
	assert.Equal(t, entities.ThemeLight, svc.ToggleTheme(ctx))
	assert.Equal(t, entities.ThemeDark, svc.ResetToSystemTheme(ctx))
}
