package input

import (
	"context"

	"storedash/internal/domain/entities"
)

type ThemeUseCase interface {
	Theme() entities.Theme
	State() entities.Selection[entities.Theme]
	ToggleTheme(ctx context.Context) entities.Theme
	ResetToSystemTheme(ctx context.Context) entities.Theme
	RootClass() string
}
