package input

import (
	"context"
	"time"

	"storedash/internal/domain/entities"
)

type LocaleUseCase interface {
	Current() string
	State() entities.Selection[string]
	SetLocale(ctx context.Context, code string) error
	AvailableLocales() []entities.LocaleDescriptor
	FormatCurrency(amount float64) string
	FormatDate(t time.Time) (string, error)
	FormatRelative(now, t time.Time) string
	T(key string, params map[string]any) string
}
