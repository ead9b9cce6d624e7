package discord

import (
	"context"

	"go.uber.org/zap"

	"storedash/internal/ports/input"
)

// LocaleFactory builds a locale context for a Discord user from the locale
// their client reports (e.g. "pt-BR", "en-US").
type LocaleFactory func(ctx context.Context, clientLocale string) input.LocaleUseCase

// Handler handles Discord interactions using use cases.
type Handler struct {
	alerts  input.AlertUseCase
	locales LocaleFactory
	logger  *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(alerts input.AlertUseCase, locales LocaleFactory, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		alerts:  alerts,
		locales: locales,
		logger:  logger,
	}
}
