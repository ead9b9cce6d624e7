package input

import (
	"context"

	"storedash/internal/domain/entities"
)

type StatsUseCase interface {
	Present(ctx context.Context, locale LocaleUseCase, period entities.Period) (StatsView, error)
}

type AlertUseCase interface {
	List(ctx context.Context) ([]entities.Alert, error)
	Digest(ctx context.Context, locale LocaleUseCase) (entities.AlertDigest, error)
	Dispatch(ctx context.Context, locale LocaleUseCase) (int, error)
}

// StatsView is the formatted content of the sales and spending cards.
type StatsView struct {
	Period          entities.Period `json:"period"`
	GrossRevenue    string          `json:"grossRevenue"`
	NetRevenue      string          `json:"netRevenue"`
	SalesCount      int             `json:"salesCount"`
	SalesLabel      string          `json:"salesLabel"`
	Goal            string          `json:"goal"`
	GoalLabel       string          `json:"goalLabel"`
	GoalProgress    float64         `json:"goalProgress"`
	GoalBarWidth    string          `json:"goalBarWidth"`
	SpendingTotal   string          `json:"spendingTotal"`
	AccountsPayable string          `json:"accountsPayable"`
}
