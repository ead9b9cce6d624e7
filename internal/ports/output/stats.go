package output

import (
	"context"
	"time"

	"storedash/internal/domain/entities"
)

// StatsSource returns the raw numbers behind the stats cards for a period.
type StatsSource interface {
	Snapshot(ctx context.Context, period entities.Period) (entities.StatSnapshot, error)
}

// SalesRepository is the sales ledger used by the database stats source.
type SalesRepository interface {
	Create(ctx context.Context, sale *entities.Sale) error
	Aggregate(ctx context.Context, from, to time.Time) (entities.SalesAggregate, error)
}
