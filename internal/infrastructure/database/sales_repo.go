package database

import (
	"context"
	"fmt"
	"time"

	"storedash/internal/domain/entities"
	"storedash/internal/infrastructure/database/sqlc_generated"
	"storedash/internal/ports/output"
)

var _ output.SalesRepository = (*SalesRepository)(nil)

type SalesRepository struct {
	q *sqlc_generated.Queries
}

func NewSalesRepository(q *sqlc_generated.Queries) *SalesRepository {
	return &SalesRepository{q: q}
}

func (r *SalesRepository) Create(ctx context.Context, sale *entities.Sale) error {
	occurredAt := sale.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	row, err := r.q.CreateSale(ctx, sqlc_generated.CreateSaleParams{
		Gross:      sale.Gross,
		Net:        sale.Net,
		OccurredAt: timeToPgtypeTimestamptz(occurredAt),
	})
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	sale.ID = uint(row.ID)
	sale.OccurredAt = occurredAt
	sale.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	return nil
}

// Aggregate sums the sales that occurred in [from, to).
func (r *SalesRepository) Aggregate(ctx context.Context, from, to time.Time) (entities.SalesAggregate, error) {
	row, err := r.q.AggregateSales(ctx, sqlc_generated.AggregateSalesParams{
		FromTime: timeToPgtypeTimestamptz(from),
		ToTime:   timeToPgtypeTimestamptz(to),
	})
	if err != nil {
		return entities.SalesAggregate{}, fmt.Errorf("aggregate sales: %w", err)
	}
	return aggregateToDomain(row), nil
}
