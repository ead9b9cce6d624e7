package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"storedash/internal/domain/entities"
	"storedash/internal/infrastructure/database/sqlc_generated"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// timeToPgtypeTimestamptz maps the zero time to NULL.
func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func aggregateToDomain(row sqlc_generated.AggregateSalesRow) entities.SalesAggregate {
	return entities.SalesAggregate{
		Gross: row.Gross,
		Net:   row.Net,
		Count: int(row.SalesCount),
	}
}
