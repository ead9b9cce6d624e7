package entities

import "time"

// Sale is one row of the sales ledger read by the database stats source.
type Sale struct {
	ID         uint
	Gross      float64
	Net        float64
	OccurredAt time.Time
	CreatedAt  time.Time
}

// SalesAggregate sums the ledger over a window.
type SalesAggregate struct {
	Gross float64
	Net   float64
	Count int
}
