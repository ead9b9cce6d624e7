package tz

import (
	"fmt"
	"time"

	// Embedded zone database so containers without /usr/share/zoneinfo work.
	_ "time/tzdata"
)

// Default is the display time zone used when none is configured.
const Default = "America/Sao_Paulo"

// Load resolves an IANA zone name. An empty name means Default.
func Load(name string) (*time.Location, error) {
	if name == "" {
		name = Default
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %s: %w", name, err)
	}
	return loc, nil
}

// StartOfDay returns local midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
