package providers

import (
	"dsatrack/internal/structures"
	"time"
	_ "time/tzdata"
)

// Clock supplies "now" in the configured analytics location so that every
// calendar-day computation in a request agrees on what today is.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type systemClock struct {
	loc *time.Location
}

func (c *systemClock) Now() time.Time            { return time.Now().In(c.loc) }
func (c *systemClock) Location() *time.Location { return c.loc }

func NewClockProvider(conf *structures.Config) Clock {
	return &systemClock{loc: conf.Location()}
}

// FixedClock is a Clock frozen at a single instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

func (c FixedClock) Location() *time.Location {
	if c.At.Location() == nil {
		return time.UTC
	}
	return c.At.Location()
}
