package booking

import (
	"context"
	"time"
)

// Event is a calendar event as the reservation system sees it: a title, a
// free-form description and a concrete time window.
type Event struct {
	UID         string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
}

// Calendar is the write/read gateway to the external calendar provider.
type Calendar interface {
	// CreateEvent inserts a single event and returns the provider-issued id.
	// It is not idempotent: calling it twice with the same event creates two
	// provider events.
	CreateEvent(ctx context.Context, event Event) (string, error)
	// ListUpcoming returns events starting at or after from, ordered by start
	// time ascending, capped at max entries. Recurring events are expanded to
	// single occurrences.
	ListUpcoming(ctx context.Context, from time.Time, max int64) ([]Event, error)
}
