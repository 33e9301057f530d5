package booking

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

// StubCalendar is an in-memory Calendar for tests.
type StubCalendar struct {
	Events      []Event
	InsertCalls int
	ListCalls   int
	Err         error
}

func NewStubCalendar() *StubCalendar {
	return &StubCalendar{}
}

func (c *StubCalendar) CreateEvent(ctx context.Context, event Event) (string, error) {
	c.InsertCalls++
	if c.Err != nil {
		return "", c.Err
	}
	event.UID = uuid.NewString()
	c.Events = append(c.Events, event)
	return event.UID, nil
}

func (c *StubCalendar) ListUpcoming(ctx context.Context, from time.Time, max int64) ([]Event, error) {
	c.ListCalls++
	if c.Err != nil {
		return nil, c.Err
	}

	var events []Event
	for _, event := range c.Events {
		if !event.StartTime.Before(from) {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
	if int64(len(events)) > max {
		events = events[:max]
	}
	return events, nil
}

func (c *StubCalendar) Cleanup() {
	c.Events = nil
	c.InsertCalls = 0
	c.ListCalls = 0
	c.Err = nil
}
