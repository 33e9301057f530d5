package booking

import (
	"context"
	"fmt"

	"github.com/lemonlot/parking/internal/utils"
	log "github.com/sirupsen/logrus"
)

// maxUpcomingEvents caps the listing endpoint.
const maxUpcomingEvents = 20

type Service interface {
	CreateEvent(ctx context.Context, event Event) (string, error)
	UpcomingEvents(ctx context.Context) ([]Event, error)
}

type ServiceImpl struct {
	calendar Calendar
	clock    utils.Clock
}

func NewService(calendar Calendar, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{calendar: calendar, clock: clock}
}

func (s *ServiceImpl) CreateEvent(ctx context.Context, event Event) (string, error) {
	log.Debugf("Creating calendar event: %s (%s - %s)", event.Summary, event.StartTime, event.EndTime)
	eventId, err := s.calendar.CreateEvent(ctx, event)
	if err != nil {
		return "", fmt.Errorf("unable to create event in external calendar: %w", err)
	}
	return eventId, nil
}

func (s *ServiceImpl) UpcomingEvents(ctx context.Context) ([]Event, error) {
	events, err := s.calendar.ListUpcoming(ctx, s.clock.Now(), maxUpcomingEvents)
	if err != nil {
		return nil, fmt.Errorf("unable to list events from external calendar: %w", err)
	}
	return events, nil
}
