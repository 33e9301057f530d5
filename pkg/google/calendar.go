package google

import (
	"context"
	"fmt"
	"time"

	"github.com/lemonlot/parking/pkg/booking"
	log "github.com/sirupsen/logrus"
	gcal "google.golang.org/api/calendar/v3"
)

// Calendar implements booking.Calendar on top of the Google Calendar API.
type Calendar struct {
	service    *gcal.Service
	calendarId string
	timezone   string
}

func newGoogleCalendar(service *gcal.Service, calendarId string, timezone string) *Calendar {
	return &Calendar{
		service:    service,
		calendarId: calendarId,
		timezone:   timezone,
	}
}

func (c *Calendar) CreateEvent(ctx context.Context, event booking.Event) (string, error) {
	log.Debugf("Adding event: %s, to calendar: %s", event.Summary, c.calendarId)

	result, err := c.service.Events.Insert(c.calendarId, &gcal.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &gcal.EventDateTime{
			DateTime: event.StartTime.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: event.EndTime.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
	}).Context(ctx).Do()

	if err != nil {
		err := fmt.Errorf("unable to insert event in Google Calendar: %v", err)
		log.Error(err)
		return "", err
	}

	return result.Id, nil
}

func (c *Calendar) ListUpcoming(ctx context.Context, from time.Time, max int64) ([]booking.Event, error) {
	googleEvents, err := c.service.Events.List(c.calendarId).
		TimeMin(from.Format(time.RFC3339)).
		MaxResults(max).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()

	if err != nil {
		err := fmt.Errorf("unable to retrieve events from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}

	return googleEventsToEvents(googleEvents.Items), nil
}

func googleEventsToEvents(googleEvents []*gcal.Event) []booking.Event {
	events := make([]booking.Event, 0, len(googleEvents))
	for _, item := range googleEvents {
		// All-day events carry a date only; Start.DateTime is empty then and
		// the parsed time stays zero.
		startTime, _ := time.Parse(time.RFC3339, item.Start.DateTime)
		endTime, _ := time.Parse(time.RFC3339, item.End.DateTime)

		events = append(events, booking.Event{
			UID:         item.Id,
			Summary:     item.Summary,
			Description: item.Description,
			StartTime:   startTime,
			EndTime:     endTime,
		})
	}
	return events
}
