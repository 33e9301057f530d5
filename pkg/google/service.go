package google

import (
	"context"
	"fmt"

	appconfig "github.com/lemonlot/parking/internal/config"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// NewCalendar builds a Calendar gateway authenticated with the service
// account key from the given configuration. The configuration is resolved
// once at startup and injected here; no credential state lives at package
// scope.
func NewCalendar(ctx context.Context, cfg appconfig.Google) (*Calendar, error) {
	key, err := cfg.CredentialsJSON()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := google.JWTConfigFromJSON(key, gcal.CalendarScope)
	if err != nil {
		err := fmt.Errorf("unable to parse service account credentials: %v", err)
		log.Error(err)
		return nil, err
	}

	service, err := gcal.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		err := fmt.Errorf("unable to create Calendar client: %v", err)
		log.Error(err)
		return nil, err
	}

	log.Infof("Google Calendar client ready (calendar: %s, timezone: %s)", cfg.CalendarID, cfg.Timezone)
	return newGoogleCalendar(service, cfg.CalendarID, cfg.Timezone), nil
}
