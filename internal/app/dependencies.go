package app

import (
	"context"
	"strings"

	"github.com/lemonlot/parking/internal/config"
	"github.com/lemonlot/parking/internal/utils"
	"github.com/lemonlot/parking/pkg/booking"
	"github.com/lemonlot/parking/pkg/google"
	"github.com/lemonlot/parking/pkg/notification"
	"github.com/lemonlot/parking/pkg/reservation"
	"github.com/lemonlot/parking/pkg/vehicle"
	"github.com/lemonlot/parking/pkg/web"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Calendar       booking.Calendar
	BookingService booking.Service
	BookingHandler *booking.Handler

	VehicleStore vehicle.Store

	EventSubmitter reservation.EventSubmitter
	FlowRegistry   *web.FlowRegistry

	EmailSender notification.EmailSender
	SMSSender   notification.SMSSender
	Notifier    notification.Notifier

	WebHandler *web.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(ctx context.Context, cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	calendar, err := google.NewCalendar(ctx, cfg.Google)
	if err != nil {
		return nil, err
	}
	deps.Calendar = calendar
	deps.BookingService = booking.NewService(deps.Calendar, deps.Clock)
	deps.BookingHandler = booking.NewHandler(deps.BookingService)

	deps.VehicleStore = vehicle.NewMemoryStore()

	// The flow talks to the event endpoint the same way the browser client
	// did: over HTTP, through the submission contract.
	deps.EventSubmitter = reservation.NewClient(endpointBaseURL(cfg.Addr))
	deps.FlowRegistry = web.NewFlowRegistry(func(record *vehicle.Record) *reservation.Flow {
		return reservation.NewFlow(record, deps.EventSubmitter, deps.Clock)
	})

	deps.EmailSender = notification.NewSendGridSender(cfg.Notifications.SendGrid)
	deps.SMSSender = notification.NewTwilioSender(cfg.Notifications.Twilio)
	deps.Notifier = notification.NewService(deps.EmailSender, deps.SMSSender, cfg.Google.Timezone)

	webHandler, err := web.NewHandler(deps.VehicleStore, deps.FlowRegistry, deps.Notifier)
	if err != nil {
		return nil, err
	}
	deps.WebHandler = webHandler

	return deps, nil
}

func endpointBaseURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://127.0.0.1" + addr
	}
	return "http://" + addr
}
