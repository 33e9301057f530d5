package notification

import (
	"context"
	"time"
)

// Reservation carries the details a confirmation message needs. Card data is
// deliberately absent.
type Reservation struct {
	FullName      string
	Email         string
	Phone         string
	DurationLabel string
	PriceLabel    string
	PaymentMethod string
	VehicleColor  string
	VehiclePlate  string
	StartTime     time.Time
	EndTime       time.Time
	EventId       string
	SMSOptIn      bool
}

// Notifier sends best-effort confirmations after a successful reservation.
// Failures are logged and never propagate to the reservation outcome.
type Notifier interface {
	ReservationConfirmed(ctx context.Context, reservation Reservation)
}

// EmailSender delivers a plain-text confirmation email.
type EmailSender interface {
	Enabled() bool
	Send(toEmail, toName, subject, body string) error
}

// SMSSender delivers a short confirmation text message.
type SMSSender interface {
	Enabled() bool
	Send(toNumber, body string) error
}
