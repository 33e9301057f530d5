package notification

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type ServiceImpl struct {
	email    EmailSender
	sms      SMSSender
	location *time.Location
}

func NewService(email EmailSender, sms SMSSender, timezone string) *ServiceImpl {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		log.Warnf("could not load location for timezone %s, falling back to UTC", timezone)
		location = time.UTC
	}
	return &ServiceImpl{email: email, sms: sms, location: location}
}

// ReservationConfirmed sends the confirmation email and, when the customer
// opted in on the vehicle form, a confirmation SMS. Both are best-effort.
func (s *ServiceImpl) ReservationConfirmed(ctx context.Context, reservation Reservation) {
	if reservation.Email != "" && s.email.Enabled() {
		subject := "Your Lemon Lot Parking reservation is confirmed"
		body := fmt.Sprintf(
			"Hello %s,\n\nYour parking spot has been reserved.\n\n"+
				"Reservation Details:\n"+
				"Vehicle: %s (Plate: %s)\n"+
				"Duration: %s\n"+
				"Price: %s\n"+
				"From: %s\n"+
				"Until: %s\n\n"+
				"Thank you for choosing Lemon Lot Parking.",
			reservation.FullName,
			reservation.VehicleColor, reservation.VehiclePlate,
			reservation.DurationLabel,
			reservation.PriceLabel,
			reservation.StartTime.In(s.location).Format("02 Jan 2006 15:04 MST"),
			reservation.EndTime.In(s.location).Format("02 Jan 2006 15:04 MST"),
		)
		if err := s.email.Send(reservation.Email, reservation.FullName, subject, body); err != nil {
			log.Errorf("Reservation %s created but confirmation email to %s failed: %v",
				reservation.EventId, reservation.Email, err)
		}
	}

	if reservation.SMSOptIn && reservation.Phone != "" && s.sms.Enabled() {
		message := fmt.Sprintf("Lemon Lot Parking: your spot is reserved until %s. Details in your email.",
			reservation.EndTime.In(s.location).Format("15:04"))
		if err := s.sms.Send(reservation.Phone, message); err != nil {
			log.Errorf("Reservation %s created but confirmation SMS to %s failed: %v",
				reservation.EventId, reservation.Phone, err)
		}
	}
}
