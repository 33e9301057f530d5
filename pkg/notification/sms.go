package notification

import (
	"fmt"
	"strings"

	"github.com/lemonlot/parking/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender sends SMS through Twilio. It is disabled cleanly when the
// account credentials or sender number are missing from configuration.
type TwilioSender struct {
	cfg    config.Twilio
	client *twilio.RestClient
}

func NewTwilioSender(cfg config.Twilio) *TwilioSender {
	sender := &TwilioSender{cfg: cfg}
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		log.Info("Twilio is not configured, confirmation SMS are disabled")
		return sender
	}
	sender.client = twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return sender
}

func (s *TwilioSender) Enabled() bool {
	return s.client != nil
}

func (s *TwilioSender) Send(toNumber, body string) error {
	if !s.Enabled() {
		return fmt.Errorf("Twilio is not configured")
	}
	if !strings.HasPrefix(toNumber, "+") {
		log.Warnf("Destination number %q is not in E.164 format, the SMS may fail", toNumber)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.cfg.FromNumber)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("unable to send SMS via Twilio: %w", err)
	}

	log.Debugf("Confirmation SMS sent to %s", toNumber)
	return nil
}
