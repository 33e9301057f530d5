package notification

import (
	"fmt"

	"github.com/lemonlot/parking/internal/config"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	log "github.com/sirupsen/logrus"
)

// SendGridSender sends email through SendGrid. It is disabled cleanly when
// the API key or sender address is missing from configuration.
type SendGridSender struct {
	cfg config.SendGrid
}

func NewSendGridSender(cfg config.SendGrid) *SendGridSender {
	if cfg.APIKey == "" || cfg.FromEmail == "" {
		log.Info("SendGrid is not configured, confirmation emails are disabled")
	}
	return &SendGridSender{cfg: cfg}
}

func (s *SendGridSender) Enabled() bool {
	return s.cfg.APIKey != "" && s.cfg.FromEmail != ""
}

func (s *SendGridSender) Send(toEmail, toName, subject, body string) error {
	if !s.Enabled() {
		return fmt.Errorf("SendGrid is not configured")
	}

	from := mail.NewEmail(s.cfg.FromName, s.cfg.FromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(s.cfg.APIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("unable to send email via SendGrid: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned status %d", response.StatusCode)
	}

	log.Debugf("Confirmation email sent to %s", toEmail)
	return nil
}
