package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Addr          string        `koanf:"addr"`
	Frontend      Frontend      `koanf:"frontend"`
	Google        Google        `koanf:"google"`
	Notifications Notifications `koanf:"notifications"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

type Google struct {
	// Credentials holds the full service account key document (JSON).
	// When empty, the key is read from CredentialsFile instead.
	Credentials     string `koanf:"credentials"`
	CredentialsFile string `koanf:"credentialsfile"`
	CalendarID      string `koanf:"calendarid"`
	Timezone        string `koanf:"timezone"`
}

type Notifications struct {
	SendGrid SendGrid `koanf:"sendgrid"`
	Twilio   Twilio   `koanf:"twilio"`
}

type SendGrid struct {
	APIKey    string `koanf:"apikey"`
	FromEmail string `koanf:"fromemail"`
	FromName  string `koanf:"fromname"`
}

type Twilio struct {
	AccountSID string `koanf:"accountsid"`
	AuthToken  string `koanf:"authtoken"`
	FromNumber string `koanf:"fromnumber"`
}

// CredentialsJSON resolves the service account key: the inline document wins,
// otherwise the key file is read from disk.
func (g Google) CredentialsJSON() ([]byte, error) {
	if g.Credentials != "" {
		return []byte(g.Credentials), nil
	}
	data, err := os.ReadFile(g.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account key file %s: %w", g.CredentialsFile, err)
	}
	return data, nil
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Addr: ":8181",
		Frontend: Frontend{
			Enabled: true,
		},
		Google: Google{
			CredentialsFile: "service-account-key.json",
			CalendarID:      "primary",
			Timezone:        "America/Los_Angeles",
		},
		Notifications: Notifications{
			SendGrid: SendGrid{
				FromName: "Lemon Lot Parking",
			},
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "LEMONLOT_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "LEMONLOT_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	applyWellKnownEnv(&app)

	return app, nil
}

// applyWellKnownEnv honors the plain variable names the integrations document
// themselves, so deployments do not have to duplicate them under the
// LEMONLOT_ prefix.
func applyWellKnownEnv(app *Application) {
	if v := os.Getenv("GOOGLE_SERVICE_ACCOUNT_CREDENTIALS"); v != "" {
		app.Google.Credentials = v
	}
	if v := os.Getenv("GOOGLE_CALENDAR_ID"); v != "" {
		app.Google.CalendarID = v
	}
	if v := os.Getenv("SENDGRID_API_KEY"); v != "" {
		app.Notifications.SendGrid.APIKey = v
	}
	if v := os.Getenv("SENDGRID_FROM_EMAIL"); v != "" {
		app.Notifications.SendGrid.FromEmail = v
	}
	if v := os.Getenv("TWILIO_ACCOUNT_SID"); v != "" {
		app.Notifications.Twilio.AccountSID = v
	}
	if v := os.Getenv("TWILIO_AUTH_TOKEN"); v != "" {
		app.Notifications.Twilio.AuthToken = v
	}
	if v := os.Getenv("TWILIO_FROM_NUMBER"); v != "" {
		app.Notifications.Twilio.FromNumber = v
	}
}
