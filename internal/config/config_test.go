package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.NoError(t, err)
	assert.Equal(t, ":8181", cfg.Addr)
	assert.True(t, cfg.Frontend.Enabled)
	assert.Equal(t, "service-account-key.json", cfg.Google.CredentialsFile)
	assert.Equal(t, "primary", cfg.Google.CalendarID)
	assert.Equal(t, "America/Los_Angeles", cfg.Google.Timezone)
}

func TestLoad_YamlFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	content := []byte("addr: \":9090\"\ngoogle:\n  calendarid: \"team-calendar\"\n")
	assert.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)

	assert.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "team-calendar", cfg.Google.CalendarID)
	// Untouched keys keep their defaults.
	assert.Equal(t, "America/Los_Angeles", cfg.Google.Timezone)
}

func TestLoad_PrefixedEnvOverrides(t *testing.T) {
	t.Setenv("LEMONLOT_GOOGLE_TIMEZONE", "Europe/Warsaw")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.NoError(t, err)
	assert.Equal(t, "Europe/Warsaw", cfg.Google.Timezone)
}

func TestLoad_WellKnownEnvNames(t *testing.T) {
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_CREDENTIALS", `{"client_email":"svc@example.iam.gserviceaccount.com"}`)
	t.Setenv("GOOGLE_CALENDAR_ID", "lot-calendar")
	t.Setenv("SENDGRID_API_KEY", "SG.test")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.NoError(t, err)
	assert.Equal(t, "lot-calendar", cfg.Google.CalendarID)
	assert.Contains(t, cfg.Google.Credentials, "svc@example.iam.gserviceaccount.com")
	assert.Equal(t, "SG.test", cfg.Notifications.SendGrid.APIKey)
	assert.Equal(t, "AC123", cfg.Notifications.Twilio.AccountSID)
}

func TestCredentialsJSON_InlineWinsOverFile(t *testing.T) {
	google := Google{Credentials: `{"client_email":"inline"}`, CredentialsFile: "does-not-exist.json"}

	data, err := google.CredentialsJSON()

	assert.NoError(t, err)
	assert.Contains(t, string(data), "inline")
}

func TestCredentialsJSON_FallsBackToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{"client_email":"from-file"}`), 0o600))

	google := Google{CredentialsFile: path}
	data, err := google.CredentialsJSON()

	assert.NoError(t, err)
	assert.Contains(t, string(data), "from-file")
}

func TestCredentialsJSON_MissingFile(t *testing.T) {
	google := Google{CredentialsFile: filepath.Join(t.TempDir(), "missing.json")}

	_, err := google.CredentialsJSON()

	assert.Error(t, err)
}
