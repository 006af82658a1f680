package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "", c.Token)
	assert.Equal(t, "", c.FormURL)
	assert.Equal(t, "/data/app.db", c.DatabaseDSN)
	assert.Equal(t, 10*time.Second, c.SubmitTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "/data/app.db", cfg.DatabaseDSN)
	assert.Equal(t, 10*time.Second, cfg.SubmitTimeout)
}

func TestParseEnv_OverridesEverything(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", " 123456:ABC ")
	t.Setenv("FORM_URL", "https://example.com/formResponse")
	t.Setenv("DB_PATH", "postgres://localhost/bot")

	cfg := LoadConfig()

	want := &Config{
		Token:         "123456:ABC",
		FormURL:       "https://example.com/formResponse",
		DatabaseDSN:   "postgres://localhost/bot",
		SubmitTimeout: 10 * time.Second,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEnv_UnsetVariablesKeepDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	c.Token = "from-flags"

	parseEnv(&c)

	assert.Equal(t, "from-flags", c.Token)
	assert.Equal(t, "/data/app.db", c.DatabaseDSN)
}
