package config

import (
	"os"
	"strings"
)

// parseEnv overlays cfg with environment variables. These are the variables
// the deployment images set, so they win over every other source.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("TELEGRAM_TOKEN"); ok {
		cfg.Token = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("FORM_URL"); ok {
		cfg.FormURL = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("DB_PATH"); ok {
		cfg.DatabaseDSN = strings.TrimSpace(v)
	}
}
