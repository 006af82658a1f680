package config

import "time"

// Config holds runtime settings for the bot.
//
// Fields:
//   - Token: Telegram bot token. Required; the process refuses to start
//     without it.
//   - FormURL: form-collection endpoint for validated records. Empty means
//     records are validated and acknowledged but never forwarded.
//   - DatabaseDSN: comment store location. A plain path is a SQLite file;
//     a postgres:// DSN selects PostgreSQL.
//   - SubmitTimeout: per-request timeout for form submissions.
type Config struct {
	Token         string
	FormURL       string
	DatabaseDSN   string
	SubmitTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults. The token has no default
// on purpose.
func (c *Config) LoadDefaults() {
	c.Token = ""
	c.FormURL = ""
	c.DatabaseDSN = "/data/app.db"
	c.SubmitTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), command-line flags and finally environment variables.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	parseEnv(cfg)
	return cfg
}
