// Package config loads runtime configuration for the bot.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags).
//  4. Environment variables (see parseEnv), which override everything else
//     so container deployments only need TELEGRAM_TOKEN, FORM_URL and
//     DB_PATH.
//
// Supported flags
//
//	-k string   Telegram bot token
//	-f string   form-collection endpoint URL
//	-d string   comment store location (SQLite path or postgres:// DSN)
//	-t int      form submission timeout, seconds
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "token": "123456:ABC...",
//	  "form_url": "https://docs.google.com/forms/.../formResponse",
//	  "database_dsn": "/data/app.db",
//	  "submit_timeout": "10s"
//	}
package config
