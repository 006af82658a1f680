package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/FacuGhub/telegram-bot/internal/flagx"
	"github.com/FacuGhub/telegram-bot/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be specified either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	Token         string         `json:"token"`
	FormURL       string         `json:"form_url"`
	DatabaseDSN   string         `json:"database_dsn"`
	SubmitTimeout timex.Duration `json:"submit_timeout"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file path
// comes from the -c/-config flags; when absent nothing is loaded. Only fields
// present in the file override earlier values. Read or unmarshal errors
// panic, which aborts startup before the bot connects.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Token != "" {
		cfg.Token = jc.Token
	}
	if jc.FormURL != "" {
		cfg.FormURL = jc.FormURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SubmitTimeout.Duration != 0 {
		cfg.SubmitTimeout = time.Duration(jc.SubmitTimeout.Duration)
	}
}
