// Package timex provides a time.Duration wrapper for JSON configuration
// files.
package timex

import (
	"encoding/json"
	"errors"
	"time"
)

// Duration unmarshals from JSON either as a "10s"-style string or as integer
// nanoseconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
	default:
		return errors.New("invalid duration")
	}
	return nil
}
