package config

import (
	"flag"
	"os"
	"time"

	"github.com/FacuGhub/telegram-bot/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, so the -c/-config flags consumed by the JSON loader do
// not collide with the flag set here.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-k", "-f", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Token, "k", config.Token, "telegram bot token")
	fs.StringVar(&config.FormURL, "f", config.FormURL, "form-collection endpoint URL")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "comment store location (path or postgres:// DSN)")

	submitTimeout := fs.Int("t", int(config.SubmitTimeout.Seconds()), "form submission timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SubmitTimeout = time.Duration(*submitTimeout) * time.Second
}
