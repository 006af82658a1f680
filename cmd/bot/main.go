package main

import (
	"context"
	"log"
	"os"

	"github.com/FacuGhub/telegram-bot/internal/bot"
	"github.com/FacuGhub/telegram-bot/internal/bot/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := bot.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}
