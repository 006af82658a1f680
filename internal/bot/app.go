// Package bot wires configuration, storage, the forwarder and the Telegram
// transport into one runnable application and handles graceful shutdown.
package bot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/FacuGhub/telegram-bot/internal/bot/config"
	"github.com/FacuGhub/telegram-bot/internal/bot/forms"
	"github.com/FacuGhub/telegram-bot/internal/bot/handler"
	"github.com/FacuGhub/telegram-bot/internal/bot/report"
	"github.com/FacuGhub/telegram-bot/internal/bot/storage"
	"github.com/FacuGhub/telegram-bot/internal/bot/telegram"
	"github.com/FacuGhub/telegram-bot/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	bot    *telegram.Bot
}

// NewApp builds the application from cfg. It refuses to start without a
// Telegram token and opens (and migrates) the comment store before the
// transport connects.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	if cfg.Token == "" {
		return nil, errors.New("telegram token is not configured")
	}

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, repo, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	fwd := forms.NewForwarder(cfg.FormURL, cfg.SubmitTimeout, logger)
	h := handler.New(report.NewParser(), fwd, repo, logger)

	tg, err := telegram.NewBot(cfg.Token, h, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{config: cfg, logger: logger, db: db, bot: tg}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts the polling loop and blocks until a signal arrives or the
// transport stops on its own.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "closing store failed", "error", err)
		}
	}()

	err := app.bot.Run(ctx)
	if errors.Is(err, context.Canceled) {
		app.logger.Info(ctx, "Shutting down")
		return nil
	}
	return err
}
