// Package telegram is the chat transport: a long-poll loop over the Bot API
// that feeds inbound messages to the handler and sends its replies back.
package telegram

import (
	"context"
	"fmt"

	"github.com/FacuGhub/telegram-bot/internal/bot/handler"
	"github.com/FacuGhub/telegram-bot/internal/logging"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

const pollTimeoutSeconds = 30

// Bot owns the Bot API connection and the update dispatch loop.
type Bot struct {
	api     *tgbotapi.BotAPI
	handler *handler.Handler
	logger  logging.Logger
}

// NewBot authenticates against the Bot API with the given token.
func NewBot(token string, h *handler.Handler, logger logging.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &Bot{api: api, handler: h, logger: logger}, nil
}

// Run polls for updates until ctx is cancelled. Updates are handled
// sequentially; each one is a self-contained unit of work.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSeconds
	updates := b.api.GetUpdatesChan(u)

	b.logger.Info(ctx, "bot started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Text == "" {
		return
	}

	log := b.logger.With("update", uuid.NewString(), "user_id", msg.From.ID)

	var reply string
	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			reply = b.handler.HandleStart()
		case "comentario":
			reply = b.handler.HandleComment(ctx, msg.From.ID, msg.CommandArguments())
		case "comentarios":
			reply = b.handler.HandleListComments(ctx, msg.From.ID, msg.CommandArguments())
		default:
			return
		}
	} else {
		reply = b.handler.HandleMessage(ctx, msg.From.ID, msg.Text)
	}

	if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		log.Error(ctx, "send reply failed", "error", err)
	}
}
