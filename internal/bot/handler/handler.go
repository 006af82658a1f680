// Package handler routes inbound chat text to the parser, the comment store
// and the forwarder, and renders the user-facing replies. It is transport
// agnostic: the Telegram layer hands it (user id, text) pairs and sends back
// whatever string it returns.
package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/FacuGhub/telegram-bot/internal/bot/comments"
	"github.com/FacuGhub/telegram-bot/internal/bot/report"
	"github.com/FacuGhub/telegram-bot/internal/logging"
)

// Forwarder relays a validated record to the external form sink.
type Forwarder interface {
	Submit(ctx context.Context, rec *report.Record) error
}

// Replies shown to the user. Internal failure detail never leaks here; it
// goes to the operator log only.
const (
	replyStart          = "✅ Bot OK. Estoy vivo en el servidor."
	replyInternalError  = "❌ Error interno del bot."
	replyValidation     = "Error de validación."
	replyCommentUsage   = "Usá: /comentario <texto>"
	replyCommentsUsage  = "Usá: /comentarios [N] (ej: /comentarios 20)"
	replyNoComments     = "No hay comentarios guardados."
	replyCommentsHeader = "🗒 Últimos comentarios:"
)

var validationReplies = map[report.Kind]string{
	report.KindFormat:         "Debes enviar 7 u 8 líneas.",
	report.KindDateFormat:     "La fecha debe ser DD-MM-YY.",
	report.KindDateInvalid:    "La fecha no es válida.",
	report.KindQuantityFormat: "La cantidad debe ser un número.",
	report.KindEmptyTrainer:   "Falta el nombre del capacitador.",
	report.KindEmptyChain:     "Falta la cadena.",
	report.KindEmptyZone:      "Falta la zona.",
	report.KindEmptyAddress:   "Falta la dirección.",
	report.KindEmptyQuantity:  "Falta la cantidad.",
	report.KindEmptySellers:   "Faltan vendedores.",
}

const (
	defaultListLimit = 10
	maxListLimit     = 50

	// listings truncate long comments at display time, never in storage
	displayTextLimit = 80
)

// Handler implements the message routing for one bot instance.
type Handler struct {
	parser   *report.Parser
	forward  Forwarder
	comments comments.Repository
	logger   logging.Logger
}

// New wires a Handler from its collaborators.
func New(parser *report.Parser, forward Forwarder, repo comments.Repository, logger logging.Logger) *Handler {
	return &Handler{parser: parser, forward: forward, comments: repo, logger: logger}
}

// HandleStart answers the /start liveness command.
func (h *Handler) HandleStart() string {
	return replyStart
}

// HandleMessage processes one free-form training report. On success the
// record is forwarded and the reply echoes all normalized fields; validation
// failures map to their specific message and anything else collapses to the
// generic internal error.
func (h *Handler) HandleMessage(ctx context.Context, userID int64, text string) string {
	rec, err := h.parser.Parse(text)
	if err != nil {
		var verr *report.ValidationError
		if errors.As(err, &verr) {
			if msg, ok := validationReplies[verr.Kind]; ok {
				return msg
			}
			return replyValidation
		}
		h.logger.Error(ctx, "unexpected parse failure", "user_id", userID, "error", err)
		return replyInternalError
	}

	h.logger.Info(ctx, "record validated",
		"user_id", userID, "date", rec.Date, "trainer", rec.Trainer, "chain", rec.Chain)

	if err := h.forward.Submit(ctx, rec); err != nil {
		h.logger.Error(ctx, "form submission failed", "user_id", userID, "error", err)
		return replyInternalError
	}

	return formatAck(rec)
}

// HandleComment stores args as one comment for the user.
func (h *Handler) HandleComment(ctx context.Context, userID int64, args string) string {
	text := strings.TrimSpace(args)
	if text == "" {
		return replyCommentUsage
	}

	id, err := h.comments.Add(ctx, userID, text)
	if err != nil {
		h.logger.Error(ctx, "add comment failed", "user_id", userID, "error", err)
		return replyInternalError
	}
	return fmt.Sprintf("✅ Guardado (#%d).", id)
}

// HandleListComments lists the user's most recent comments, newest first.
// args optionally carries the count; non-integer input gets the usage reply
// without touching the store.
func (h *Handler) HandleListComments(ctx context.Context, userID int64, args string) string {
	limit := defaultListLimit
	if arg := strings.TrimSpace(args); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return replyCommentsUsage
		}
		limit = clamp(n, 1, maxListLimit)
	}

	rows, err := h.comments.ListRecent(ctx, userID, limit)
	if err != nil {
		h.logger.Error(ctx, "list comments failed", "user_id", userID, "error", err)
		return replyInternalError
	}
	if len(rows) == 0 {
		return replyNoComments
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, replyCommentsHeader)
	for _, c := range rows {
		lines = append(lines, fmt.Sprintf("#%d — %s", c.ID, truncate(c.Text, displayTextLimit)))
	}
	return strings.Join(lines, "\n")
}

func formatAck(rec *report.Record) string {
	notes := rec.Comments
	if notes == "" {
		notes = "-"
	}
	return "✅ Registro cargado correctamente:\n" +
		"Fecha: " + rec.Date + "\n" +
		"Capacitador: " + rec.Trainer + "\n" +
		"Cadena: " + rec.Chain + "\n" +
		"Zona: " + rec.Zone + "\n" +
		"Dirección: " + rec.Address + "\n" +
		"Cantidad: " + rec.Quantity + "\n" +
		"Vendedores: " + rec.Sellers + "\n" +
		"Comentarios: " + notes
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// truncate shortens s to max runes, replacing the tail with "..." when it
// does not fit.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
