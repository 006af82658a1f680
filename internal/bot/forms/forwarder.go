// Package forms forwards validated training records to the external
// form-collection endpoint as a single form-encoded POST.
package forms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/FacuGhub/telegram-bot/internal/bot/report"
	"github.com/FacuGhub/telegram-bot/internal/logging"
)

// Field identifiers assigned by the external form. They only change if the
// form itself is rebuilt.
const (
	fieldDate     = "entry.728470323"
	fieldTrainer  = "entry.1492019641"
	fieldChain    = "entry.1011740523"
	fieldZone     = "entry.959735072"
	fieldAddress  = "entry.1569623492"
	fieldQuantity = "entry.1326869635"
	fieldSellers  = "entry.1441118373"
	fieldComments = "entry.1960523388"
)

// Forwarder submits records to a configured endpoint. With an empty URL every
// Submit is a logged no-op, which keeps the bot usable in local-only mode.
type Forwarder struct {
	url    string
	client *http.Client
	logger logging.Logger
}

// NewForwarder returns a Forwarder posting to url with the given per-request
// timeout. An empty url disables submission.
func NewForwarder(url string, timeout time.Duration, logger logging.Logger) *Forwarder {
	return &Forwarder{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Submit maps the record's eight fields onto the external form identifiers
// and posts them. A transport failure or a non-2xx status is returned to the
// caller; there is no retry.
func (f *Forwarder) Submit(ctx context.Context, rec *report.Record) error {
	if f.url == "" {
		f.logger.Warn(ctx, "form url not configured, record not forwarded")
		return nil
	}

	payload := url.Values{
		fieldDate:     {rec.Date},
		fieldTrainer:  {rec.Trainer},
		fieldChain:    {rec.Chain},
		fieldZone:     {rec.Zone},
		fieldAddress:  {rec.Address},
		fieldQuantity: {rec.Quantity},
		fieldSellers:  {rec.Sellers},
		fieldComments: {rec.Comments},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, strings.NewReader(payload.Encode()))
	if err != nil {
		return fmt.Errorf("build form request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("post form: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("form submission failed: %s", resp.Status)
	}
	return nil
}
