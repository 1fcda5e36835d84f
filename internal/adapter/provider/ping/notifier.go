// Package ping notifies an external endpoint that a word has been (re)parsed.
package ping

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Notifier sends a best-effort GET to <baseURL><word> after a successful parse.
// A Notifier with an empty base URL does nothing.
type Notifier struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewNotifier creates a Notifier. baseURL is used as a prefix, e.g.
// "http://example.com/download/word/all?text=".
func NewNotifier(baseURL string, timeout time.Duration, logger *slog.Logger) *Notifier {
	return &Notifier{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "ping"),
	}
}

// Notify pings the endpoint for word. Failures are logged and never returned.
func (n *Notifier) Notify(ctx context.Context, word string) {
	if n.baseURL == "" {
		return
	}
	if err := n.do(ctx, word); err != nil {
		n.log.WarnContext(ctx, "ping failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
	}
}

func (n *Notifier) do(ctx context.Context, word string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+url.QueryEscape(word), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode >= 400 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
