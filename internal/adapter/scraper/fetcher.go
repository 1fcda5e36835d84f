// Package scraper fetches remote HTML pages and queries them with CSS selectors.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/learnenglish-backend/internal/config"
	"github.com/heartmarshall/learnenglish-backend/internal/metrics"
)

// maxBodySize caps the number of bytes read from a single page.
const maxBodySize = 4 << 20

// ErrStatus is returned when the remote answers with a non-200 status.
var ErrStatus = errors.New("unexpected status")

// Fetcher downloads HTML documents with a bounded timeout and a single retry on 5xx.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	retryDelay time.Duration
	log        *slog.Logger
}

// NewFetcher creates a Fetcher from the scraper configuration.
func NewFetcher(cfg config.ScraperConfig, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
		retryDelay: cfg.RetryDelay,
		log:        logger.With("adapter", "scraper"),
	}
}

// FetchDocument downloads and parses the page at rawURL.
func (f *Fetcher) FetchDocument(ctx context.Context, rawURL string) (*Document, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("scraper: parse url: %w", err)
	}

	start := time.Now()
	doc, err := f.fetch(ctx, u)
	metrics.ObserveFetch(u.Host, err, time.Since(start))
	if err != nil {
		f.log.WarnContext(ctx, "fetch failed", slog.String("url", rawURL), slog.String("error", err.Error()))
		return nil, err
	}

	f.log.DebugContext(ctx, "fetched document", slog.String("url", rawURL), slog.Duration("elapsed", time.Since(start)))
	return doc, nil
}

func (f *Fetcher) fetch(ctx context.Context, u *url.URL) (*Document, error) {
	resp, err := f.doWithRetry(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("scraper: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scraper: %w %d", ErrStatus, resp.StatusCode)
	}

	doc, err := Parse(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("scraper: %w", err)
	}
	doc.URL = resp.Request.URL.String()
	return doc, nil
}

func (f *Fetcher) newRequest(ctx context.Context, u *url.URL) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/html")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	return req, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (f *Fetcher) doWithRetry(ctx context.Context, u *url.URL) (*http.Response, error) {
	req, err := f.newRequest(ctx, u)
	if err != nil {
		return nil, err
	}
	resp, err := f.httpClient.Do(req)

	shouldRetry := err != nil || resp.StatusCode >= 500
	if !shouldRetry {
		return resp, nil
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, ctx.Err()
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	f.log.WarnContext(ctx, "scraper retry", slog.String("url", u.String()), slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(f.retryDelay):
	}

	req, err = f.newRequest(ctx, u)
	if err != nil {
		return nil, err
	}
	return f.httpClient.Do(req)
}

// Ping sends a single HEAD request to rawURL. Any status below 500 counts as reachable.
func (f *Fetcher) Ping(ctx context.Context, rawURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return fmt.Errorf("scraper: create ping request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("scraper: ping: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("scraper: ping: %w %d", ErrStatus, resp.StatusCode)
	}
	return nil
}
