package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
	"github.com/heartmarshall/learnenglish-backend/internal/metrics"
)

// Mode selects the line format of an import.
type Mode string

const (
	// ModePlain lines hold a bare word that is scraped when unknown.
	ModePlain Mode = "plain"
	// ModeRanked lines hold "word;rank;shortcut" and are never scraped.
	ModeRanked Mode = "ranked"
)

// ParseMode parses an import mode name. An empty name selects ModePlain.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModePlain:
		return ModePlain, nil
	case ModeRanked:
		return ModeRanked, nil
	}
	return "", domain.NewValidationError("mode", fmt.Sprintf("unknown import mode %q", s))
}

// SplitLines splits raw text on LF or CRLF, trims each line and drops blank ones.
func SplitLines(raw string) []string {
	parts := strings.Split(raw, "\n")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}

// Import splits raw into lines and runs them through the pipeline of mode.
func (s *Service) Import(ctx context.Context, raw string, mode Mode) ([]domain.Result[domain.Word], error) {
	lines := SplitLines(raw)
	if s.cfg.MaxLines > 0 && len(lines) > s.cfg.MaxLines {
		return nil, domain.NewValidationError("body", fmt.Sprintf("too many lines (max %d)", s.cfg.MaxLines))
	}

	switch mode {
	case ModePlain:
		return s.ImportPlain(ctx, lines), nil
	case ModeRanked:
		return s.ImportRanked(ctx, lines), nil
	}
	return nil, domain.NewValidationError("mode", fmt.Sprintf("unknown import mode %q", mode))
}

// record updates metrics and logs the summary of a finished import.
func (s *Service) record(ctx context.Context, mode Mode, results []domain.Result[domain.Word]) {
	failed := 0
	for _, r := range results {
		kind := metrics.OutcomeOK
		if !r.OK() {
			failed++
			kind = r.Err.Type
		}
		metrics.ObserveImportItem(string(mode), kind)
	}

	s.log.InfoContext(ctx, "import finished",
		slog.String("mode", string(mode)),
		slog.Int("lines", len(results)),
		slog.Int("failed", failed),
	)
}
