package importer

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

// ImportPlain imports one word per line. Lines are looked up and scraped by
// their WordKey, so "Ice Cream" finds a stored "ice-cream" or "Ice-cream".
// Known words are returned unchanged.
// Unknown words are scraped with filtering, stored with state IMPORT and placed
// into the category of their class in the default collection.
//
// Lookups and scraping run on a bounded worker pool; writes run in line order
// so that repeated words within one batch resolve to the same record.
func (s *Service) ImportPlain(ctx context.Context, lines []string) []domain.Result[domain.Word] {
	results := make([]domain.Result[domain.Word], len(lines))
	extracted := make([]*domain.Word, len(lines))

	var g errgroup.Group
	g.SetLimit(s.cfg.Workers)
	for i, line := range lines {
		g.Go(func() error {
			results[i], extracted[i] = s.resolvePlain(ctx, domain.WordKey(line))
			return nil
		})
	}
	_ = g.Wait()

	for i, w := range extracted {
		if w == nil {
			continue
		}
		results[i] = s.storePlain(ctx, w)
	}

	s.record(ctx, ModePlain, results)
	return results
}

// resolvePlain returns either a final result or a freshly extracted word to store.
func (s *Service) resolvePlain(ctx context.Context, text string) (domain.Result[domain.Word], *domain.Word) {
	known, err := s.words.FindByText(ctx, text)
	switch {
	case err == nil:
		return domain.Ok(known), nil
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Fail[domain.Word](domain.NewStoreError(text, err)), nil
	}

	w, err := s.extractor.Extract(ctx, text, true)
	if err != nil {
		s.log.WarnContext(ctx, "import extraction failed",
			slog.String("word", text),
			slog.String("error", err.Error()),
		)
		return domain.Fail[domain.Word](err), nil
	}
	return domain.Result[domain.Word]{}, w
}

func (s *Service) storePlain(ctx context.Context, w *domain.Word) domain.Result[domain.Word] {
	w.State = domain.StateForImport()

	res := s.words.Upsert(ctx, w, true)
	if !res.OK() || res.Value.Class == "" {
		return res
	}

	if err := s.classifier.ClassifyLabels(ctx, res.Value, []string{res.Value.Class}, nil); err != nil {
		s.log.WarnContext(ctx, "import classification failed",
			slog.String("word", res.Value.Text),
			slog.String("error", err.Error()),
		)
		return domain.Fail[domain.Word](err)
	}
	return res
}
