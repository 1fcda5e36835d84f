package word

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

// Parse scrapes text from the dictionary site, stores it with state PARSE
// (AUTO_PARSE when filter is set) and places it into the category of its
// grammatical class in the default collection.
//
// Classification runs after the write and is not part of it: a failure is
// logged and the stored word is still returned.
func (s *Service) Parse(ctx context.Context, text string, filter bool) domain.Result[domain.Word] {
	if err := validateText(text); err != nil {
		return domain.Fail[domain.Word](err)
	}

	extracted, err := s.extractor.Extract(ctx, text, filter)
	if err != nil {
		s.log.ErrorContext(ctx, "parse failed",
			slog.String("word", text),
			slog.String("error", err.Error()),
		)
		return domain.Fail[domain.Word](err)
	}

	res := s.Upsert(ctx, extracted, true)
	if !res.OK() {
		return res
	}
	stored := res.Value

	s.notifier.Notify(ctx, stored.Text)

	if err := s.Classify(ctx, stored); err != nil {
		s.log.WarnContext(ctx, "classification failed",
			slog.String("word", stored.Text),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "word parsed",
		slog.String("word", stored.Text),
		slog.String("state", stored.State.String()),
	)
	return res
}

// Classify places a stored word into the category of its extracted class.
// Words without a class are left unclassified.
func (s *Service) Classify(ctx context.Context, w *domain.Word) error {
	if w.Class == "" {
		return nil
	}
	return s.classifier.ClassifyLabels(ctx, w, []string{w.Class}, nil)
}

// FindOrParse returns the stored word for text, scraping it with filtering
// enabled when it is not known yet. Text is matched by its WordKey.
func (s *Service) FindOrParse(ctx context.Context, text string) domain.Result[domain.Word] {
	text = domain.WordKey(text)
	if err := validateText(text); err != nil {
		return domain.Fail[domain.Word](err)
	}

	w, err := s.words.FindByText(ctx, text)
	switch {
	case err == nil:
		return domain.Ok(w)
	case errors.Is(err, domain.ErrNotFound):
		return s.Parse(ctx, text, true)
	default:
		return domain.Fail[domain.Word](err)
	}
}
