package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

// rankedLine matches "word;rank;shortcut", e.g. "table;120;n".
var rankedLine = regexp.MustCompile(`^([A-Za-z]\w*);(\d+);([a-z])$`)

// ImportRanked imports "word;rank;shortcut" lines sequentially. Words are
// capitalized; new words are stored with the rank and state IMPORT, known words
// (matched ignoring case) get their rank updated, a rank of 0 included. Each word is then placed into the category of the
// shortcut's word type in the default collection.
//
// A classification failure is reported for its line while the word stays stored.
func (s *Service) ImportRanked(ctx context.Context, lines []string) []domain.Result[domain.Word] {
	results := make([]domain.Result[domain.Word], len(lines))
	for i, line := range lines {
		results[i] = s.importRankedLine(ctx, line)
	}
	s.record(ctx, ModeRanked, results)
	return results
}

func (s *Service) importRankedLine(ctx context.Context, line string) domain.Result[domain.Word] {
	text, rank, wordType, err := parseRankedLine(line)
	if err != nil {
		return domain.Fail[domain.Word](err)
	}

	w, err := s.words.FindByText(ctx, text)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		w = &domain.Word{Text: text, State: domain.StateForImport()}
	case err != nil:
		return domain.Fail[domain.Word](domain.NewStoreError(text, err))
	}
	w.Rank = rank

	res := s.words.Upsert(ctx, w, false)
	if !res.OK() {
		return res
	}

	if err := s.classifier.Classify(ctx, res.Value, wordType, nil); err != nil {
		s.log.WarnContext(ctx, "import classification failed",
			slog.String("word", text),
			slog.String("word_type", wordType.String()),
			slog.String("error", err.Error()),
		)
		return domain.Fail[domain.Word](err)
	}
	return res
}

// parseRankedLine splits a ranked line into the capitalized word, its rank and word type.
func parseRankedLine(line string) (string, int, domain.WordType, error) {
	m := rankedLine.FindStringSubmatch(line)
	if m == nil {
		return "", 0, "", domain.NewValidationError("line", fmt.Sprintf("malformed line %q, expected word;rank;type", line))
	}

	text := domain.Capitalize(m[1])
	rank, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, "", domain.NewValidationError("rank", fmt.Sprintf("rank out of range for word %s", text))
	}
	wordType, ok := domain.WordTypeByShortcut(m[3])
	if !ok {
		return "", 0, "", domain.NewValidationError("word_type", fmt.Sprintf("wrong word type shortcut %q for word %s", m[3], text))
	}
	return text, rank, wordType, nil
}
