package word

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

// Upsert stores w keyed by its text, compared ignoring case. A new text is
// inserted; for a known text the stored id, spelling and collection are carried
// over and the content and state are overwritten. The rank is overwritten
// unless keepRank is set, in which case the stored rank stays.
//
// The extraction-only Class of w is preserved on the returned word.
func (s *Service) Upsert(ctx context.Context, w *domain.Word, keepRank bool) domain.Result[domain.Word] {
	existing, err := s.words.FindByText(ctx, w.Text)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.Fail[domain.Word](domain.NewStoreError(w.Text, err))
	}

	var stored *domain.Word
	if existing == nil {
		stored, err = s.words.Insert(ctx, w)
	} else {
		if existing.State.IsTrusted() && !w.State.IsTrusted() {
			s.log.WarnContext(ctx, "overwriting verified word",
				slog.String("word", w.Text),
				slog.String("state", w.State.String()),
			)
		}
		w.ID = existing.ID
		w.Text = existing.Text
		w.CollectionID = existing.CollectionID
		if keepRank {
			w.Rank = existing.Rank
		}
		stored, err = s.words.Update(ctx, w)
	}
	if err != nil {
		return domain.Fail[domain.Word](domain.NewStoreError(w.Text, err))
	}

	stored.Class = w.Class
	return domain.Ok(stored)
}
