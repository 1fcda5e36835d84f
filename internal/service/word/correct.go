package word

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
	"github.com/heartmarshall/learnenglish-backend/pkg/ctxutil"
)

const historyLimit = 50

// Correct applies a manual edit to a word and marks it CORRECT.
// This is the only operation that assigns the CORRECT state. The edit and its
// audit record are written in one transaction.
func (s *Service) Correct(ctx context.Context, input CorrectInput) (*domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Word
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		w, err := s.words.GetByID(ctx, input.ID)
		if err != nil {
			return err
		}

		changes := map[string]any{"state": string(w.State)}
		if input.Pronunciation != nil {
			w.Pronunciation = input.Pronunciation
			changes["pronunciation"] = input.Pronunciation
		}
		if input.Examples != nil {
			w.Examples = input.Examples
			changes["examples"] = input.Examples
		}
		if input.Sense != nil {
			w.Sense = input.Sense
			changes["sense"] = input.Sense
		}
		if input.Rank != nil {
			w.Rank = *input.Rank
			changes["rank"] = *input.Rank
		}
		domain.Promote(w)

		if updated, err = s.words.Update(ctx, w); err != nil {
			return err
		}
		return s.audit.Log(ctx, auditRecord(ctx, updated, domain.AuditActionCorrect, changes))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word promoted", slog.String("word", updated.Text))
	return updated, nil
}

// Delete removes a word and its category links, recording who deleted it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		w, err := s.words.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.words.Delete(ctx, id); err != nil {
			return err
		}
		return s.audit.Log(ctx, auditRecord(ctx, w, domain.AuditActionDelete, nil))
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "word deleted", slog.String("word_id", id.String()))
	return nil
}

// History returns the administrative changes of a word, newest first.
// It also works for words that no longer exist.
func (s *Service) History(ctx context.Context, id uuid.UUID) ([]domain.AuditRecord, error) {
	return s.audit.ListByWord(ctx, id, historyLimit)
}

func auditRecord(ctx context.Context, w *domain.Word, action domain.AuditAction, changes map[string]any) domain.AuditRecord {
	subject, _ := ctxutil.UserIDFromCtx(ctx)
	return domain.AuditRecord{
		Subject:  subject,
		WordID:   w.ID,
		WordText: w.Text,
		Action:   action,
		Changes:  changes,
	}
}
