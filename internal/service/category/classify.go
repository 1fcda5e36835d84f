package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

// Classify links word to the category of wordType inside the collection
// (default collection when collectionID is nil). Articles, demonstratives and
// existentials are additionally linked to the Pronouns category.
//
// Linking is idempotent: a category whose name the word is already linked to
// is skipped. Every failed (word, category) pair yields a classification error;
// the remaining pairs are still processed and the errors are joined.
func (s *Service) Classify(ctx context.Context, word *domain.Word, wordType domain.WordType, collectionID *uuid.UUID) error {
	if !wordType.IsValid() {
		return domain.NewValidationError("word_type", fmt.Sprintf("unknown word type %q", wordType))
	}

	coll, err := s.resolveCollection(ctx, collectionID)
	if err != nil {
		return domain.NewClassificationError(word.Text, fmt.Errorf("resolve collection: %w", err))
	}

	linked, err := s.linkedNames(ctx, word.ID)
	if err != nil {
		return domain.NewClassificationError(word.Text, fmt.Errorf("list categories: %w", err))
	}

	var errs []error
	for _, name := range targetCategories(wordType) {
		if linked[name] {
			continue
		}
		if err := s.link(ctx, word, name, coll); err != nil {
			s.log.WarnContext(ctx, "classification failed",
				slog.String("word", word.Text),
				slog.String("category", name),
				slog.String("error", err.Error()),
			)
			errs = append(errs, domain.NewClassificationError(word.Text, fmt.Errorf("category %q: %w", name, err)))
			continue
		}
		linked[name] = true
	}
	return errors.Join(errs...)
}

// ClassifyLabels classifies word by grammatical class labels as found on
// dictionary pages. Unknown labels are skipped.
func (s *Service) ClassifyLabels(ctx context.Context, word *domain.Word, labels []string, collectionID *uuid.UUID) error {
	seen := make(map[domain.WordType]bool, len(labels))
	var errs []error
	for _, label := range labels {
		wt, ok := domain.WordTypeByLabel(label)
		if !ok {
			s.log.DebugContext(ctx, "unknown class label skipped",
				slog.String("word", word.Text), slog.String("label", label))
			continue
		}
		if seen[wt] {
			continue
		}
		seen[wt] = true
		if err := s.Classify(ctx, word, wt, collectionID); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// targetCategories lists the category names a word of type t belongs to.
func targetCategories(t domain.WordType) []string {
	names := []string{t.CategoryName()}
	if t.IsRare() {
		names = append(names, domain.WordTypePronoun.CategoryName())
	}
	return names
}

func (s *Service) linkedNames(ctx context.Context, wordID uuid.UUID) (map[string]bool, error) {
	current, err := s.categories.ListByWord(ctx, wordID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(current))
	for _, c := range current {
		names[c.Name] = true
	}
	return names, nil
}

func (s *Service) link(ctx context.Context, word *domain.Word, name string, collectionID uuid.UUID) error {
	cat, err := s.findOrCreate(ctx, name, collectionID)
	if err != nil {
		return err
	}

	exists, err := s.categories.HasLink(ctx, cat.ID, word.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.categories.AddWordLink(ctx, cat.ID, word.ID)
}

func (s *Service) findOrCreate(ctx context.Context, name string, collectionID uuid.UUID) (*domain.Category, error) {
	cat, err := s.categories.FindByName(ctx, name, collectionID)
	if err == nil {
		return cat, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	cat, err = s.categories.Create(ctx, &domain.Category{Name: name, CollectionID: &collectionID})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return s.categories.FindByName(ctx, name, collectionID)
	}
	return cat, err
}
