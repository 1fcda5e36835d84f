package word

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

// Get returns a word by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return s.words.GetByID(ctx, id)
}

// FindByText returns a stored word by its exact text.
func (s *Service) FindByText(ctx context.Context, text string) (*domain.Word, error) {
	return s.words.FindByText(ctx, text)
}

// List returns one page of words ordered by rank, optionally filtered by state.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultPageLimit
	}
	filter := domain.WordFilter{Limit: limit, Offset: (input.Page - 1) * limit}
	if input.State != "" {
		st := domain.WordState(input.State)
		filter.State = &st
	}

	count, err := s.words.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count words: %w", err)
	}
	words, err := s.words.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return &ListResult{Count: count, Words: words}, nil
}

// Categories returns every category the word belongs to.
func (s *Service) Categories(ctx context.Context, id uuid.UUID) ([]*domain.Category, error) {
	if _, err := s.words.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.classifier.WordCategories(ctx, id)
}

// CategoryWords returns the words linked to a category ordered by text.
func (s *Service) CategoryWords(ctx context.Context, categoryID uuid.UUID) ([]*domain.Word, error) {
	words, err := s.words.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list category words: %w", err)
	}
	return words, nil
}

// Create stores a manually entered word. The state defaults to IMPORT.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	w := &domain.Word{
		Text:          input.Text,
		Pronunciation: input.Pronunciation,
		Examples:      input.Examples,
		Sense:         input.Sense,
		State:         input.State,
		Rank:          input.Rank,
		CollectionID:  input.CollectionID,
	}
	if w.State == "" {
		w.State = domain.StateForImport()
	}

	created, err := s.words.Insert(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("create word: %w", err)
	}

	s.log.InfoContext(ctx, "word created", slog.String("word", created.Text))
	return created, nil
}
