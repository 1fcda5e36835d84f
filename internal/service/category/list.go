package category

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

// ListCategories returns the visible categories of a collection with their word
// counts. An empty collection name lists every collection. Rare grammatical
// categories are hidden; their words are reachable through Pronouns.
func (s *Service) ListCategories(ctx context.Context, collection string) ([]*domain.Category, error) {
	var collectionID *uuid.UUID
	if collection != "" {
		c, err := s.collections.FindByName(ctx, collection)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return []*domain.Category{}, nil
			}
			return nil, err
		}
		collectionID = &c.ID
	}

	all, err := s.categories.List(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	visible := make([]*domain.Category, 0, len(all))
	for _, c := range all {
		if domain.HiddenCategoryNames[c.Name] {
			continue
		}
		visible = append(visible, c)
	}
	return visible, nil
}

// WordCategories returns every category the word is linked to, hidden ones included.
func (s *Service) WordCategories(ctx context.Context, wordID uuid.UUID) ([]*domain.Category, error) {
	return s.categories.ListByWord(ctx, wordID)
}
