package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// DeleteCategory removes a category together with its word links.
// Classification recreates it on the next matching word.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	s.log.InfoContext(ctx, "category deleted", slog.String("category_id", id.String()))
	return nil
}

// UnlinkWord removes a single word from a category.
func (s *Service) UnlinkWord(ctx context.Context, categoryID, wordID uuid.UUID) error {
	if err := s.categories.RemoveWordLink(ctx, categoryID, wordID); err != nil {
		return fmt.Errorf("unlink word %s from category %s: %w", wordID, categoryID, err)
	}
	return nil
}
