package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

// EnsureDefaultCollections creates the default collections that do not exist yet.
// Safe to call on every startup and from concurrent instances.
func (s *Service) EnsureDefaultCollections(ctx context.Context) error {
	names := domain.DefaultCollections()
	if !slices.Contains(names, s.defaultCollection) {
		names = append(names, s.defaultCollection)
	}

	for _, name := range names {
		created, err := s.findOrCreateCollection(ctx, name)
		if err != nil {
			return fmt.Errorf("ensure collection %q: %w", name, err)
		}
		if created {
			s.log.InfoContext(ctx, "collection created", slog.String("name", name))
		}
	}
	return nil
}

// ListCollections returns every collection ordered by name.
func (s *Service) ListCollections(ctx context.Context) ([]*domain.Collection, error) {
	return s.collections.List(ctx)
}

// resolveCollection returns collectionID when set, otherwise the default collection's id.
func (s *Service) resolveCollection(ctx context.Context, collectionID *uuid.UUID) (uuid.UUID, error) {
	if collectionID != nil {
		return *collectionID, nil
	}
	c, err := s.collections.FindByName(ctx, s.defaultCollection)
	if err == nil {
		return c.ID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return uuid.Nil, err
	}
	if _, err := s.findOrCreateCollection(ctx, s.defaultCollection); err != nil {
		return uuid.Nil, err
	}
	c, err = s.collections.FindByName(ctx, s.defaultCollection)
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID, nil
}

func (s *Service) findOrCreateCollection(ctx context.Context, name string) (created bool, err error) {
	_, err = s.collections.FindByName(ctx, name)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}

	_, err = s.collections.Create(ctx, name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrAlreadyExists):
		return false, nil
	default:
		return false, err
	}
}
