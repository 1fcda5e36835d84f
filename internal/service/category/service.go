// Package category places words into grammatical categories and manages
// the default collections.
package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

type categoryRepo interface {
	FindByName(ctx context.Context, name string, collectionID uuid.UUID) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	List(ctx context.Context, collectionID *uuid.UUID) ([]*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// M2M: category <-> word
	ListByWord(ctx context.Context, wordID uuid.UUID) ([]*domain.Category, error)
	HasLink(ctx context.Context, categoryID, wordID uuid.UUID) (bool, error)
	AddWordLink(ctx context.Context, categoryID, wordID uuid.UUID) error
	RemoveWordLink(ctx context.Context, categoryID, wordID uuid.UUID) error
}

type collectionRepo interface {
	FindByName(ctx context.Context, name string) (*domain.Collection, error)
	Create(ctx context.Context, name string) (*domain.Collection, error)
	List(ctx context.Context) ([]*domain.Collection, error)
}

// Service classifies words into categories.
type Service struct {
	categories        categoryRepo
	collections       collectionRepo
	defaultCollection string
	log               *slog.Logger
}

// NewService creates a new category Service. Words classified without an
// explicit collection land in defaultCollection.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	collections collectionRepo,
	defaultCollection string,
) *Service {
	if defaultCollection == "" {
		defaultCollection = domain.CollectionBasic
	}
	return &Service{
		categories:        categories,
		collections:       collections,
		defaultCollection: defaultCollection,
		log:               log.With("service", "category"),
	}
}
