// Package word implements the single-word operations: on-demand parse,
// find-or-parse, manual creation and promotion, and the deduplicating upsert
// shared with the batch importer.
package word

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	FindByText(ctx context.Context, text string) (*domain.Word, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	List(ctx context.Context, filter domain.WordFilter) ([]*domain.Word, error)
	Count(ctx context.Context, filter domain.WordFilter) (int, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.Word, error)
	Insert(ctx context.Context, w *domain.Word) (*domain.Word, error)
	Update(ctx context.Context, w *domain.Word) (*domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type extractor interface {
	Extract(ctx context.Context, word string, filter bool) (*domain.Word, error)
}

type classifier interface {
	ClassifyLabels(ctx context.Context, word *domain.Word, labels []string, collectionID *uuid.UUID) error
	WordCategories(ctx context.Context, wordID uuid.UUID) ([]*domain.Category, error)
}

type notifier interface {
	Notify(ctx context.Context, word string)
}

type auditLog interface {
	Log(ctx context.Context, rec domain.AuditRecord) error
	ListByWord(ctx context.Context, wordID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the word business logic.
type Service struct {
	log        *slog.Logger
	words      wordRepo
	extractor  extractor
	classifier classifier
	notifier   notifier
	audit      auditLog
	tx         txManager
}

// NewService creates a new word Service.
func NewService(
	logger *slog.Logger,
	words wordRepo,
	extractor extractor,
	classifier classifier,
	notifier notifier,
	audit auditLog,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "word"),
		words:      words,
		extractor:  extractor,
		classifier: classifier,
		notifier:   notifier,
		audit:      audit,
		tx:         tx,
	}
}
