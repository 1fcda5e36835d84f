// Package importer runs the batch import pipeline over newline-separated word lists.
package importer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnenglish-backend/internal/config"
	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

type wordService interface {
	FindByText(ctx context.Context, text string) (*domain.Word, error)
	Upsert(ctx context.Context, w *domain.Word, keepRank bool) domain.Result[domain.Word]
}

type extractor interface {
	Extract(ctx context.Context, word string, filter bool) (*domain.Word, error)
}

type classifier interface {
	Classify(ctx context.Context, word *domain.Word, wordType domain.WordType, collectionID *uuid.UUID) error
	ClassifyLabels(ctx context.Context, word *domain.Word, labels []string, collectionID *uuid.UUID) error
}

// Service imports word lists line by line. Every non-blank input line yields
// exactly one result at the same position: the stored word or the error state
// of that line. A failing line never affects the others.
type Service struct {
	log        *slog.Logger
	words      wordService
	extractor  extractor
	classifier classifier
	cfg        config.ImportConfig
}

// NewService creates a new import Service.
func NewService(
	logger *slog.Logger,
	words wordService,
	extractor extractor,
	classifier classifier,
	cfg config.ImportConfig,
) *Service {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Service{
		log:        logger.With("service", "importer"),
		words:      words,
		extractor:  extractor,
		classifier: classifier,
		cfg:        cfg,
	}
}
