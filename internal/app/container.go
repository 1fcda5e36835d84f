// Package app wires configuration, storage, services and transport together.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/learnenglish-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/learnenglish-backend/internal/adapter/postgres/audit"
	categoryrepo "github.com/heartmarshall/learnenglish-backend/internal/adapter/postgres/category"
	collectionrepo "github.com/heartmarshall/learnenglish-backend/internal/adapter/postgres/collection"
	wordrepo "github.com/heartmarshall/learnenglish-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/learnenglish-backend/internal/adapter/provider/ping"
	"github.com/heartmarshall/learnenglish-backend/internal/adapter/scraper"
	"github.com/heartmarshall/learnenglish-backend/internal/config"
	"github.com/heartmarshall/learnenglish-backend/internal/service/category"
	"github.com/heartmarshall/learnenglish-backend/internal/service/extraction"
	"github.com/heartmarshall/learnenglish-backend/internal/service/importer"
	"github.com/heartmarshall/learnenglish-backend/internal/service/word"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/learnenglish-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs and health endpoints.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// Container holds the wired services shared by the server and the importer CLI.
type Container struct {
	Pool       *pgxpool.Pool
	Fetcher    *scraper.Fetcher
	Categories *category.Service
	Words      *word.Service
	Importer   *importer.Service
}

// NewContainer connects to the database, applies migrations when enabled,
// builds every service and makes sure the default collections exist.
// The caller owns the returned pool.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	words := wordrepo.New(pool)
	categories := categoryrepo.New(pool)
	collections := collectionrepo.New(pool)
	audit := auditrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	fetcher := scraper.NewFetcher(cfg.Scraper, logger)
	engine := extraction.NewEngine(logger, fetcher, cfg.Scraper)
	notifier := ping.NewNotifier(cfg.Scraper.PingURL, cfg.Scraper.Timeout, logger)

	categorySvc := category.NewService(logger, categories, collections, cfg.Import.DefaultCollection)
	wordSvc := word.NewService(logger, words, engine, categorySvc, notifier, audit, txm)
	importSvc := importer.NewService(logger, wordSvc, engine, categorySvc, cfg.Import)

	if err := categorySvc.EnsureDefaultCollections(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure default collections: %w", err)
	}

	return &Container{
		Pool:       pool,
		Fetcher:    fetcher,
		Categories: categorySvc,
		Words:      wordSvc,
		Importer:   importSvc,
	}, nil
}

// Close releases the database pool.
func (c *Container) Close() {
	c.Pool.Close()
}
