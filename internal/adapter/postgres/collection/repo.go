// Package collection implements the Collection repository using PostgreSQL.
package collection

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/learnenglish-backend/internal/adapter/postgres"
	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

type row struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides collection persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new collection repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// FindByName returns the collection with this name.
// Returns domain.ErrNotFound when absent.
func (r *Repo) FindByName(ctx context.Context, name string) (*domain.Collection, error) {
	sql, args, err := postgres.Builder().Select("id", "name", "created_at").From("collections").
		Where(sq.Eq{"name": name}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find collection: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "collection", name)
	}
	return &domain.Collection{ID: dst.ID, Name: dst.Name, CreatedAt: dst.CreatedAt}, nil
}

// Create inserts a collection and returns the persisted row.
// Returns domain.ErrAlreadyExists when the name is taken.
func (r *Repo) Create(ctx context.Context, name string) (*domain.Collection, error) {
	sql, args, err := postgres.Builder().Insert("collections").
		Columns("id", "name").
		Values(uuid.New(), name).
		Suffix("RETURNING id, name, created_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create collection: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "collection", name)
	}
	return &domain.Collection{ID: dst.ID, Name: dst.Name, CreatedAt: dst.CreatedAt}, nil
}

// List returns all collections ordered by name.
func (r *Repo) List(ctx context.Context) ([]*domain.Collection, error) {
	sql, args, err := postgres.Builder().Select("id", "name", "created_at").From("collections").
		OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list collections: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	out := make([]*domain.Collection, len(rows))
	for i, r := range rows {
		out[i] = &domain.Collection{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt}
	}
	return out, nil
}
