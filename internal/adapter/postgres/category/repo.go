// Package category implements the Category repository using PostgreSQL,
// including the categories_words link table.
package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/learnenglish-backend/internal/adapter/postgres"
	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

const (
	table     = "categories"
	linkTable = "categories_words"
)

var columns = []string{"id", "name", "localized_name", "icon", "collection_id", "created_at"}

const hasLinkSQL = `SELECT EXISTS(SELECT 1 FROM categories_words WHERE category_id = $1 AND word_id = $2)`

const wordsCountExpr = "(SELECT count(*) FROM categories_words cw WHERE cw.category_id = c.id) AS words_count"

type row struct {
	ID            uuid.UUID  `db:"id"`
	Name          string     `db:"name"`
	LocalizedName *string    `db:"localized_name"`
	Icon          *string    `db:"icon"`
	CollectionID  *uuid.UUID `db:"collection_id"`
	CreatedAt     time.Time  `db:"created_at"`
	WordsCount    int        `db:"words_count"`
}

func (r row) toDomain() *domain.Category {
	return &domain.Category{
		ID:            r.ID,
		Name:          r.Name,
		LocalizedName: r.LocalizedName,
		Icon:          r.Icon,
		CollectionID:  r.CollectionID,
		WordsCount:    r.WordsCount,
		CreatedAt:     r.CreatedAt,
	}
}

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new category repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// FindByName returns the category with this name inside a collection.
// Returns domain.ErrNotFound when absent.
func (r *Repo) FindByName(ctx context.Context, name string, collectionID uuid.UUID) (*domain.Category, error) {
	query := postgres.Builder().Select(columns...).From(table).
		Where(sq.Expr("name = ? AND collection_id = ?", name, collectionID))
	return r.get(ctx, query, name)
}

// List returns categories with their word counts ordered by name.
// A nil collectionID lists every collection.
func (r *Repo) List(ctx context.Context, collectionID *uuid.UUID) ([]*domain.Category, error) {
	query := postgres.Builder().Select(prefixed("c")...).Column(wordsCountExpr).
		From(table + " c").
		OrderBy("c.name ASC")
	if collectionID != nil {
		query = query.Where(sq.Expr("c.collection_id = ?", *collectionID))
	}
	return r.list(ctx, query)
}

// ListByWord returns the categories a word is linked to ordered by name.
func (r *Repo) ListByWord(ctx context.Context, wordID uuid.UUID) ([]*domain.Category, error) {
	query := postgres.Builder().Select(prefixed("c")...).Column(wordsCountExpr).
		From(table + " c").
		Join(linkTable + " l ON l.category_id = c.id").
		Where(sq.Expr("l.word_id = ?", wordID)).
		OrderBy("c.name ASC")
	return r.list(ctx, query)
}

// CountWords returns the number of words linked to a category.
func (r *Repo) CountWords(ctx context.Context, categoryID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().Select("count(*)").From(linkTable).
		Where(sq.Expr("category_id = ?", categoryID)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count category words: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count category words: %w", err)
	}
	return count, nil
}

// Create inserts a category and returns the persisted row.
// Returns domain.ErrAlreadyExists when the (name, collection) pair is taken.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := postgres.Builder().Insert(table).
		Columns("id", "name", "localized_name", "icon", "collection_id").
		Values(id, c.Name, c.LocalizedName, c.Icon, c.CollectionID).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	return r.get(ctx, query, c.Name)
}

// Delete removes a category and its word links.
// Returns domain.ErrNotFound when no such category exists.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete(table).Where(sq.Expr("id = ?", id)).ToSql()
	if err != nil {
		return fmt.Errorf("build delete category: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Link operations
// ---------------------------------------------------------------------------

// HasLink reports whether the word is already linked to the category.
func (r *Repo) HasLink(ctx context.Context, categoryID, wordID uuid.UUID) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, hasLinkSQL, categoryID, wordID).Scan(&exists); err != nil {
		return false, fmt.Errorf("has category link: %w", err)
	}
	return exists, nil
}

// AddWordLink links a word to a category.
// Linking the same pair twice is NOT an error (ON CONFLICT DO NOTHING).
func (r *Repo) AddWordLink(ctx context.Context, categoryID, wordID uuid.UUID) error {
	sql, args, err := postgres.Builder().Insert(linkTable).
		Columns("category_id", "word_id").
		Values(categoryID, wordID).
		Suffix("ON CONFLICT (category_id, word_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build add link: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "category_word", categoryID)
	}
	return nil
}

// RemoveWordLink unlinks a word from a category. A missing link is not an error.
func (r *Repo) RemoveWordLink(ctx context.Context, categoryID, wordID uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete(linkTable).
		Where(sq.Expr("category_id = ? AND word_id = ?", categoryID, wordID)).ToSql()
	if err != nil {
		return fmt.Errorf("build remove link: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "category_word", categoryID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) get(ctx context.Context, query sq.Sqlizer, key any) (*domain.Category, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build category query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "category", key)
	}
	return dst.toDomain(), nil
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder) ([]*domain.Category, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	categories := make([]*domain.Category, len(rows))
	for i := range rows {
		categories[i] = rows[i].toDomain()
	}
	return categories, nil
}

func prefixed(alias string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}
