// Package word implements the Word repository using PostgreSQL.
// Words are unique by text ignoring case; pronunciation is stored as jsonb keyed by accent,
// examples and glosses as text arrays.
package word

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

const table = "words"

var columns = []string{
	"id", "text", "pronunciation", "examples", "sense", "state", "rank",
	"collection_id", "created_at", "updated_at",
}

// row is the scan target for words rows.
type row struct {
	ID            uuid.UUID         `db:"id"`
	Text          string            `db:"text"`
	Pronunciation map[string]string `db:"pronunciation"`
	Examples      []string          `db:"examples"`
	Sense         []string          `db:"sense"`
	State         string            `db:"state"`
	Rank          int               `db:"rank"`
	CollectionID  *uuid.UUID        `db:"collection_id"`
	CreatedAt     time.Time         `db:"created_at"`
	UpdatedAt     time.Time         `db:"updated_at"`
}

func (r row) toDomain() *domain.Word {
	w := &domain.Word{
		ID:            r.ID,
		Text:          r.Text,
		Pronunciation: r.Pronunciation,
		Examples:      r.Examples,
		Sense:         r.Sense,
		State:         domain.WordState(r.State),
		Rank:          r.Rank,
		CollectionID:  r.CollectionID,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if w.Pronunciation == nil {
		w.Pronunciation = map[string]string{}
	}
	if w.Examples == nil {
		w.Examples = []string{}
	}
	if w.Sense == nil {
		w.Sense = []string{}
	}
	return w
}

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new word repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindByText returns the word whose text equals text ignoring case.
// The stored spelling is returned unchanged. Returns domain.ErrNotFound when absent.
func (r *Repo) FindByText(ctx context.Context, text string) (*domain.Word, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(sq.Expr("lower(text) = lower(?)", text))
	return r.get(ctx, query, text)
}

// GetByID returns a word by primary key.
// Returns domain.ErrNotFound when absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(sq.Expr("id = ?", id))
	return r.get(ctx, query, id)
}

// List returns words ordered by rank descending, then text.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.WordFilter) ([]*domain.Word, error) {
	query := applyFilter(postgres.Builder().Select(columns...).From(table), filter).
		OrderBy("rank DESC", "text ASC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}
	return r.list(ctx, query)
}

// Count returns the number of words matching the filter. Limit and Offset are ignored.
func (r *Repo) Count(ctx context.Context, filter domain.WordFilter) (int, error) {
	sql, args, err := applyFilter(postgres.Builder().Select("count(*)").From(table), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count words: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return count, nil
}

// ListByCategory returns the words linked to a category ordered by text.
func (r *Repo) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.Word, error) {
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = "w." + c
	}
	query := postgres.Builder().Select(cols...).
		From(table + " w").
		Join("categories_words cw ON cw.word_id = w.id").
		Where(sq.Expr("cw.category_id = ?", categoryID)).
		OrderBy("w.text ASC")
	return r.list(ctx, query)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert stores a new word and returns the persisted row.
// A zero ID is generated. Returns domain.ErrAlreadyExists when the text is taken.
func (r *Repo) Insert(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	id := w.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := postgres.Builder().Insert(table).
		Columns("id", "text", "pronunciation", "examples", "sense", "state", "rank", "collection_id").
		Values(id, w.Text, nonNilMap(w.Pronunciation), nonNilSlice(w.Examples), nonNilSlice(w.Sense),
			string(w.State), w.Rank, w.CollectionID).
		Suffix("RETURNING " + joinColumns())

	return r.get(ctx, query, w.Text)
}

// Update overwrites the mutable fields of the word identified by w.ID.
// Returns domain.ErrNotFound when no such word exists.
func (r *Repo) Update(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	query := postgres.Builder().Update(table).
		Set("pronunciation", nonNilMap(w.Pronunciation)).
		Set("examples", nonNilSlice(w.Examples)).
		Set("sense", nonNilSlice(w.Sense)).
		Set("state", string(w.State)).
		Set("rank", w.Rank).
		Set("collection_id", w.CollectionID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Expr("id = ?", w.ID)).
		Suffix("RETURNING " + joinColumns())

	return r.get(ctx, query, w.ID)
}

// Delete removes a word. Category links are removed by cascade.
// Returns domain.ErrNotFound when no such word exists.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete(table).Where(sq.Expr("id = ?", id)).ToSql()
	if err != nil {
		return fmt.Errorf("build delete word: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) get(ctx context.Context, query sq.Sqlizer, key any) (*domain.Word, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build word query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "word", key)
	}
	return dst.toDomain(), nil
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder) ([]*domain.Word, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	words := make([]*domain.Word, len(rows))
	for i := range rows {
		words[i] = rows[i].toDomain()
	}
	return words, nil
}

func applyFilter(query sq.SelectBuilder, filter domain.WordFilter) sq.SelectBuilder {
	if filter.State != nil {
		query = query.Where(sq.Eq{"state": string(*filter.State)})
	}
	return query
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}

func nonNilMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func nonNilSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
