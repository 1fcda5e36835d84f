// Package audit implements the append-only audit log of administrative word
// changes using PostgreSQL. Records outlive the words they describe.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/learnenglish-backend/internal/adapter/postgres"
	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

const table = "audit_log"

var columns = []string{"id", "subject", "word_id", "word_text", "action", "changes", "created_at"}

type row struct {
	ID        uuid.UUID      `db:"id"`
	Subject   uuid.UUID      `db:"subject"`
	WordID    uuid.UUID      `db:"word_id"`
	WordText  string         `db:"word_text"`
	Action    string         `db:"action"`
	Changes   map[string]any `db:"changes"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r row) toDomain() domain.AuditRecord {
	rec := domain.AuditRecord{
		ID:        r.ID,
		Subject:   r.Subject,
		WordID:    r.WordID,
		WordText:  r.WordText,
		Action:    domain.AuditAction(r.Action),
		CreatedAt: r.CreatedAt,
	}
	if len(r.Changes) > 0 {
		rec.Changes = r.Changes
	}
	return rec
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new audit repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Log appends a record. A zero ID is generated. Runs inside the caller's
// transaction when one is present in ctx.
func (r *Repo) Log(ctx context.Context, rec domain.AuditRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	changes := rec.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("audit_record marshal changes: %w", err)
	}

	sql, args, err := postgres.Builder().Insert(table).
		Columns("id", "subject", "word_id", "word_text", "action", "changes").
		Values(rec.ID, rec.Subject, rec.WordID, rec.WordText, string(rec.Action), changesJSON).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert audit_record: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "audit_record", rec.ID)
	}
	return nil
}

// ListByWord returns the change history of a word, newest first.
func (r *Repo) ListByWord(ctx context.Context, wordID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).
		Where(sq.Expr("word_id = ?", wordID)).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit_records: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list audit_records by word: %w", err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i := range rows {
		records[i] = rows[i].toDomain()
	}
	return records, nil
}
