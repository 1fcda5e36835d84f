package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCollection inserts a collection with a unique name.
func SeedCollection(t *testing.T, pool *pgxpool.Pool) domain.Collection {
	t.Helper()

	c := domain.Collection{ID: uuid.New(), Name: "collection-" + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO collections (id, name) VALUES ($1, $2) RETURNING created_at`,
		c.ID, c.Name,
	).Scan(&c.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCollection: %v", err)
	}
	return c
}

// SeedWord inserts a word in the IMPORT state with a unique text and a US pronunciation.
func SeedWord(t *testing.T, pool *pgxpool.Pool) domain.Word {
	t.Helper()

	w := domain.Word{
		ID:            uuid.New(),
		Text:          "word" + uniqueSuffix(),
		Pronunciation: map[string]string{domain.AccentUS: "/wɜːd/"},
		Examples:      []string{},
		Sense:         []string{},
		State:         domain.WordStateImport,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO words (id, text, pronunciation, state) VALUES ($1, $2, $3, $4) RETURNING created_at, updated_at`,
		w.ID, w.Text, w.Pronunciation, string(w.State),
	).Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedWord: %v", err)
	}
	return w
}

// CollectionExists reports whether a collection row with id exists.
func CollectionExists(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) bool {
	t.Helper()

	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM collections WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("testhelper: CollectionExists: %v", err)
	}
	return exists
}
