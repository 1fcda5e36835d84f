package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category groups words within a collection (grammatical or thematic).
type Category struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	LocalizedName *string    `json:"localizedName,omitempty"`
	Icon          *string    `json:"icon,omitempty"`
	CollectionID  *uuid.UUID `json:"collectionId,omitempty"`
	WordsCount    int        `json:"wordsCount"` // computed field, not stored in DB
	CreatedAt     time.Time  `json:"createdAt"`
}

// Collection is the top-level grouping of words and categories.
type Collection struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Default collections, guaranteed to exist at startup.
const (
	CollectionBasic        = "Basic"
	CollectionAdvanced     = "Advanced"
	CollectionIntermediate = "Intermediate"
)

// DefaultCollections lists the collections created at startup when missing.
func DefaultCollections() []string {
	return []string{CollectionBasic, CollectionAdvanced, CollectionIntermediate}
}

// HiddenCategoryNames are omitted from category listings; their words are browsable
// through the Pronouns aggregate instead.
var HiddenCategoryNames = map[string]bool{
	WordTypeArticle.CategoryName():       true,
	WordTypeDemonstrative.CategoryName(): true,
	WordTypeExistential.CategoryName():   true,
	"Other":                              true,
}
