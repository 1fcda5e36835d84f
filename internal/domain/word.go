package domain

import (
	"time"

	"github.com/google/uuid"
)

// Accent-region keys used in Word.Pronunciation.
const (
	AccentUS = "us"
	AccentUK = "uk"
)

// Word is a vocabulary item, either scraped from a dictionary or imported.
type Word struct {
	ID            uuid.UUID         `json:"id"`
	Text          string            `json:"text"`
	Pronunciation map[string]string `json:"pronunciation"`
	Examples      []string          `json:"examples"`
	Sense         []string          `json:"sense"`
	State         WordState         `json:"state"`
	Rank          int               `json:"rank"`
	CollectionID  *uuid.UUID        `json:"collectionId,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`

	// Class is the grammatical class label seen during extraction. Not persisted.
	Class string `json:"class,omitempty"`
}

// HasPronunciation reports whether at least one accent variant is present.
func (w *Word) HasPronunciation() bool {
	for _, v := range w.Pronunciation {
		if v != "" {
			return true
		}
	}
	return false
}

// WordFilter narrows word listings.
type WordFilter struct {
	State  *WordState
	Limit  int
	Offset int
}
