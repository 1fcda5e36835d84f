package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction names an administrative mutation.
type AuditAction string

const (
	AuditActionCorrect AuditAction = "CORRECT"
	AuditActionDelete  AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

// AuditRecord logs an administrative change to a word.
// Subject is the caller taken from the bearer token.
type AuditRecord struct {
	ID        uuid.UUID      `json:"id"`
	Subject   uuid.UUID      `json:"subject"`
	WordID    uuid.UUID      `json:"wordId"`
	WordText  string         `json:"wordText"`
	Action    AuditAction    `json:"action"`
	Changes   map[string]any `json:"changes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}
