package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
)

// Pipeline error kinds. A *PipelineError always wraps exactly one of them.
var (
	// ErrFetch means the external source could not be reached. Retryable.
	ErrFetch = errors.New("fetch failed")
	// ErrExtraction means a mandatory field was missing after every fallback.
	ErrExtraction = errors.New("extraction failed")
	// ErrClassification means a category could not be resolved, created or linked. Retryable.
	ErrClassification = errors.New("classification failed")
	// ErrStore means the relational store rejected a write.
	ErrStore = errors.New("store failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// PipelineError is a failure of one stage of the acquisition pipeline for one word.
type PipelineError struct {
	Kind error
	Word string
	Err  error
}

func (e *PipelineError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Word)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Word, e.Err)
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is / errors.As.
func (e *PipelineError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Retryable reports whether repeating the same call may succeed.
func (e *PipelineError) Retryable() bool {
	return e.Kind == ErrFetch || e.Kind == ErrClassification
}

// NewFetchError wraps a network or HTTP failure for word.
func NewFetchError(word string, err error) *PipelineError {
	return &PipelineError{Kind: ErrFetch, Word: word, Err: err}
}

// NewExtractionError reports a missing mandatory field for word.
func NewExtractionError(word, reason string) *PipelineError {
	return &PipelineError{Kind: ErrExtraction, Word: word, Err: errors.New(reason)}
}

// NewClassificationError wraps a category resolve/link failure for word.
func NewClassificationError(word string, err error) *PipelineError {
	return &PipelineError{Kind: ErrClassification, Word: word, Err: err}
}

// NewStoreError wraps a persistence failure for word.
func NewStoreError(word string, err error) *PipelineError {
	return &PipelineError{Kind: ErrStore, Word: word, Err: err}
}
