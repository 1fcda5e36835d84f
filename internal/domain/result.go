package domain

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Error state types reported to callers.
const (
	ErrorTypeFetch          = "FETCH_ERROR"
	ErrorTypeParse          = "PARSE_ERROR"
	ErrorTypeClassification = "CLASSIFICATION_ERROR"
	ErrorTypeStore          = "STORE_ERROR"
	ErrorTypeValidation     = "VALIDATION_ERROR"
	ErrorTypeNotFound       = "NOT_FOUND"
	ErrorTypeUnauthorized   = "UNAUTHORIZED"
	ErrorTypeForbidden      = "FORBIDDEN"
	ErrorTypeRateLimited    = "RATE_LIMITED"
	ErrorTypeUnavailable    = "UNAVAILABLE"
	ErrorTypeInternal       = "INTERNAL_ERROR"
)

// ErrorState is a structured failure returned in place of a successful result.
// It is never persisted.
type ErrorState struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e ErrorState) Error() string { return e.Type + ": " + e.Message }

// NewErrorState converts any pipeline, store or validation error into an ErrorState.
func NewErrorState(err error) ErrorState {
	if err == nil {
		return ErrorState{Code: http.StatusInternalServerError, Type: ErrorTypeInternal, Message: "unknown error"}
	}

	var es ErrorState
	if errors.As(err, &es) {
		return es
	}

	state := ErrorState{Message: err.Error()}
	switch {
	case errors.Is(err, ErrFetch):
		state.Code, state.Type = http.StatusBadGateway, ErrorTypeFetch
	case errors.Is(err, ErrExtraction):
		state.Code, state.Type = http.StatusInternalServerError, ErrorTypeParse
	case errors.Is(err, ErrClassification):
		state.Code, state.Type = http.StatusInternalServerError, ErrorTypeClassification
	case errors.Is(err, ErrStore):
		state.Type = ErrorTypeStore
		state.Code = storeCode(err)
	case errors.Is(err, ErrValidation):
		state.Code, state.Type = http.StatusBadRequest, ErrorTypeValidation
	case errors.Is(err, ErrNotFound):
		state.Code, state.Type = http.StatusNotFound, ErrorTypeNotFound
	case errors.Is(err, ErrUnauthorized):
		state.Code, state.Type = http.StatusUnauthorized, ErrorTypeUnauthorized
	case errors.Is(err, ErrForbidden):
		state.Code, state.Type = http.StatusForbidden, ErrorTypeForbidden
	default:
		state.Code, state.Type = http.StatusInternalServerError, ErrorTypeInternal
	}
	return state
}

func storeCode(err error) int {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Result is either a value or an ErrorState, never both.
type Result[T any] struct {
	Value *T
	Err   *ErrorState
}

// Ok wraps a successful value.
func Ok[T any](v *T) Result[T] {
	return Result[T]{Value: v}
}

// Fail wraps err as an ErrorState.
func Fail[T any](err error) Result[T] {
	es := NewErrorState(err)
	return Result[T]{Err: &es}
}

// OK reports whether the result holds a value.
func (r Result[T]) OK() bool { return r.Err == nil && r.Value != nil }

type resultJSON[T any] struct {
	Status string      `json:"status"`
	Word   *T          `json:"word,omitempty"`
	Error  *ErrorState `json:"error,omitempty"`
}

// MarshalJSON encodes the result as {"status":"ok","word":...} or {"status":"error","error":...}.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.OK() {
		return json.Marshal(resultJSON[T]{Status: "ok", Word: r.Value})
	}
	es := r.Err
	if es == nil {
		es = &ErrorState{Code: http.StatusInternalServerError, Type: ErrorTypeInternal, Message: "empty result"}
	}
	return json.Marshal(resultJSON[T]{Status: "error", Error: es})
}
