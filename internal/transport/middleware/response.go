package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

// writeError writes the same error envelope the handlers use.
func writeError(w http.ResponseWriter, status int, errType, message string) {
	es := domain.ErrorState{Code: status, Type: errType, Message: message}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.Result[struct{}]{Err: &es}) //nolint:errcheck
}
