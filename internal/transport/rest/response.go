package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeWord writes a tagged word result. Failures use the ErrorState code.
func writeWord(w http.ResponseWriter, status int, res domain.Result[domain.Word]) {
	if !res.OK() {
		status = http.StatusInternalServerError
		if res.Err != nil {
			status = res.Err.Code
		}
	}
	writeJSON(w, status, res)
}

// writeFailure converts err into an ErrorState and writes it as
// {"status":"error","error":{...}}. Server-side failures are logged.
func writeFailure(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	es := domain.NewErrorState(err)
	if es.Code >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("type", es.Type),
			slog.String("error", err.Error()),
		)
	}
	writeJSON(w, es.Code, domain.Result[struct{}]{Err: &es})
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "invalid uuid")
	}
	return id, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

func queryBool(r *http.Request, name string, def bool) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, domain.NewValidationError(name, "must be a boolean")
	}
	return b, nil
}
