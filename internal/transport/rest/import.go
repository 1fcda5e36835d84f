package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
	"github.com/heartmarshall/learnenglish-backend/internal/service/importer"
)

// maxImportBody bounds the text/plain body of an import request.
const maxImportBody = 4 << 20

type importService interface {
	Import(ctx context.Context, raw string, mode importer.Mode) ([]domain.Result[domain.Word], error)
}

// ImportHandler serves the batch import endpoint.
type ImportHandler struct {
	svc importService
	log *slog.Logger
}

// NewImportHandler creates an ImportHandler.
func NewImportHandler(svc importService, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{svc: svc, log: logger.With("handler", "import")}
}

// Import handles POST /word/import?mode=plain|ranked with a text/plain body,
// one item per line. The response is a JSON array with one tagged result per
// non-blank line, in input order. Per-line failures do not change the status.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	mode, err := importer.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeFailure(w, r, h.log, domain.NewValidationError("body", "request body too large"))
			return
		}
		writeFailure(w, r, h.log, domain.NewValidationError("body", "unreadable request body"))
		return
	}

	results, err := h.svc.Import(r.Context(), string(body), mode)
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}
