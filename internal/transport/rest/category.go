package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

type categoryService interface {
	ListCategories(ctx context.Context, collection string) ([]*domain.Category, error)
	ListCollections(ctx context.Context) ([]*domain.Collection, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	UnlinkWord(ctx context.Context, categoryID, wordID uuid.UUID) error
}

// CategoryHandler serves the category and collection endpoints.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

// List handles GET /category/list?collection=.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context(), r.URL.Query().Get("collection"))
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// Collections handles GET /collection/list.
func (h *CategoryHandler) Collections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.svc.ListCollections(r.Context())
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, collections)
}

// Delete handles DELETE /category/{id}. Admin only.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Unlink handles DELETE /category/{id}/words/{wordId}. Admin only.
func (h *CategoryHandler) Unlink(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "id")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	wordID, err := pathID(r, "wordId")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	if err := h.svc.UnlinkWord(r.Context(), categoryID, wordID); err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
