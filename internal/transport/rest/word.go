package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
	"github.com/heartmarshall/learnenglish-backend/internal/service/word"
)

type wordService interface {
	Parse(ctx context.Context, text string, filter bool) domain.Result[domain.Word]
	FindOrParse(ctx context.Context, text string) domain.Result[domain.Word]
	Get(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	List(ctx context.Context, input word.ListInput) (*word.ListResult, error)
	Categories(ctx context.Context, id uuid.UUID) ([]*domain.Category, error)
	CategoryWords(ctx context.Context, categoryID uuid.UUID) ([]*domain.Word, error)
	Create(ctx context.Context, input word.CreateInput) (*domain.Word, error)
	Correct(ctx context.Context, input word.CorrectInput) (*domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) error
	History(ctx context.Context, id uuid.UUID) ([]domain.AuditRecord, error)
}

// WordHandler serves the word endpoints.
type WordHandler struct {
	svc wordService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc wordService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "word")}
}

type createWordRequest struct {
	Text          string            `json:"text"`
	Pronunciation map[string]string `json:"pronunciation"`
	Examples      []string          `json:"examples"`
	Sense         []string          `json:"sense"`
	State         string            `json:"state"`
	Rank          int               `json:"rank"`
	CollectionID  *uuid.UUID        `json:"collectionId"`
}

type correctWordRequest struct {
	Pronunciation map[string]string `json:"pronunciation"`
	Examples      []string          `json:"examples"`
	Sense         []string          `json:"sense"`
	Rank          *int              `json:"rank"`
}

// Parse handles GET /word/parse?text=&filter=.
// filter defaults to true; filter=false stores the word as PARSE.
func (h *WordHandler) Parse(w http.ResponseWriter, r *http.Request) {
	filter, err := queryBool(r, "filter", true)
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	writeWord(w, http.StatusOK, h.svc.Parse(r.Context(), r.URL.Query().Get("text"), filter))
}

// Find handles GET /word/find?text=. Unknown words are parsed on the fly.
func (h *WordHandler) Find(w http.ResponseWriter, r *http.Request) {
	writeWord(w, http.StatusOK, h.svc.FindOrParse(r.Context(), r.URL.Query().Get("text")))
}

// Get handles GET /word/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	found, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	writeWord(w, http.StatusOK, domain.Ok(found))
}

// List handles GET /word/list?page=&limit=&state=.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	result, err := h.svc.List(r.Context(), word.ListInput{
		Page:  page,
		Limit: limit,
		State: r.URL.Query().Get("state"),
	})
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Categories handles GET /word/{id}/categories.
func (h *WordHandler) Categories(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	categories, err := h.svc.Categories(r.Context(), id)
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// CategoryWords handles GET /category/{id}/words.
func (h *WordHandler) CategoryWords(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	words, err := h.svc.CategoryWords(r.Context(), id)
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, words)
}

// Create handles POST /word.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, r, h.log, domain.NewValidationError("body", "invalid request body"))
		return
	}

	created, err := h.svc.Create(r.Context(), word.CreateInput{
		Text:          req.Text,
		Pronunciation: req.Pronunciation,
		Examples:      req.Examples,
		Sense:         req.Sense,
		State:         domain.WordState(req.State),
		Rank:          req.Rank,
		CollectionID:  req.CollectionID,
	})
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	writeWord(w, http.StatusCreated, domain.Ok(created))
}

// Correct handles PUT /word/{id}/correct. Admin only.
func (h *WordHandler) Correct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	var req correctWordRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFailure(w, r, h.log, domain.NewValidationError("body", "invalid request body"))
			return
		}
	}

	corrected, err := h.svc.Correct(r.Context(), word.CorrectInput{
		ID:            id,
		Pronunciation: req.Pronunciation,
		Examples:      req.Examples,
		Sense:         req.Sense,
		Rank:          req.Rank,
	})
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	writeWord(w, http.StatusOK, domain.Ok(corrected))
}

// Delete handles DELETE /word/{id}. Admin only.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /word/{id}/history. Admin only.
func (h *WordHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}

	records, err := h.svc.History(r.Context(), id)
	if err != nil {
		writeFailure(w, r, h.log, err)
		return
	}
	if records == nil {
		records = []domain.AuditRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}
