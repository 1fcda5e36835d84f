package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/learnenglish-backend/internal/auth"
	"github.com/heartmarshall/learnenglish-backend/internal/config"
	"github.com/heartmarshall/learnenglish-backend/internal/transport/middleware"
	"github.com/heartmarshall/learnenglish-backend/internal/transport/rest"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health   *rest.HealthHandler
	Word     *rest.WordHandler
	Import   *rest.ImportHandler
	Category *rest.CategoryHandler
}

// NewRouter mounts every route and wraps the mux in the middleware chain.
// Routes that reach the dictionary site are rate limited per client. When jwt
// is nil the administrative routes answer 503.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	h Handlers,
	jwt *auth.JWTManager,
	limiter *middleware.RateLimiter,
) http.Handler {
	scrape := limiter.Limit(cfg.Server.ScrapeRateLimit)

	admin := middleware.Disabled
	if jwt != nil {
		admin = middleware.AdminOnly
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.Handle("GET /word/parse", scrape(http.HandlerFunc(h.Word.Parse)))
	mux.Handle("GET /word/find", scrape(http.HandlerFunc(h.Word.Find)))
	mux.Handle("POST /word/import", scrape(http.HandlerFunc(h.Import.Import)))

	mux.HandleFunc("GET /word/list", h.Word.List)
	mux.HandleFunc("GET /word/{id}", h.Word.Get)
	mux.HandleFunc("GET /word/{id}/categories", h.Word.Categories)
	mux.HandleFunc("POST /word", h.Word.Create)
	mux.Handle("PUT /word/{id}/correct", admin(http.HandlerFunc(h.Word.Correct)))
	mux.Handle("DELETE /word/{id}", admin(http.HandlerFunc(h.Word.Delete)))
	mux.Handle("GET /word/{id}/history", admin(http.HandlerFunc(h.Word.History)))

	mux.HandleFunc("GET /category/list", h.Category.List)
	mux.HandleFunc("GET /category/{id}/words", h.Word.CategoryWords)
	mux.Handle("DELETE /category/{id}", admin(http.HandlerFunc(h.Category.Delete)))
	mux.Handle("DELETE /category/{id}/words/{wordId}", admin(http.HandlerFunc(h.Category.Unlink)))

	mux.HandleFunc("GET /collection/list", h.Category.Collections)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.When(jwt != nil, middleware.Auth(jwt)),
		middleware.Logger(logger),
		middleware.Metrics,
	)(mux)
}
