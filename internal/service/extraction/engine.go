// Package extraction turns a dictionary page into a structured Word.
package extraction

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/heartmarshall/learnenglish-backend/internal/adapter/scraper"
	"github.com/heartmarshall/learnenglish-backend/internal/config"
	"github.com/heartmarshall/learnenglish-backend/internal/domain"
	"github.com/heartmarshall/learnenglish-backend/internal/metrics"
)

type documentFetcher interface {
	FetchDocument(ctx context.Context, url string) (*scraper.Document, error)
}

// Engine extracts pronunciation, examples, class and glosses for a word.
type Engine struct {
	fetcher        documentFetcher
	dictionaryURL  string
	translationURL string
	maxExamples    int
	maxSenses      int
	log            *slog.Logger
}

// NewEngine creates an Engine reading pages through fetcher.
func NewEngine(log *slog.Logger, fetcher documentFetcher, cfg config.ScraperConfig) *Engine {
	e := &Engine{
		fetcher:        fetcher,
		dictionaryURL:  cfg.DictionaryURL,
		translationURL: cfg.TranslationURL,
		maxExamples:    cfg.MaxExamples,
		maxSenses:      cfg.MaxSenses,
		log:            log.With("service", "extraction"),
	}
	if e.maxExamples <= 0 {
		e.maxExamples = defaultExampleLimit
	}
	if e.maxSenses <= 0 {
		e.maxSenses = defaultSenseLimit
	}
	return e
}

// Extract fetches and parses the dictionary entry of word.
// filter drops noisy examples and selects the AUTO_PARSE state.
//
// Errors: *domain.PipelineError of kind domain.ErrFetch when the page cannot be
// fetched, domain.ErrExtraction when no pronunciation variant is present.
// A failed gloss lookup is logged and leaves Sense empty.
func (e *Engine) Extract(ctx context.Context, word string, filter bool) (*domain.Word, error) {
	doc, err := e.fetcher.FetchDocument(ctx, e.dictionaryURL+"/"+url.PathEscape(word))
	if err != nil {
		metrics.ObserveExtraction(domain.ErrorTypeFetch)
		return nil, domain.NewFetchError(word, err)
	}

	headword := word
	if hw, ok := doc.Find(selHeadword); ok {
		headword = domain.NormalizeHeadword(hw)
	}

	pronunciation := make(map[string]string, len(pronunciationSelectors))
	for _, p := range pronunciationSelectors {
		ipa, ok := doc.Find(p.selector)
		if !ok {
			e.log.WarnContext(ctx, "pronunciation variant missing",
				slog.String("word", word), slog.String("accent", p.accent))
			continue
		}
		pronunciation[p.accent] = ipa
	}
	if len(pronunciation) == 0 {
		metrics.ObserveExtraction(domain.ErrorTypeParse)
		return nil, domain.NewExtractionError(word, "pronunciation is empty")
	}

	class, _ := doc.Find(selClass)

	w := &domain.Word{
		Text:          headword,
		Pronunciation: pronunciation,
		Examples:      postProcessExamples(firstOf(doc, exampleChain), filter, e.maxExamples),
		Sense:         e.glosses(ctx, headword),
		State:         domain.StateForParse(filter),
		Class:         class,
	}

	metrics.ObserveExtraction(metrics.OutcomeOK)
	e.log.DebugContext(ctx, "word extracted",
		slog.String("word", word),
		slog.String("headword", headword),
		slog.Int("examples", len(w.Examples)),
		slog.Int("senses", len(w.Sense)),
		slog.String("class", class),
	)
	return w, nil
}

// glosses fetches translations of headword. Best-effort: failures yield an empty slice.
func (e *Engine) glosses(ctx context.Context, headword string) []string {
	if e.translationURL == "" {
		return []string{}
	}
	doc, err := e.fetcher.FetchDocument(ctx, e.translationURL+"/"+url.PathEscape(headword))
	if err != nil {
		e.log.WarnContext(ctx, "gloss lookup failed",
			slog.String("word", headword), slog.String("error", err.Error()))
		return []string{}
	}
	return truncate(doc.FindAll(selGlossEntry), e.maxSenses)
}
