package extraction

import (
	"strings"

	"github.com/heartmarshall/learnenglish-backend/internal/adapter/scraper"
	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

// strategy extracts a list of values from a page.
// ok is false when the strategy found nothing and the next one should run.
type strategy func(doc *scraper.Document) (values []string, ok bool)

// selectAll is a strategy returning the texts of every match of selector.
func selectAll(selector string) strategy {
	return func(doc *scraper.Document) ([]string, bool) {
		values := doc.FindAll(selector)
		return values, len(values) > 0
	}
}

// firstOf runs strategies in order and returns the result of the first that succeeds.
// Exhausting the chain yields an empty, non-nil slice.
func firstOf(doc *scraper.Document, chain []strategy) []string {
	for _, s := range chain {
		if values, ok := s(doc); ok {
			return values
		}
	}
	return []string{}
}

// Selectors of the dictionary page.
const (
	selHeadword   = "span.hw.dhw"
	selClass      = "span.pos.dpos"
	selUSIPA      = "span.us.dpron-i span.ipa.dipa"
	selUKIPA      = "span.uk.dpron-i span.ipa.dipa"
	selGlossEntry = "h3.translation__item__pharse"
)

// exampleChain lists the example selectors from the most to the least specific.
var exampleChain = []strategy{
	selectAll("span.eg.deg"),
	selectAll("li.deg"),
	selectAll("li.eg"),
}

// pronunciationSelectors maps an accent key to its IPA selector.
var pronunciationSelectors = []struct {
	accent   string
	selector string
}{
	{accent: domain.AccentUS, selector: selUSIPA},
	{accent: domain.AccentUK, selector: selUKIPA},
}

const (
	// rawExampleLimit bounds the examples considered before filtering.
	rawExampleLimit = 10
	// defaultExampleLimit bounds the examples kept after filtering.
	defaultExampleLimit = 5
	// defaultSenseLimit bounds the glosses kept from the translation page.
	defaultSenseLimit = 10
)

// isNoisyExample reports whether an example is a paraphrase note such as
// "(= a cat)" or holds alternatives separated by slashes.
func isNoisyExample(s string) bool {
	if strings.Contains(s, "(=") && strings.Contains(s, ")") {
		return true
	}
	return strings.Contains(s, "/")
}

// postProcessExamples truncates raw examples, optionally drops noisy ones,
// then truncates to limit.
func postProcessExamples(raw []string, filter bool, limit int) []string {
	out := truncate(raw, rawExampleLimit)
	if filter {
		kept := make([]string, 0, len(out))
		for _, e := range out {
			if !isNoisyExample(e) {
				kept = append(kept, e)
			}
		}
		out = kept
	}
	return truncate(out, limit)
}

func truncate(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
