package domain

import "fmt"

// WordState is the provenance/trust tag of a word.
type WordState string

const (
	// WordStateImport marks a bulk-imported, unverified word.
	WordStateImport WordState = "IMPORT"
	// WordStateParse marks a manually triggered, unfiltered scrape.
	WordStateParse WordState = "PARSE"
	// WordStateAutoParse marks a filtered or automatic scrape.
	WordStateAutoParse WordState = "AUTO_PARSE"
	// WordStateCorrect marks a human-verified word.
	WordStateCorrect WordState = "CORRECT"
)

func (s WordState) String() string { return string(s) }

func (s WordState) IsValid() bool {
	switch s {
	case WordStateImport, WordStateParse, WordStateAutoParse, WordStateCorrect:
		return true
	}
	return false
}

// ParseWordState parses a state name, as used in query parameters.
func ParseWordState(s string) (WordState, error) {
	st := WordState(s)
	if !st.IsValid() {
		return "", NewValidationError("state", fmt.Sprintf("unknown state %q", s))
	}
	return st, nil
}

// StateForImport is the state of a word created by the batch importer.
func StateForImport() WordState { return WordStateImport }

// StateForParse is the state of a word written by an on-demand parse.
// The pipeline never assigns WordStateCorrect.
func StateForParse(filter bool) WordState {
	if filter {
		return WordStateAutoParse
	}
	return WordStateParse
}

// Promote marks a word as human-verified. Only the manual edit operation calls it.
func Promote(w *Word) {
	w.State = WordStateCorrect
}

// IsTrusted reports whether the word holds human-verified data.
func (s WordState) IsTrusted() bool { return s == WordStateCorrect }
