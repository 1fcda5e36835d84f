package domain

import "strings"

// WordType is a grammatical class a word can be classified into.
type WordType string

const (
	WordTypeNoun          WordType = "NOUN"
	WordTypeVerb          WordType = "VERB"
	WordTypeAdjective     WordType = "ADJECTIVE"
	WordTypeAdverb        WordType = "ADVERB"
	WordTypePronoun       WordType = "PRONOUN"
	WordTypePreposition   WordType = "PREPOSITION"
	WordTypeConjunction   WordType = "CONJUNCTION"
	WordTypeDeterminer    WordType = "DETERMINER"
	WordTypeNumber        WordType = "NUMBER"
	WordTypeInterjection  WordType = "INTERJECTION"
	WordTypeArticle       WordType = "ARTICLE"
	WordTypeDemonstrative WordType = "DEMONSTRATIVE"
	WordTypeExistential   WordType = "EXISTENTIAL"
	WordTypeModal         WordType = "MODAL"
)

type wordTypeInfo struct {
	shortcut string
	label    string
	category string
}

var wordTypes = map[WordType]wordTypeInfo{
	WordTypeNoun:          {"n", "noun", "Nouns"},
	WordTypeVerb:          {"v", "verb", "Verbs"},
	WordTypeAdjective:     {"a", "adjective", "Adjectives"},
	WordTypeAdverb:        {"r", "adverb", "Adverbs"},
	WordTypePronoun:       {"p", "pronoun", "Pronouns"},
	WordTypePreposition:   {"i", "preposition", "Prepositions"},
	WordTypeConjunction:   {"c", "conjunction", "Conjunctions"},
	WordTypeDeterminer:    {"d", "determiner", "Determiners"},
	WordTypeNumber:        {"m", "number", "Numbers"},
	WordTypeInterjection:  {"u", "exclamation", "Interjections"},
	WordTypeArticle:       {"t", "article", "Articles"},
	WordTypeDemonstrative: {"e", "demonstrative", "Demonstratives"},
	WordTypeExistential:   {"x", "existential", "Existentials"},
	WordTypeModal:         {"o", "modal verb", "Modals"},
}

func (t WordType) String() string { return string(t) }

func (t WordType) IsValid() bool {
	_, ok := wordTypes[t]
	return ok
}

// Shortcut is the one-letter code used by ranked import lines.
func (t WordType) Shortcut() string { return wordTypes[t].shortcut }

// Label is the lowercase class label as it appears on dictionary pages.
func (t WordType) Label() string { return wordTypes[t].label }

// CategoryName is the name of the category words of this class are placed into.
func (t WordType) CategoryName() string { return wordTypes[t].category }

// IsRare reports whether the class belongs to the aggregation set that is
// additionally linked into the Pronouns category.
func (t WordType) IsRare() bool {
	switch t {
	case WordTypeArticle, WordTypeDemonstrative, WordTypeExistential:
		return true
	}
	return false
}

// WordTypeByShortcut resolves a ranked-import shortcut.
func WordTypeByShortcut(shortcut string) (WordType, bool) {
	for t, info := range wordTypes {
		if info.shortcut == shortcut {
			return t, true
		}
	}
	return "", false
}

// WordTypeByLabel resolves a class label such as "noun" or "Noun".
// Labels are also accepted in enum form ("NOUN").
func WordTypeByLabel(label string) (WordType, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return "", false
	}
	for t, info := range wordTypes {
		if info.label == label || strings.ToLower(string(t)) == label {
			return t, true
		}
	}
	return "", false
}
