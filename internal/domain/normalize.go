package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeHeadword turns a dictionary headword into a word text:
// whitespace is trimmed and inner spaces become hyphens ("ice cream" -> "ice-cream").
func NormalizeHeadword(text string) string {
	return strings.ReplaceAll(strings.Join(strings.Fields(text), " "), " ", "-")
}

// Capitalize upper-cases the first letter and leaves the rest untouched.
func Capitalize(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}

// WordKey returns the form a word is stored and looked up under: NormalizeText
// followed by NormalizeHeadword ("Ice  Cream " -> "ice-cream").
// Stored texts compare case-insensitively, so the lowercase key also finds "Table".
func WordKey(text string) string {
	return NormalizeHeadword(NormalizeText(text))
}
