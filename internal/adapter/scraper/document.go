package scraper

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Document is a parsed HTML page that answers CSS selector queries.
type Document struct {
	URL string
	doc *goquery.Document
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

// ParseString is Parse for an in-memory page.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Find returns the text of the first element matching selector.
// ok is false when nothing matches or the match has no text.
func (d *Document) Find(selector string) (string, bool) {
	sel, err := compile(selector)
	if err != nil {
		return "", false
	}
	match := d.doc.FindMatcher(sel).First()
	if match.Length() == 0 {
		return "", false
	}
	text := selectionText(match)
	return text, text != ""
}

// FindAll returns the non-empty texts of every element matching selector,
// in document order.
func (d *Document) FindAll(selector string) []string {
	sel, err := compile(selector)
	if err != nil {
		return nil
	}
	matches := d.doc.FindMatcher(sel)
	out := make([]string, 0, matches.Length())
	matches.Each(func(_ int, s *goquery.Selection) {
		if text := selectionText(s); text != "" {
			out = append(out, text)
		}
	})
	return out
}

var selectors sync.Map // selector string -> cascadia.Selector

func compile(selector string) (cascadia.Selector, error) {
	if cached, ok := selectors.Load(selector); ok {
		return cached.(cascadia.Selector), nil
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("compile selector %q: %w", selector, err)
	}
	selectors.Store(selector, sel)
	return sel, nil
}

// selectionText joins the text nodes under s with single spaces, skipping
// script and style elements.
func selectionText(s *goquery.Selection) string {
	var parts []string
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		switch goquery.NodeName(c) {
		case "#text":
			parts = append(parts, c.Text())
		case "script", "style", "#comment":
		default:
			parts = append(parts, selectionText(c))
		}
	})
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
