// Package goquery reads places from rendered result pages using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mapaddr"
)

// Ensure Extractor implements mapaddr.Extractor at compile time.
var _ mapaddr.Extractor = (*Extractor)(nil)

// Extractor reads the place heading and address from HTML using the
// selectors of a mapaddr.Layout.
type Extractor struct {
	layout mapaddr.Layout
}

// NewExtractor creates a new Extractor for the given layout.
func NewExtractor(layout mapaddr.Layout) *Extractor {
	return &Extractor{layout: layout}
}

// Extract reads the first heading match and the first address match.
// Whitespace-only matches count as missing. Matched text is returned as-is.
//
// Text is the element's text content without script, style, template and
// hidden descendants. Unlike a browser's innerText, CSS visibility and
// layout-driven whitespace are not applied.
func (e *Extractor) Extract(html string) mapaddr.Resolution {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return mapaddr.Resolution{Failure: mapaddr.FailureHeadingMissing}
	}

	name, ok := firstText(doc.Selection, e.layout.Heading)
	if !ok {
		return mapaddr.Resolution{Failure: mapaddr.FailureHeadingMissing}
	}

	address, ok := firstText(doc.Selection, e.layout.Address)
	if !ok {
		return mapaddr.Resolution{Name: name, Failure: mapaddr.FailureAddressMissing}
	}

	return mapaddr.Resolution{Name: name, Address: address}
}

// firstText returns the text of the first element matching selector.
// Invalid selectors match nothing.
func firstText(s *goquery.Selection, selector string) (string, bool) {
	if selector == "" {
		return "", false
	}
	sel := s.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	text := renderedText(sel)
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

// unrendered matches descendants a browser never shows as text.
const unrendered = "script, style, noscript, template, [hidden]"

// renderedText returns the text of sel without unrendered descendants.
func renderedText(sel *goquery.Selection) string {
	c := sel.Clone()
	c.Find(unrendered).Remove()
	return c.Text()
}
