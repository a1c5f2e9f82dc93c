// Package sections implements the section-scoped traversal shared by all the
// HTML field extractors: starting from a heading, walk forward through
// sibling elements collecting content until the next heading of equal or
// higher level.
package sections

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	zeroWidth  = regexp.MustCompile("[\u200b\u200c\u200d\u2060\ufeff]")
	whitespace = regexp.MustCompile(`\s+`)
)

// Walk visits the siblings following start in document order. It stops when
// stop returns true for a sibling (that sibling is not visited) or when
// visit returns false.
func Walk(start *goquery.Selection, stop func(*goquery.Selection) bool, visit func(*goquery.Selection) bool) {
	for node := start.Next(); node.Length() > 0; node = node.Next() {
		if stop(node) {
			return
		}
		if !visit(node) {
			return
		}
	}
}

// StopAtHeading returns a stop predicate matching any of the given heading
// selectors, e.g. StopAtHeading("h2") or StopAtHeading("h2", "h3").
func StopAtHeading(levels ...string) func(*goquery.Selection) bool {
	selector := strings.Join(levels, ", ")
	return func(s *goquery.Selection) bool {
		return s.Is(selector)
	}
}

// First returns the first sibling after start that matches selector, or nil
// if a stop node is reached first.
func First(start *goquery.Selection, stop func(*goquery.Selection) bool, selector string) *goquery.Selection {
	var found *goquery.Selection
	Walk(start, stop, func(s *goquery.Selection) bool {
		if s.Is(selector) {
			found = s
			return false
		}
		return true
	})
	return found
}

// CleanText strips zero-width characters and collapses runs of whitespace to
// a single space.
func CleanText(s string) string {
	s = zeroWidth.ReplaceAllString(s, "")
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}
