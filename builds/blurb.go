package builds

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tavscrape/sections"
)

const blurbMaxChars = 500

var browserSupportNote = regexp.MustCompile(`(?i)your browser doesn'?t support`)

// ExtractBlurb returns the build's intro text: the paragraphs between the
// first and second h2 of the article body. The guide's generic lead-in and
// table of contents sit before the first h2, so this window lands on the
// actual build overview. Paragraphs under 40 characters are layout noise and
// are dropped, as are embedded-video fallback notices. Collection stops once
// roughly 500 characters have accumulated.
func ExtractBlurb(doc *goquery.Document) string {
	content := doc.Find("#post-body-text").First()
	if content.Length() == 0 {
		return ""
	}

	h2Count := 0
	charCount := 0
	var parts []string

	content.Children().EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if el.Is("h2") {
			h2Count++
			return h2Count < 2
		}

		if h2Count == 1 && el.Is("p") {
			text := sections.CleanText(el.Text())
			if len(text) < 40 || browserSupportNote.MatchString(text) {
				return true
			}
			parts = append(parts, text)
			charCount += len(text)
			if charCount >= blurbMaxChars {
				return false
			}
		}
		return true
	})

	return strings.TrimSpace(strings.Join(parts, " "))
}
