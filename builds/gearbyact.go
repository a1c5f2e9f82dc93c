package builds

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tavscrape/sections"
)

var (
	act1Heading = regexp.MustCompile(`act\s*1`)
	act2Heading = regexp.MustCompile(`act\s*2|mid.?game`)
	act3Heading = regexp.MustCompile(`act\s*3|final`)
)

// ExtractGearByAct collects the raw narrative gear text per act. Any h2/h3
// in the article whose text mentions an act (or its "mid-game"/"final"
// synonyms) opens a section; all sibling text until the next heading is
// joined into one block and appended under that act. The blocks stay
// unstructured; resolving them into item names is the cross-referencer's
// and the gear-recommendation extractor's job.
func ExtractGearByAct(doc *goquery.Document) map[string][]string {
	gearByAct := map[string][]string{"1": {}, "2": {}, "3": {}}

	doc.Find("article h2, article h3").Each(func(_ int, heading *goquery.Selection) {
		headingText := strings.ToLower(heading.Text())

		act := 0
		switch {
		case act1Heading.MatchString(headingText):
			act = 1
		case act2Heading.MatchString(headingText):
			act = 2
		case act3Heading.MatchString(headingText):
			act = 3
		default:
			return
		}

		var parts []string
		sections.Walk(heading, sections.StopAtHeading("h2", "h3"), func(node *goquery.Selection) bool {
			if text := strings.TrimSpace(node.Text()); text != "" {
				parts = append(parts, text)
			}
			return true
		})

		if len(parts) > 0 {
			key := strconv.Itoa(act)
			gearByAct[key] = append(gearByAct[key], strings.Join(parts, " "))
		}
	})

	return gearByAct
}
