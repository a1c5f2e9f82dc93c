package builds

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tavscrape"
	"tavscrape/sections"
)

var bisAnnotation = regexp.MustCompile(`(?i)\s*\((?:BiS|Best in Slot)\)\s*`)

// ExtractGearRecs resolves the Equipment section of a build page into clean
// item names per act. The section runs from the "Equipment" h2 to the next
// h2; inside it, h3 sub-headings mark the current act ("Act 1"/"early",
// "Act 2"/"mid", "Act 3"/"final"/"late"). Every table in an act's scope,
// including tables wrapped in a div, contributes one candidate per row:
// column 2 of a 3-column layout (Slot | Item | Description), column 1 of a
// 2-column layout, or the sole column. Names are cleaned of best-in-slot
// annotations and zero-width characters, deduplicated per act in first-seen
// order, and rejected when shorter than 3 or longer than 79 characters or
// literally "item" (a leaked header cell). Returns nil when nothing
// resolved.
func ExtractGearRecs(doc *goquery.Document) *tavscrape.GearRecs {
	recs := &tavscrape.GearRecs{Act1: []string{}, Act2: []string{}, Act3: []string{}}

	inEquip := false
	var current *[]string

	doc.Find("#post-body-text").Children().EachWithBreak(func(_ int, el *goquery.Selection) bool {
		text := strings.ToLower(strings.TrimSpace(el.Text()))

		if el.Is("h2") {
			if strings.Contains(text, "equipment") {
				inEquip = true
				return true
			}
			// Next h2 after the Equipment section ends the scope.
			return !inEquip
		}
		if !inEquip {
			return true
		}

		if el.Is("h3") {
			switch {
			case strings.Contains(text, "act 1") || strings.Contains(text, "early"):
				current = &recs.Act1
			case strings.Contains(text, "act 2") || strings.Contains(text, "mid"):
				current = &recs.Act2
			case strings.Contains(text, "act 3") || strings.Contains(text, "final") || strings.Contains(text, "late"):
				current = &recs.Act3
			}
			return true
		}

		if current == nil {
			return true
		}

		if el.Is("table") {
			collectRecTable(el, current)
		} else {
			el.Find("table").Each(func(_ int, t *goquery.Selection) {
				collectRecTable(t, current)
			})
		}
		return true
	})

	if len(recs.Act1)+len(recs.Act2)+len(recs.Act3) == 0 {
		return nil
	}
	return recs
}

func collectRecTable(table *goquery.Selection, act *[]string) {
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}
		tds := row.Find("td")

		raw := ""
		switch {
		case tds.Length() >= 3:
			raw = tds.Eq(1).Text()
		case tds.Length() >= 1:
			raw = tds.Eq(0).Text()
		}

		name := cleanRecName(raw)
		if name == "" || strings.EqualFold(name, "item") {
			return
		}
		if len(name) < 3 || len(name) > 79 {
			return
		}
		for _, existing := range *act {
			if existing == name {
				return
			}
		}
		*act = append(*act, name)
	})
}

// cleanRecName replaces a best-in-slot annotation with a space, so a
// mid-name annotation ("Foo (BiS) Edition") never glues the surrounding
// words together; CleanText then collapses the duplicate whitespace.
func cleanRecName(raw string) string {
	return sections.CleanText(bisAnnotation.ReplaceAllString(raw, " "))
}
