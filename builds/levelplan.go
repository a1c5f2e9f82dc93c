package builds

import (
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"tavscrape"
	"tavscrape/sections"
)

var levelingHeading = regexp.MustCompile(`(?i)leveling`)

// ExtractLevelPlan reads the "Leveling Overview" table into one entry per
// character level. The guide splits a level's choices across rows:
//
//	level row (>=2 cells): [level, class, optional first choice]
//	continuation row (1 cell): one more choice for the current level
//
// Header rows contain only th cells and produce zero td cells, so they fall
// out naturally. A multi-cell row whose first cell is not an integer is
// skipped whole, including a malformed continuation mislabeled as a level
// row, which therefore disappears silently.
func ExtractLevelPlan(doc *goquery.Document) []tavscrape.LevelEntry {
	var heading *goquery.Selection
	doc.Find("#post-body-text h2").EachWithBreak(func(_ int, h2 *goquery.Selection) bool {
		if levelingHeading.MatchString(h2.Text()) {
			heading = h2
			return false
		}
		return true
	})
	if heading == nil {
		return nil
	}

	table := heading.Next()
	for table.Length() > 0 && !table.Is("table") {
		table = table.Next()
	}
	if table.Length() == 0 {
		return nil
	}

	var plan []tavscrape.LevelEntry
	var current *tavscrape.LevelEntry

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("td").Each(func(_ int, td *goquery.Selection) {
			if text := sections.CleanText(td.Text()); text != "" {
				cells = append(cells, text)
			}
		})

		switch {
		case len(cells) == 0:
			return
		case len(cells) >= 2:
			level, err := strconv.Atoi(cells[0])
			if err != nil {
				return
			}
			entry := tavscrape.LevelEntry{Level: level, Cls: cells[1], Choices: []string{}}
			if len(cells) > 2 {
				entry.Choices = append(entry.Choices, cells[2])
			}
			plan = append(plan, entry)
			current = &plan[len(plan)-1]
		case current != nil:
			current.Choices = append(current.Choices, cells[0])
		}
	})

	return plan
}
