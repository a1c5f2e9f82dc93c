package builds

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tavscrape"
)

func slugOf(name string) string {
	return tavscrape.Slugify(name)
}

// classKeyword pairs a class with the build-name keywords that imply it.
// Multiclass portmanteaus ("Lockadin", "Sorcadin") appear under every class
// they blend.
type classKeyword struct {
	Class    string
	Keywords []string
}

var classKeywords = []classKeyword{
	{"Barbarian", []string{"barbarian", "berserker", "wildheart", "giant"}},
	{"Bard", []string{"bard", "bardadin", "bardlock", "lorecerer", "reverob", "loredin"}},
	{"Cleric", []string{"cleric", "blaster"}},
	{"Druid", []string{"druid", "thundersnow", "swarmkeeper"}},
	{"Fighter", []string{"fighter", "eldritch knight", "champion", "battle master", "2hcb", "hexknight"}},
	{"Monk", []string{"monk", "ninja"}},
	{"Paladin", []string{"paladin", "lockadin", "bardadin", "sorcadin", "loredin"}},
	{"Ranger", []string{"ranger", "gloomstalker", "beast master", "selune", "holy archer", "arcane archer"}},
	{"Rogue", []string{"rogue", "assassin", "thief", "arcane trickster", "swashbuckler", "gloom thief"}},
	{"Sorcerer", []string{"sorcerer", "sorcadin", "sorlock", "lorecerer", "stormfrost", "dragonling"}},
	{"Warlock", []string{"warlock", "lockadin", "hexblade", "bladelock", "bardlock", "sorlock", "hexknight"}},
	{"Wizard", []string{"wizard", "arcane defender", "bladesinger"}},
}

var narrativeClassPattern = regexp.MustCompile(`^(\d+)\s+(.+)$`)

// ExtractClasses determines a build's class composition. Three strategies
// are tried in order and the first that yields any result wins; they are a
// fallback chain, not merged.
//
//  1. Scan the first column of the level-up table, whitelisted against the
//     twelve class names. The first column mostly holds feature choices
//     ("Spells", "Feat"); multiclass builds emit a class-name row whenever
//     the table switches class. One matching row counts as one level, which
//     is a proxy, not an authoritative level total; a class-name row that
//     appears for any other reason is over-counted. Preserved as-is from the
//     source data's known behavior.
//  2. Narrative format: bold text like "9 Open Hand Monk".
//  3. Keyword match against the build's own name, with zero levels. This
//     catches pure-class builds whose tables never name the class.
func ExtractClasses(doc *goquery.Document, buildName string) []tavscrape.ClassLevel {
	counts := map[string]int{}
	var order []string

	table := doc.Find("article table").First()
	if table.Length() > 0 {
		table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			cellText := strings.TrimSpace(row.Find("td").First().Text())
			if !tavscrape.IsClassName(cellText) {
				return
			}
			if counts[cellText] == 0 {
				order = append(order, cellText)
			}
			counts[cellText]++
		})

		if len(order) > 0 {
			classes := make([]tavscrape.ClassLevel, 0, len(order))
			for _, cls := range order {
				classes = append(classes, tavscrape.ClassLevel{Class: cls, Levels: counts[cls]})
			}
			return classes
		}
	}

	var narrative []tavscrape.ClassLevel
	doc.Find("article strong").Each(func(_ int, el *goquery.Selection) {
		m := narrativeClassPattern.FindStringSubmatch(strings.TrimSpace(el.Text()))
		if m == nil {
			return
		}
		levels, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}
		narrative = append(narrative, tavscrape.ClassLevel{
			Class:  strings.TrimSpace(m[2]),
			Levels: levels,
		})
	})
	if len(narrative) > 0 {
		return narrative
	}

	nameLower := strings.ToLower(buildName)
	var fromName []tavscrape.ClassLevel
	for _, ck := range classKeywords {
		for _, kw := range ck.Keywords {
			if strings.Contains(nameLower, kw) {
				fromName = append(fromName, tavscrape.ClassLevel{Class: ck.Class})
				break
			}
		}
	}
	return fromName
}
