package builds

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tavscrape"
	"tavscrape/sections"
)

var (
	abilityScorePattern = regexp.MustCompile(`(?i)(STR|DEX|CON|INT|WIS|CHA)\s*[-:]\s*(\d+)`)
	iconTokenPattern    = regexp.MustCompile(`\[.*?\]`)
	leadingDashes       = regexp.MustCompile(`^[\s—–-]+`)

	racesHeading      = regexp.MustCompile(`(?i)^races?$`)
	backgroundHeading = regexp.MustCompile(`(?i)^background$`)
	cantripsHeading   = regexp.MustCompile(`(?i)^cantrips?$`)
	spellsHeading     = regexp.MustCompile(`(?i)^spells?$`)
	skillsHeading     = regexp.MustCompile(`(?i)^skills?`)
	abilitiesHeading  = regexp.MustCompile(`(?i)^abilities$`)
)

var abilityAbbr = map[string]string{
	"Strength": "STR", "Dexterity": "DEX", "Constitution": "CON",
	"Intelligence": "INT", "Wisdom": "WIS", "Charisma": "CHA",
}

// ParseAbilityScores scans free text for patterns like "STR - 16" or
// "DEX: 14" and returns the six scores. All six abbreviations must be
// present; a partial set returns nil rather than a half-filled object, since
// a few stray matches in unrelated text are worse than no data.
func ParseAbilityScores(text string) map[string]int {
	scores := map[string]int{}
	for _, m := range abilityScorePattern.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[2]); err == nil {
			scores[strings.ToUpper(m[1])] = n
		}
	}
	for _, a := range tavscrape.AbilityNames {
		if scores[a] == 0 {
			return nil
		}
	}
	return scores
}

// ExtractCharCreate assembles character-creation recommendations from a
// build page. Ability scores try three shapes in order: the guide's custom
// ability-row component, a legacy "Abilities" table, and finally the
// all-or-nothing free-text scan. The remaining fields each live under their
// own heading; the first heading matching a field wins. Returns nil when
// neither ability scores nor races were found, so an enrichment pass never
// writes an empty record.
func ExtractCharCreate(doc *goquery.Document) *tavscrape.CharCreate {
	result := &tavscrape.CharCreate{
		AbilityScores:    map[string]int{},
		Races:            []tavscrape.RaceRec{},
		BackgroundSkills: []string{},
		Skills:           []string{},
		Cantrips:         []string{},
		Spells:           []string{},
	}

	doc.Find(".bg3-ability-row").Each(func(_ int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find(".bg3-ability-name").Text())
		val, err := strconv.Atoi(strings.TrimSpace(row.Find(".bg3-ability-value").Text()))
		if abbr, ok := abilityAbbr[name]; ok && err == nil {
			result.AbilityScores[abbr] = val
		}
	})

	doc.Find("article h2, article h3").Each(func(_ int, el *goquery.Selection) {
		heading := strings.TrimSpace(el.Text())

		if racesHeading.MatchString(heading) && len(result.Races) == 0 {
			result.Races = extractRaces(el)
		}

		if backgroundHeading.MatchString(heading) && result.Background == "" {
			result.Background, result.BackgroundSkills = extractBackground(el)
		}

		if cantripsHeading.MatchString(heading) && len(result.Cantrips) == 0 {
			result.Cantrips = tableFirstColumn(el)
		}

		if spellsHeading.MatchString(heading) && len(result.Spells) == 0 {
			result.Spells = tableFirstColumn(el)
		}

		if skillsHeading.MatchString(heading) && len(result.Skills) == 0 {
			if list := sections.First(el, sections.StopAtHeading("h2", "h3"), "ul, ol"); list != nil {
				list.Find("li").Each(func(_ int, li *goquery.Selection) {
					if s := strings.TrimSpace(li.Text()); s != "" {
						result.Skills = append(result.Skills, s)
					}
				})
			}
		}

		if abilitiesHeading.MatchString(heading) && len(result.AbilityScores) == 0 {
			extractLegacyAbilities(el, result.AbilityScores)
		}
	})

	if len(result.AbilityScores) == 0 {
		if scores := ParseAbilityScores(doc.Find("article").Text()); scores != nil {
			result.AbilityScores = scores
		}
	}

	if len(result.AbilityScores) == 0 && len(result.Races) == 0 {
		return nil
	}
	return result
}

// extractRaces reads up to three race recommendations from the section after
// a "Races" heading. A table (image | features | description) takes
// precedence; a list is the fallback, with the bold lead-in as the race name
// and the rest of the item as the reason.
func extractRaces(heading *goquery.Selection) []tavscrape.RaceRec {
	races := []tavscrape.RaceRec{}

	sections.Walk(heading, sections.StopAtHeading("h2"), func(node *goquery.Selection) bool {
		if len(races) > 0 {
			return false
		}

		if node.Is("table") || node.Find("table").Length() > 0 {
			table := node
			if !node.Is("table") {
				table = node.Find("table").First()
			}
			table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
				cells := row.Find("td")
				if cells.Length() < 2 {
					return
				}
				name := strings.TrimSpace(cells.First().Find("a, strong").First().Text())
				if name == "" {
					name = strings.TrimSpace(cells.First().Text())
				}
				reason := sections.CleanText(cells.Last().Text())
				if name != "" {
					races = append(races, tavscrape.RaceRec{Name: name, Reason: reason})
				}
			})
		} else if node.Is("ul, ol") {
			node.Find("li").Each(func(_ int, li *goquery.Selection) {
				bold := strings.TrimSpace(li.Find("strong").First().Text())
				if bold == "" {
					return
				}
				full := sections.CleanText(li.Text())
				reason := leadingDashes.ReplaceAllString(strings.Replace(full, bold, "", 1), "")
				races = append(races, tavscrape.RaceRec{Name: bold, Reason: reason})
			})
		}

		return true
	})

	if len(races) > 3 {
		races = races[:3]
	}
	return races
}

// extractBackground reads the recommended background from the section after
// a "Background" heading. The table layout (Background | Skills |
// Description) takes precedence, with skills picked out of the second
// column by name; the first bold name in a paragraph or list is the
// fallback, with no skills.
func extractBackground(heading *goquery.Selection) (string, []string) {
	background := ""
	skills := []string{}
	paragraphFallback := ""

	sections.Walk(heading, sections.StopAtHeading("h2", "h3"), func(node *goquery.Selection) bool {
		if node.Is("table") {
			node.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
				if background != "" {
					return
				}
				cells := row.Find("td")
				if cells.Length() == 0 {
					return
				}
				name := strings.TrimSpace(cells.First().Find("a, strong").First().Text())
				if name == "" {
					name = strings.TrimSpace(iconTokenPattern.ReplaceAllString(cells.First().Text(), ""))
				}
				if name != "" {
					background = name
					skills = skillsInText(cells.Eq(1).Text())
				}
			})
			if background != "" {
				return false
			}
		} else if node.Is("p, ul, ol") && paragraphFallback == "" {
			paragraphFallback = strings.TrimSpace(node.Find("strong, b").First().Text())
		}
		return true
	})

	if background == "" {
		background = paragraphFallback
	}
	return background, skills
}

func skillsInText(text string) []string {
	var found []string
	for _, skill := range tavscrape.SkillNames {
		if strings.Contains(text, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// extractLegacyAbilities handles the older table shape under an "Abilities"
// heading: rows of [full ability name, value, description], where the value
// cell may read "16 (14+2)" and only the leading number counts.
func extractLegacyAbilities(heading *goquery.Selection, scores map[string]int) {
	fullToAbbr := map[string]string{
		"strength": "STR", "dexterity": "DEX", "constitution": "CON",
		"intelligence": "INT", "wisdom": "WIS", "charisma": "CHA",
	}

	table := sections.First(heading, sections.StopAtHeading("h2", "h3"), "table")
	if table == nil {
		return
	}

	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		abbr, ok := fullToAbbr[strings.ToLower(strings.TrimSpace(cells.First().Text()))]
		if !ok {
			return
		}
		valText := strings.TrimSpace(cells.Eq(1).Text())
		if i := strings.IndexByte(valText, ' '); i > 0 {
			valText = valText[:i]
		}
		if val, err := strconv.Atoi(valText); err == nil {
			scores[abbr] = val
		}
	})
}

// tableFirstColumn returns the first-column text of the table following a
// heading, with icon tokens like "[Fire Bolt]" stripped.
func tableFirstColumn(heading *goquery.Selection) []string {
	table := sections.First(heading, sections.StopAtHeading("h2", "h3"), "table")
	if table == nil {
		return []string{}
	}

	items := []string{}
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		name := strings.TrimSpace(iconTokenPattern.ReplaceAllString(row.Find("td").First().Text(), ""))
		if name != "" {
			items = append(items, name)
		}
	})
	return items
}
