package wiki

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tavscrape"
	"tavscrape/sections"
)

var (
	rarityAltPattern  = regexp.MustCompile(`(?i)Rarity:\s*(.+)`)
	armourClassNumber = regexp.MustCompile(`(\d+)`)
)

// ExtractName returns the item page's display title, or "" when the page has
// no recognisable title (the caller discards such pages).
func ExtractName(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("h1.firstHeading .mw-page-title-main").Text())
}

// ExtractProperties pulls rarity and armour class out of the item infobox.
//
// Rarity has two markup shapes on the wiki. The standard infobox (helmets,
// armour, accessories) is a property list of li entries with the rarity in a
// colored span. Weapon infoboxes use a dl with the rarity embedded in an
// image's alt text. The first shape that yields a value wins; there is no
// merging. Armour class is read from any "Armour Class: N" property entry.
func ExtractProperties(doc *goquery.Document) (rarity string, armourClass *int) {
	doc.Find(".bg3wiki-property-list ul li").Each(func(_ int, li *goquery.Selection) {
		text := li.Text()
		if strings.Contains(text, "Rarity:") {
			raw := strings.TrimSpace(li.Find(`span[style*="color"]`).First().Text())
			rarity = normalizeRarity(raw)
		}
		if strings.Contains(text, "Armour Class:") {
			if m := armourClassNumber.FindStringSubmatch(text); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					armourClass = &n
				}
			}
		}
	})

	if rarity == "" {
		doc.Find("dl img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
			alt, _ := img.Attr("alt")
			if m := rarityAltPattern.FindStringSubmatch(alt); m != nil {
				rarity = normalizeRarity(m[1])
				return false
			}
			return true
		})
	}

	return rarity, armourClass
}

func normalizeRarity(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.TrimSpace(raw)), "_"))
}

// ExtractEffects collects the item's special-effect strings from the section
// anchored at the "Special" heading. List items are taken verbatim;
// definition lists contribute "term: definition" pairs (or just the term
// when no definition follows). Paragraphs in between are narrative filler
// ("The wearer gains:") and are skipped. A page without a Special section
// yields no effects.
func ExtractEffects(doc *goquery.Document) []string {
	anchor := doc.Find("#Special")
	if anchor.Length() == 0 {
		return nil
	}

	var effects []string
	sections.Walk(anchor.Closest("h3"), sections.StopAtHeading("h2"), func(node *goquery.Selection) bool {
		switch {
		case node.Is("ul"):
			node.Find("li").Each(func(_ int, li *goquery.Selection) {
				if text := strings.TrimSpace(li.Text()); text != "" {
					effects = append(effects, text)
				}
			})
		case node.Is("dl"):
			node.Find("dt").Each(func(_ int, dt *goquery.Selection) {
				term := strings.TrimSpace(dt.Text())
				if term == "" {
					return
				}
				def := strings.TrimSpace(dt.NextFiltered("dd").Text())
				if def != "" {
					effects = append(effects, term+": "+def)
				} else {
					effects = append(effects, term)
				}
			})
		}
		return true
	})

	return effects
}

// ExtractLocation parses the "Where to find" section into a Location. The
// section must contain a tooltip box; its first list item's first link is
// the area name and the item's full text (whitespace-collapsed) is the
// description. Missing section, tooltip box, or list item all yield an empty
// location with act 0.
func ExtractLocation(doc *goquery.Document, locs tavscrape.Locations) tavscrape.Location {
	anchor := doc.Find("#Where_to_find")
	if anchor.Length() == 0 {
		return tavscrape.Location{}
	}

	var box *goquery.Selection
	sections.Walk(anchor.Closest("h2"), sections.StopAtHeading("h2"), func(node *goquery.Selection) bool {
		if node.HasClass("bg3wiki-tooltip-box") {
			box = node
			return false
		}
		if nested := node.Find(".bg3wiki-tooltip-box"); nested.Length() > 0 {
			box = nested.First()
			return false
		}
		return true
	})
	if box == nil {
		return tavscrape.Location{}
	}

	firstLi := box.Find("ul li").First()
	if firstLi.Length() == 0 {
		return tavscrape.Location{}
	}

	area := strings.TrimSpace(firstLi.Find("a").First().Text())
	description := sections.CleanText(firstLi.Text())

	return tavscrape.Location{
		Description: description,
		Area:        area,
		Act:         locs.InferAct(description),
	}
}
