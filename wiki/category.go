// Package wiki scrapes gear data from the community wiki: category listings
// are paginated into item URLs, and each item page is parsed into a GearItem
// through structural extractors over the wiki's infobox markup.
package wiki

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tavscrape/fetch"
)

// Category pairs a gear slot with the wiki category page listing items of
// that slot. The slot on a scraped item comes from this table, never from
// the item page itself.
type Category struct {
	Slot string
	URL  string
}

// Categories is the fixed scrape order. Armour has no single category on the
// wiki; it is split by weight class.
var Categories = []Category{
	{Slot: "helmet", URL: "https://bg3.wiki/wiki/Category:Helmets"},
	{Slot: "armour", URL: "https://bg3.wiki/wiki/Category:Light_Armour"},
	{Slot: "armour", URL: "https://bg3.wiki/wiki/Category:Medium_Armour"},
	{Slot: "armour", URL: "https://bg3.wiki/wiki/Category:Heavy_Armour"},
	{Slot: "gloves", URL: "https://bg3.wiki/wiki/Category:Gloves"},
	{Slot: "boots", URL: "https://bg3.wiki/wiki/Category:Boots"},
	{Slot: "amulet", URL: "https://bg3.wiki/wiki/Category:Amulets"},
	{Slot: "ring", URL: "https://bg3.wiki/wiki/Category:Rings"},
	{Slot: "weapon", URL: "https://bg3.wiki/wiki/Category:Weapons"},
	{Slot: "shield", URL: "https://bg3.wiki/wiki/Category:Shields"},
	{Slot: "cloak", URL: "https://bg3.wiki/wiki/Category:Cloaks"},
}

// ScrapeCategory collects all item page URLs from a category listing,
// following MediaWiki "next page" links until none remain. Results are in
// page order: all of page 1, then page 2, and so on. The client's delay is
// observed before each follow-up page. Fetch failures propagate to the
// caller, which decides whether to skip the category.
func ScrapeCategory(c *fetch.Client, categoryURL string) ([]string, error) {
	doc, err := c.Document(categoryURL)
	if err != nil {
		return nil, err
	}

	var urls []string
	doc.Find(".mw-category-columns .mw-category-group a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		if abs, err := resolveURL(categoryURL, href); err == nil {
			urls = append(urls, abs)
		}
	})

	nextLink := ""
	doc.Find("#mw-pages a").Each(func(_ int, a *goquery.Selection) {
		if strings.TrimSpace(a.Text()) != "next page" {
			return
		}
		if href, ok := a.Attr("href"); ok {
			if abs, err := resolveURL(categoryURL, href); err == nil {
				nextLink = abs
			}
		}
	})

	if nextLink != "" {
		c.Wait()
		nextURLs, err := ScrapeCategory(c, nextLink)
		if err != nil {
			return nil, err
		}
		urls = append(urls, nextURLs...)
	}

	return urls, nil
}

func resolveURL(base, href string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	ref, err := b.Parse(href)
	if err != nil {
		return "", err
	}
	return ref.String(), nil
}
