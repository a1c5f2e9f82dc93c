package builds

import (
	"log"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tavscrape"
	"tavscrape/fetch"
	"tavscrape/store"
)

var tierSuffix = regexp.MustCompile(`(?i)-?Tier`)

// ParseBuildPage assembles the base Build record from a loaded guide page.
// The on-page tier badge overrides the catalog tier, but only when it parses
// to a recognised tier value.
func ParseBuildPage(doc *goquery.Document, ref BuildRef) tavscrape.Build {
	tier := ref.Tier
	if badge := strings.TrimSpace(doc.Find(".post-tags__build-tier").First().Text()); badge != "" {
		extracted := strings.TrimSpace(tierSuffix.ReplaceAllString(badge, ""))
		if tavscrape.IsValidTier(extracted) {
			tier = extracted
		}
	}

	return tavscrape.Build{
		ID:        tavscrape.Slugify(ref.Name),
		Name:      ref.Name,
		Tier:      tier,
		SourceURL: ref.URL,
		Classes:   ExtractClasses(doc, ref.Name),
		GearByAct: ExtractGearByAct(doc),
	}
}

// ScrapeAll fetches every catalog entry and writes the assembled builds in
// one pass at the end. The catalog is small and fixed, so there is no
// per-build checkpointing. A failed page is logged and omitted from the
// output; it is neither retried nor kept as an empty record.
func ScrapeAll(c *fetch.Client, buildStore *store.BuildStore) ([]tavscrape.Build, error) {
	var all []tavscrape.Build

	for i, ref := range Catalog {
		log.Printf("INFO: [%d/%d] %s...", i+1, len(Catalog), ref.Name)

		c.Wait()
		doc, err := c.Document(ref.URL)
		if err != nil {
			log.Printf("WARN: skipping %s: %v", ref.Name, err)
			continue
		}

		build := ParseBuildPage(doc, ref)
		all = append(all, build)
		log.Printf("INFO: tier:%s classes:%d gear(act1:%d act2:%d act3:%d)",
			build.Tier, len(build.Classes),
			len(build.GearByAct["1"]), len(build.GearByAct["2"]), len(build.GearByAct["3"]))
	}

	if err := buildStore.Save(all); err != nil {
		return all, err
	}
	log.Printf("INFO: builds file written (%d builds)", len(all))
	return all, nil
}
