package builds

import (
	"log"

	"github.com/PuerkitoBio/goquery"

	"tavscrape"
	"tavscrape/fetch"
	"tavscrape/store"
)

// enrichOptions controls one enrichment pass over the stored builds.
type enrichOptions struct {
	// label names the pass in log output.
	label string
	// catalogOnly skips builds without a catalog entry instead of falling
	// back to their stored source URL.
	catalogOnly bool
	// apply extracts the pass's field group from the page and writes it onto
	// the build. It must only assign when it extracted non-empty data, and
	// must never touch other fields; it reports whether it updated anything.
	apply func(doc *goquery.Document, b *tavscrape.Build) bool
}

// enrich is the shared shape of every enrichment pass: load the existing
// builds file, re-fetch each build's source page, apply one extractor, and
// persist the whole collection once at the end. Because apply never
// overwrites with empty data, each pass is additive and safely re-runnable
// in any order after the base scrape exists.
func enrich(c *fetch.Client, buildStore *store.BuildStore, opts enrichOptions) error {
	builds, err := buildStore.Load()
	if err != nil {
		return err
	}

	updated := 0
	for i := range builds {
		b := &builds[i]

		url := catalogURL(b.ID)
		if url == "" {
			if opts.catalogOnly {
				log.Printf("INFO: [%d/%d] %s has no catalog URL, skipping", i+1, len(builds), b.Name)
				continue
			}
			url = b.SourceURL
		}

		log.Printf("INFO: [%d/%d] %s...", i+1, len(builds), b.Name)

		c.Wait()
		doc, err := c.Document(url)
		if err != nil {
			log.Printf("WARN: skipping %s: %v", b.Name, err)
			continue
		}

		if opts.apply(doc, b) {
			updated++
		} else {
			log.Printf("INFO: no %s data found for %s", opts.label, b.Name)
		}
	}

	if err := buildStore.Save(builds); err != nil {
		return err
	}
	log.Printf("INFO: builds file updated (%d builds got %s data)", updated, opts.label)
	return nil
}

// EnrichCharCreate adds character-creation recommendations to every stored
// build that has them on its guide page.
func EnrichCharCreate(c *fetch.Client, buildStore *store.BuildStore) error {
	return enrich(c, buildStore, enrichOptions{
		label: "char-create",
		apply: func(doc *goquery.Document, b *tavscrape.Build) bool {
			cc := ExtractCharCreate(doc)
			if cc == nil {
				return false
			}
			b.CharCreate = cc
			return true
		},
	})
}

// EnrichBlurbs adds the raw intro blurb to every stored build.
func EnrichBlurbs(c *fetch.Client, buildStore *store.BuildStore) error {
	return enrich(c, buildStore, enrichOptions{
		label: "blurb",
		apply: func(doc *goquery.Document, b *tavscrape.Build) bool {
			blurb := ExtractBlurb(doc)
			if blurb == "" {
				return false
			}
			b.BlurbRaw = blurb
			return true
		},
	})
}

// EnrichLevelPlans adds the level-up plan to every stored build whose guide
// has a leveling table.
func EnrichLevelPlans(c *fetch.Client, buildStore *store.BuildStore) error {
	return enrich(c, buildStore, enrichOptions{
		label: "level-plan",
		apply: func(doc *goquery.Document, b *tavscrape.Build) bool {
			plan := ExtractLevelPlan(doc)
			if len(plan) == 0 {
				return false
			}
			b.LevelPlan = plan
			return true
		},
	})
}

// EnrichGearRecs adds resolved per-act gear recommendations. Builds outside
// the catalog (hand-merged community builds) have no guide page in the
// expected shape and are skipped.
func EnrichGearRecs(c *fetch.Client, buildStore *store.BuildStore) error {
	return enrich(c, buildStore, enrichOptions{
		label:       "gear-recs",
		catalogOnly: true,
		apply: func(doc *goquery.Document, b *tavscrape.Build) bool {
			recs := ExtractGearRecs(doc)
			if recs == nil {
				return false
			}
			b.GearRecs = recs
			return true
		},
	})
}
