package wiki

import (
	"log"

	"tavscrape"
	"tavscrape/fetch"
	"tavscrape/store"
)

// ScrapeAllGear runs the full gear scrape: every category in Categories is
// paginated into item URLs and each item is scraped with the client's delay
// between requests. After each category completes, the entire accumulation
// so far is flushed to the per-act gear files; the flush is a checkpoint
// that fully rewrites the files, so gear from earlier categories survives a
// later category failing irrecoverably.
//
// A category whose pagination fails is skipped with a warning. A single
// item's failure is logged and never stops the batch.
func ScrapeAllGear(c *fetch.Client, locs tavscrape.Locations, gearStore *store.GearStore) ([]tavscrape.GearItem, error) {
	var all []tavscrape.GearItem

	for _, cat := range Categories {
		log.Printf("INFO: scraping %s (%s)", cat.Slot, cat.URL)

		urls, err := ScrapeCategory(c, cat.URL)
		if err != nil {
			log.Printf("WARN: skipping category %s: %v", cat.URL, err)
			continue
		}
		log.Printf("INFO: %d items found", len(urls))

		for i, itemURL := range urls {
			c.Wait()
			item, err := ScrapeItem(c, itemURL, cat.Slot, locs)
			if err != nil {
				log.Printf("WARN: skipping %s: %v", itemURL, err)
				continue
			}
			if item != nil {
				all = append(all, *item)
			}
			if (i+1)%10 == 0 {
				log.Printf("INFO: %d/%d...", i+1, len(urls))
			}
		}

		if err := gearStore.Flush(all); err != nil {
			return all, err
		}
		byAct := tavscrape.PartitionByAct(all)
		log.Printf("INFO: saved (act1:%d act2:%d act3:%d unknown:%d)",
			len(byAct[1]), len(byAct[2]), len(byAct[3]), len(byAct[0]))
	}

	if n := len(tavscrape.PartitionByAct(all)[0]); n > 0 {
		log.Printf("WARN: %d items had no act, check the unknown gear file", n)
	}

	return all, nil
}
