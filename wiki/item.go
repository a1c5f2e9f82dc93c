package wiki

import (
	"tavscrape"
	"tavscrape/fetch"
)

// ScrapeItem fetches one item page and assembles a GearItem. It returns
// (nil, nil) when the item is filtered out:
//
//   - no resolvable name
//   - empty or "common" rarity (the pipeline only keeps uncommon and above)
//   - no special effects (mundane gear is not worth surfacing)
//
// A fetch failure is returned as an error so the batch driver can log the
// skip; it never aborts the enclosing batch.
func ScrapeItem(c *fetch.Client, url, slot string, locs tavscrape.Locations) (*tavscrape.GearItem, error) {
	doc, err := c.Document(url)
	if err != nil {
		return nil, err
	}

	name := ExtractName(doc)
	if name == "" {
		return nil, nil
	}

	rarity, armourClass := ExtractProperties(doc)
	if rarity == "" || rarity == "common" {
		return nil, nil
	}

	effects := ExtractEffects(doc)
	if len(effects) == 0 {
		return nil, nil
	}

	location := ExtractLocation(doc, locs)

	return &tavscrape.GearItem{
		ID:          tavscrape.Slugify(name),
		Name:        name,
		Slot:        slot,
		Rarity:      rarity,
		ArmourClass: armourClass,
		Effects:     effects,
		Stats:       map[string]int{},
		Location:    location,
		BuildTags:   []string{},
		WikiURL:     url,
	}, nil
}
