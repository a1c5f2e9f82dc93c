package tavscrape

import (
	"regexp"
	"strings"
)

// Valid values for GearItem.Slot. A slot is assigned from the wiki category
// an item was discovered under, never inferred from page content.
var ValidSlots = []string{
	"helmet", "armour", "gloves", "boots", "amulet",
	"ring", "weapon", "shield", "cloak",
}

// Valid values for GearItem.Rarity, in ascending order of quality. The wiki
// occasionally emits values outside this list (e.g. "story_item"); those are
// kept on the record and tolerated by consumers.
var ValidRarities = []string{"common", "uncommon", "rare", "very_rare", "legendary"}

// Location describes where a gear item is found in the world.
type Location struct {
	Description string `json:"description"`
	Area        string `json:"area"`
	Act         int    `json:"act"` // 1|2|3, or 0 when no area matched
}

// GearItem is a single piece of scraped gear. The JSON field names match the
// data files consumed by the browser UI, so they must not change.
type GearItem struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Slot        string         `json:"slot"`
	Rarity      string         `json:"rarity"`
	ArmourClass *int           `json:"armour_class"`
	Effects     []string       `json:"effects"`
	Stats       map[string]int `json:"stats"`
	Location    Location       `json:"location"`
	BuildTags   []string       `json:"build_tags"`
	WikiURL     string         `json:"wiki_url"`
}

var (
	slugApostrophes = regexp.MustCompile(`['’]`)
	slugSeparators  = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify converts a display name to a kebab-case identifier, e.g.
// "Helmet of Arcane Acuity" -> "helmet-of-arcane-acuity". Apostrophes are
// stripped outright so "Auntie Ethel's Hair" yields "auntie-ethels-hair"
// rather than a double hyphen. The derivation is deterministic; uniqueness
// is not enforced, so two items with the same name collide.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = slugApostrophes.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// PartitionByAct groups gear items by Location.Act. Items whose act could
// not be inferred end up under key 0.
func PartitionByAct(items []GearItem) map[int][]GearItem {
	byAct := map[int][]GearItem{1: {}, 2: {}, 3: {}, 0: {}}
	for _, item := range items {
		act := item.Location.Act
		if _, ok := byAct[act]; !ok {
			act = 0
		}
		byAct[act] = append(byAct[act], item)
	}
	return byAct
}
