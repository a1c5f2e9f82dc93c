package tavscrape

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Locations is the hand-maintained area-to-act lookup table, keyed "act1",
// "act2", "act3". It is read by the scraper to assign acts and never written
// by this pipeline.
type Locations map[string][]string

// LoadLocations reads the locations table from a JSON file. The file is a
// required input for scraping, so a missing file is an error.
func LoadLocations(path string) (Locations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locations file: %w", err)
	}

	var locs Locations
	if err := json.Unmarshal(data, &locs); err != nil {
		return nil, fmt.Errorf("failed to parse locations file %s: %w", path, err)
	}

	return locs, nil
}

// InferAct determines which act a location description belongs to by
// case-insensitive substring match against the area names, checking act1
// through act3 in order. The first matching area wins. Returns 0 when no
// area name appears in the text.
func (l Locations) InferAct(locationText string) int {
	text := strings.ToLower(locationText)
	for act := 1; act <= 3; act++ {
		for _, area := range l[fmt.Sprintf("act%d", act)] {
			if strings.Contains(text, strings.ToLower(area)) {
				return act
			}
		}
	}
	return 0
}
