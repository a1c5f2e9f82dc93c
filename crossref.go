package tavscrape

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

var candidatePattern = regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,4}`)

// CrossReference tags every gear item with the IDs of the builds whose raw
// gear text mentions the item's name. Matching is a case-insensitive
// substring test of the full item name; names of 3 characters or fewer are
// skipped as too ambiguous. Tags behave as a set: re-running the pass over
// already-tagged gear appends nothing. Items are mutated in place and the
// same slice is returned.
//
// As a side effect, capitalised multi-word phrases in the build text that
// match no known item are logged as candidates for gear the scrape may have
// missed. The candidate list is diagnostic output only and is expected to
// contain false positives.
func CrossReference(gear []GearItem, builds []Build) []GearItem {
	unmatched := map[string]bool{}
	var unmatchedOrder []string

	for _, build := range builds {
		for act := 1; act <= 3; act++ {
			for _, textBlock := range build.GearByAct[strconv.Itoa(act)] {
				lower := strings.ToLower(textBlock)

				for i := range gear {
					item := &gear[i]
					if len(item.Name) <= 3 {
						continue
					}
					if !strings.Contains(lower, strings.ToLower(item.Name)) {
						continue
					}
					if !containsString(item.BuildTags, build.ID) {
						item.BuildTags = append(item.BuildTags, build.ID)
					}
				}

				for _, candidate := range candidatePattern.FindAllString(textBlock, -1) {
					if len(candidate) <= 6 || unmatched[candidate] {
						continue
					}
					if knownGearName(gear, candidate) {
						continue
					}
					unmatched[candidate] = true
					unmatchedOrder = append(unmatchedOrder, candidate)
				}
			}
		}
	}

	tagged := 0
	for i := range gear {
		if len(gear[i].BuildTags) > 0 {
			tagged++
		}
	}
	log.Printf("INFO: cross-referenced %d builds against %d gear items, %d items tagged", len(builds), len(gear), tagged)

	logUnmatched(gear, unmatchedOrder)

	return gear
}

func knownGearName(gear []GearItem, candidate string) bool {
	for i := range gear {
		if strings.EqualFold(gear[i].Name, candidate) {
			return true
		}
	}
	return false
}

// logUnmatched prints up to 20 unmatched candidates. Candidates within a
// small edit distance of a known item name get a "did you mean" hint, which
// catches truncated or slightly reworded mentions.
func logUnmatched(gear []GearItem, candidates []string) {
	if len(candidates) == 0 {
		return
	}

	log.Printf("INFO: %d potential unmatched items (includes false positives):", len(candidates))
	sample := candidates
	if len(sample) > 20 {
		sample = sample[:20]
	}
	for _, name := range sample {
		if near, ok := NearestGearName(gear, name); ok {
			log.Printf("INFO:   - %s (closest known item: %s)", name, near)
		} else {
			log.Printf("INFO:   - %s", name)
		}
	}
	if len(candidates) > 20 {
		log.Printf("INFO:   ... and %d more", len(candidates)-20)
	}
}

// NearestGearName returns the known item name with the smallest edit
// distance to the candidate, if that distance is within a limit scaled to
// the candidate's length. Longer phrases tolerate more edits.
func NearestGearName(gear []GearItem, candidate string) (string, bool) {
	lower := strings.ToLower(candidate)
	best := -1
	bestName := ""
	for i := range gear {
		dist := levenshtein.ComputeDistance(lower, strings.ToLower(gear[i].Name))
		if best == -1 || dist < best {
			best = dist
			bestName = gear[i].Name
		}
	}
	if best < 0 || best > editLimit(len(candidate)) {
		return "", false
	}
	return bestName, true
}

func editLimit(length int) int {
	switch {
	case length <= 8:
		return 1
	case length <= 16:
		return 2
	default:
		return 3
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
