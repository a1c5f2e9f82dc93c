package tavscrape

// Valid values for Build.Tier, best first.
var ValidTiers = []string{"S+", "S", "A", "B", "C"}

// The twelve playable classes. Used as a whitelist when reading class names
// out of level-up tables, which also contain feature-choice rows.
var ClassNames = []string{
	"Barbarian", "Bard", "Cleric", "Druid", "Fighter", "Monk",
	"Paladin", "Ranger", "Rogue", "Sorcerer", "Warlock", "Wizard",
}

// The six ability abbreviations, in standard order.
var AbilityNames = []string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}

// All skill names, used to pick skills out of free text.
var SkillNames = []string{
	"Acrobatics", "Animal Handling", "Arcana", "Athletics", "Deception",
	"History", "Insight", "Intimidation", "Investigation", "Medicine",
	"Nature", "Perception", "Performance", "Persuasion", "Religion",
	"Sleight of Hand", "Stealth", "Survival",
}

// ClassLevel is one class in a build's class composition.
type ClassLevel struct {
	Class    string `json:"class"`
	Subclass string `json:"subclass"`
	Levels   int    `json:"levels"`
}

// RaceRec is one recommended race with the guide's reasoning.
type RaceRec struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// CharCreate holds character-creation recommendations scraped from a build
// guide: base ability scores, up to three races, background, and starting
// skill/spell picks.
type CharCreate struct {
	AbilityScores    map[string]int `json:"ability_scores"`
	Races            []RaceRec      `json:"races"`
	Background       string         `json:"background"`
	BackgroundSkills []string       `json:"background_skills"`
	Skills           []string       `json:"skills"`
	Cantrips         []string       `json:"cantrips"`
	Spells           []string       `json:"spells"`
}

// LevelEntry is one character level in a build's level-up plan.
type LevelEntry struct {
	Level   int      `json:"level"`
	Cls     string   `json:"cls"`
	Choices []string `json:"choices"`
}

// GearRecs holds resolved gear recommendation names per act.
type GearRecs struct {
	Act1 []string `json:"act1"`
	Act2 []string `json:"act2"`
	Act3 []string `json:"act3"`
}

// Build is a community character build. CharCreate, LevelPlan, BlurbRaw and
// GearRecs are filled in by separate enrichment passes; each pass writes only
// its own field and never clears data written by another, so builds.json can
// be enriched incrementally and in any order.
type Build struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Tier       string              `json:"tier"`
	SourceURL  string              `json:"source_url"`
	Classes    []ClassLevel        `json:"classes"`
	GearByAct  map[string][]string `json:"gear_by_act"`
	CharCreate *CharCreate         `json:"char_create,omitempty"`
	LevelPlan  []LevelEntry        `json:"level_plan,omitempty"`
	BlurbRaw   string              `json:"blurb_raw,omitempty"`
	GearRecs   *GearRecs           `json:"gear_recs,omitempty"`
}

// IsValidTier reports whether s is one of the recognised build tiers.
func IsValidTier(s string) bool {
	for _, t := range ValidTiers {
		if s == t {
			return true
		}
	}
	return false
}

// IsClassName reports whether s is exactly one of the twelve class names.
func IsClassName(s string) bool {
	for _, c := range ClassNames {
		if s == c {
			return true
		}
	}
	return false
}
