// Package builds scrapes community build guides. A base pass assembles a
// Build record per catalog entry; separate enrichment passes re-fetch the
// guide pages and each add one field group (character creation, intro
// blurbs, level plans, gear recommendations) without touching the rest of
// the record.
package builds

// BuildRef is one entry of the hand-maintained build catalog. The catalog is
// the authoritative list: there is no discovery mechanism for builds, unlike
// gear categories. Tier here is a fallback; the tier badge on the page takes
// precedence when it parses to a recognised value.
type BuildRef struct {
	Tier string
	Name string
	URL  string
}

// Catalog lists every build to scrape, organised by tier.
var Catalog = []BuildRef{
	// S+ tier
	{Tier: "S+", Name: "Draconic Fire Sorcerer", URL: "https://gamestegy.com/post/bg3/883/draconic-fire-sorcerer-build"},
	{Tier: "S+", Name: "Gloomstalker Assassin", URL: "https://gamestegy.com/post/bg3/864/assassin-rogue-build-stalker"},
	{Tier: "S+", Name: "Abjuration Arcane Defender", URL: "https://gamestegy.com/post/bg3/995/abjuration-wizard-build"},
	{Tier: "S+", Name: "Swords Bard Archer", URL: "https://gamestegy.com/post/bg3/1543/swords-bard-build"},
	{Tier: "S+", Name: "Eldritch Hexknight", URL: "https://gamestegy.com/post/bg3/1604/eldritch-hexknight-build"},
	{Tier: "S+", Name: "Lockadin", URL: "https://gamestegy.com/post/bg3/874/lockadin-paladin-warlock-build"},
	{Tier: "S+", Name: "Storm Sorcerer", URL: "https://gamestegy.com/post/bg3/882/best-storm-sorcerer-build"},
	// S tier
	{Tier: "S", Name: "Way of Open Hand Monk", URL: "https://gamestegy.com/post/bg3/981/open-hand-monk-build"},
	{Tier: "S", Name: "Berserker Thrower", URL: "https://gamestegy.com/post/bg3/976/barbarian-berserker-thrower-build"},
	{Tier: "S", Name: "Bardadin", URL: "https://gamestegy.com/post/bg3/886/bardadin-bard-paladin-build"},
	{Tier: "S", Name: "Sorcadin", URL: "https://gamestegy.com/post/bg3/881/sorcadin-sorcerer-paladin-build"},
	{Tier: "S", Name: "Eldritch Knight Thrower", URL: "https://gamestegy.com/post/bg3/975/eldritch-knight-build-thrower"},
	{Tier: "S", Name: "The Talos Dragonling", URL: "https://gamestegy.com/post/bg3/1559/the-talos-dragonling-build"},
	{Tier: "S", Name: "Stormfrost Sage", URL: "https://gamestegy.com/post/bg3/1561/draconic-bloodline-sorcerer-build"},
	{Tier: "S", Name: "Shadow Blade Bardadin", URL: "https://gamestegy.com/post/bg3/1601/shadow-blade-bardadin-build"},
	{Tier: "S", Name: "Two Hander Eldritch Knight", URL: "https://gamestegy.com/post/bg3/1605/two-handed-eldritch-knight-build"},
	{Tier: "S", Name: "Hunter Ranger Archer", URL: "https://gamestegy.com/post/bg3/1607/hunter-ranger-archer-build"},
	{Tier: "S", Name: "Stars Cleric", URL: "https://gamestegy.com/post/bg3/1616/stars-cleric-build"},
	{Tier: "S", Name: "Lorecerer", URL: "https://gamestegy.com/post/bg3/984/sorcerer-bard-multiclass-build-lorecerer"},
	// A tier
	{Tier: "A", Name: "Shadow Monk", URL: "https://gamestegy.com/post/bg3/983/way-of-shadow-monk-build"},
	{Tier: "A", Name: "Battle Master Fighter", URL: "https://gamestegy.com/post/bg3/971/battle-master-build-tactical-fighter"},
	{Tier: "A", Name: "Lore Bard", URL: "https://gamestegy.com/post/bg3/986/lore-bard-build"},
	{Tier: "A", Name: "Sorlock", URL: "https://gamestegy.com/post/bg3/885/sorlock-sorcerer-warlock-build"},
	{Tier: "A", Name: "Oathbreaker Paladin", URL: "https://gamestegy.com/post/bg3/879/oathbreaker-paladin-build"},
	{Tier: "A", Name: "Oath of Devotion Paladin", URL: "https://gamestegy.com/post/bg3/878/oath-of-devotion-paladin-build"},
	{Tier: "A", Name: "Oath of Ancients Paladin", URL: "https://gamestegy.com/post/bg3/876/paladin-oath-of-ancients-build"},
	{Tier: "A", Name: "Cold Sorcerer", URL: "https://gamestegy.com/post/bg3/998/cold-sorcerer-build"},
	{Tier: "A", Name: "Bladelock", URL: "https://gamestegy.com/post/bg3/870/melee-warlock-build-bladelock"},
	{Tier: "A", Name: "Light Domain Cleric", URL: "https://gamestegy.com/post/bg3/872/light-domain-cleric-build"},
	{Tier: "A", Name: "Tempest Domain Cleric", URL: "https://gamestegy.com/post/bg3/871/tempest-domain-cleric-build"},
	{Tier: "A", Name: "Blaster Cleric", URL: "https://gamestegy.com/post/bg3/1100/blaster-tempest-cleric-build"},
	{Tier: "A", Name: "Bardlock", URL: "https://gamestegy.com/post/bg3/1003/bardlock-build"},
	{Tier: "A", Name: "Loredin", URL: "https://gamestegy.com/post/bg3/1107/loredin-build"},
	{Tier: "A", Name: "Nature Cleric", URL: "https://gamestegy.com/post/bg3/1544/nature-cleric-build"},
	{Tier: "A", Name: "Arcane Archer", URL: "https://gamestegy.com/post/bg3/1587/arcane-archer-build"},
	{Tier: "A", Name: "Hexblade", URL: "https://gamestegy.com/post/bg3/1586/hexblade-warlock-build"},
	{Tier: "A", Name: "Bladesinger", URL: "https://gamestegy.com/post/bg3/1589/bladesinging-build"},
	{Tier: "A", Name: "Oath of the Crown Paladin", URL: "https://gamestegy.com/post/bg3/1600/oath-of-crown-paladin-build"},
	{Tier: "A", Name: "Death Cleric", URL: "https://gamestegy.com/post/bg3/1613/death-cleric-build"},
	{Tier: "A", Name: "Reverob Blender", URL: "https://gamestegy.com/post/bg3/1617/stars-lore-bard-build"},
	{Tier: "A", Name: "2HCB Gloom Thief", URL: "https://gamestegy.com/post/bg3/863/thief-sharpshooter-rogue-build"},
	{Tier: "A", Name: "Giant Barbarian", URL: "https://gamestegy.com/post/bg3/1618/giant-barbarian-build"},
	{Tier: "A", Name: "Wildheart Tiger Barbarian", URL: "https://gamestegy.com/post/bg3/1629/wildheart-tiger-barbarian"},
	{Tier: "A", Name: "Moon Druid", URL: "https://gamestegy.com/post/bg3/1091/moon-druid-build"},
	// B tier
	{Tier: "B", Name: "Champion Fighter", URL: "https://gamestegy.com/post/bg3/973/champion-build"},
	{Tier: "B", Name: "Eldritch Blast Build", URL: "https://gamestegy.com/post/bg3/967/eldritch-blast-build"},
	{Tier: "B", Name: "Oath of Vengeance Paladin", URL: "https://gamestegy.com/post/bg3/877/oath-of-vengeance-paladin-build"},
	{Tier: "B", Name: "Magic Missile Build", URL: "https://gamestegy.com/post/bg3/991/magic-missile-build"},
	{Tier: "B", Name: "Life Domain Cleric", URL: "https://gamestegy.com/post/bg3/873/life-domain-cleric-build"},
	{Tier: "B", Name: "Beast Master", URL: "https://gamestegy.com/post/bg3/1008/ranger-beast-master-build"},
	{Tier: "B", Name: "Land Druid", URL: "https://gamestegy.com/post/bg3/1085/land-druid-build"},
	{Tier: "B", Name: "Ninja", URL: "https://gamestegy.com/post/bg3/1599/ninja-build"},
	{Tier: "B", Name: "Knowledge Cleric", URL: "https://gamestegy.com/post/bg3/1547/knowledge-cleric-build"},
	{Tier: "B", Name: "Thundersnow Herald", URL: "https://gamestegy.com/post/bg3/1095/thundersnow-druid-build"},
	{Tier: "B", Name: "War Domain Cleric", URL: "https://gamestegy.com/post/bg3/1563/war-domain-cleric-build"},
	{Tier: "B", Name: "Radiating Armored Monk", URL: "https://gamestegy.com/post/bg3/1564/radiating-armored-monk"},
	{Tier: "B", Name: "Selune's Holy Archer", URL: "https://gamestegy.com/post/bg3/1588/selunes-holy-archer"},
	{Tier: "B", Name: "Jack Sparrow", URL: "https://gamestegy.com/post/bg3/1594/jack-sparrow-build"},
	{Tier: "B", Name: "Arcane Trickster", URL: "https://gamestegy.com/post/bg3/860/arcane-trickster-build"},
	{Tier: "B", Name: "Stars Druid", URL: "https://gamestegy.com/post/bg3/1630/stars-druid-build"},
	{Tier: "B", Name: "Swarmkeeper Melee", URL: "https://gamestegy.com/post/bg3/1638/swarmkeeper-sanctified-build"},
	{Tier: "B", Name: "Wild Magic Sorcerer", URL: "https://gamestegy.com/post/bg3/884/wild-magic-sorcerer-build"},
	{Tier: "B", Name: "Necromancer", URL: "https://gamestegy.com/post/bg3/1645/necromancer-build"},
	// C tier
	{Tier: "C", Name: "Way of the Four Elements Monk", URL: "https://gamestegy.com/post/bg3/982/four-elements-monk-build"},
	{Tier: "C", Name: "Spore Druid", URL: "https://gamestegy.com/post/bg3/1093/spore-druid-build"},
	{Tier: "C", Name: "Valour Bard", URL: "https://gamestegy.com/post/bg3/1566/valour-bard-build"},
	{Tier: "C", Name: "Thief", URL: "https://gamestegy.com/post/bg3/1591/thief-build"},
	{Tier: "C", Name: "Swashbuckler", URL: "https://gamestegy.com/post/bg3/1593/swashbuckler-build"},
}

// catalogURL returns the catalog URL for a build id, or "" when the build is
// not in the catalog (e.g. community builds merged in by hand).
func catalogURL(id string) string {
	for _, ref := range Catalog {
		if slugOf(ref.Name) == id {
			return ref.URL
		}
	}
	return ""
}
