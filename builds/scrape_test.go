package builds

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavscrape"
	"tavscrape/fetch"
	"tavscrape/store"
)

// TestParseBuildPage_BadgeOverridesCatalogTier verifies the on-page tier wins
func TestParseBuildPage_BadgeOverridesCatalogTier(t *testing.T) {
	doc := parse(t, `<body>
		<span class="post-tags__build-tier">S+ Tier</span>
		<article><table><tbody><tr><td>Sorcerer</td><td>spells</td></tr></tbody></table></article>
	</body>`)
	ref := BuildRef{Tier: "A", Name: "Draconic Fire Sorcerer", URL: "https://example.com/build"}

	build := ParseBuildPage(doc, ref)
	assert.Equal(t, "draconic-fire-sorcerer", build.ID)
	assert.Equal(t, "S+", build.Tier)
	assert.Equal(t, "https://example.com/build", build.SourceURL)
	require.Len(t, build.Classes, 1)
	assert.Equal(t, "Sorcerer", build.Classes[0].Class)
}

// TestParseBuildPage_UnrecognisedBadgeKeepsCatalogTier verifies the fallback
func TestParseBuildPage_UnrecognisedBadgeKeepsCatalogTier(t *testing.T) {
	doc := parse(t, `<body>
		<span class="post-tags__build-tier">Legendary Tier</span>
		<article></article>
	</body>`)

	build := ParseBuildPage(doc, BuildRef{Tier: "B", Name: "Mystery"})
	assert.Equal(t, "B", build.Tier)
}

// TestParseBuildPage_NoBadge verifies the catalog tier is used untouched
func TestParseBuildPage_NoBadge(t *testing.T) {
	build := ParseBuildPage(parse(t, `<article></article>`), BuildRef{Tier: "A", Name: "Plain"})
	assert.Equal(t, "A", build.Tier)
}

// TestCatalogURL_KnownAndUnknown verifies the slug lookup
func TestCatalogURL_KnownAndUnknown(t *testing.T) {
	assert.NotEmpty(t, catalogURL("draconic-fire-sorcerer"))
	assert.Empty(t, catalogURL("hand-merged-community-build"))
}

// TestCatalog_WellFormed verifies every entry has a tier, name, and URL
func TestCatalog_WellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, ref := range Catalog {
		assert.True(t, tavscrape.IsValidTier(ref.Tier), "tier %q on %s", ref.Tier, ref.Name)
		assert.NotEmpty(t, ref.Name)
		assert.Contains(t, ref.URL, "https://")

		id := slugOf(ref.Name)
		assert.False(t, seen[id], "duplicate catalog slug %s", id)
		seen[id] = true
	}
}

// TestEnrichLevelPlans_PreservesOtherFields verifies passes are additive
func TestEnrichLevelPlans_PreservesOtherFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div id="post-body-text">
			<h2>Leveling Overview</h2>
			<table><tr><td>1</td><td>Monk</td><td>Tavern Brawler</td></tr></table>
		</div>`)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "builds.json")
	buildStore := store.NewBuildStore(path)
	require.NoError(t, buildStore.Save([]tavscrape.Build{{
		ID:         "test-build",
		Name:       "Test Build",
		Tier:       "S",
		SourceURL:  srv.URL,
		CharCreate: &tavscrape.CharCreate{Background: "Soldier"},
		BlurbRaw:   "an existing blurb",
	}}))

	require.NoError(t, EnrichLevelPlans(fetch.NewClient(0), buildStore))

	builds, err := buildStore.Load()
	require.NoError(t, err)
	require.Len(t, builds, 1)

	require.Len(t, builds[0].LevelPlan, 1)
	assert.Equal(t, "Monk", builds[0].LevelPlan[0].Cls)
	require.NotNil(t, builds[0].CharCreate, "earlier enrichment data must survive")
	assert.Equal(t, "Soldier", builds[0].CharCreate.Background)
	assert.Equal(t, "an existing blurb", builds[0].BlurbRaw)
}

// TestEnrichBlurbs_KeepsOldValueWhenPageHasNone verifies no empty overwrite
func TestEnrichBlurbs_KeepsOldValueWhenPageHasNone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div id="post-body-text"><h2>Intro</h2></div>`)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "builds.json")
	buildStore := store.NewBuildStore(path)
	require.NoError(t, buildStore.Save([]tavscrape.Build{{
		ID:        "test-build",
		SourceURL: srv.URL,
		BlurbRaw:  "previously scraped blurb",
	}}))

	require.NoError(t, EnrichBlurbs(fetch.NewClient(0), buildStore))

	builds, err := buildStore.Load()
	require.NoError(t, err)
	assert.Equal(t, "previously scraped blurb", builds[0].BlurbRaw)
}
