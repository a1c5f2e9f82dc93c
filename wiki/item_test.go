package wiki

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavscrape"
	"tavscrape/fetch"
)

const grymskullPage = `<html><body>
	<h1 class="firstHeading"><span class="mw-page-title-main">Grymskull Helm</span></h1>
	<div class="bg3wiki-property-list"><ul>
		<li>Rarity: <span style="color:#d09c10">Very Rare</span></li>
	</ul></div>
	<h3><span id="Special">Special</span></h3>
	<ul>
		<li>Grants resistance to fire damage</li>
		<li>Immunity to critical hits</li>
	</ul>
	<h2><span id="Where_to_find">Where to find</span></h2>
	<div class="bg3wiki-tooltip-box">
		<ul><li>Forged at the Adamantine Forge in <a href="/wiki/Grymforge">Grymforge</a>.</li></ul>
	</div>
</body></html>`

func itemServer(t *testing.T, page string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
}

// TestScrapeItem_FullPage verifies the assembled record end to end
func TestScrapeItem_FullPage(t *testing.T) {
	srv := itemServer(t, grymskullPage)
	defer srv.Close()
	locs := tavscrape.Locations{"act1": {"Grymforge"}}

	item, err := ScrapeItem(fetch.NewClient(0), srv.URL, "helmet", locs)
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Equal(t, "grymskull-helm", item.ID)
	assert.Equal(t, "Grymskull Helm", item.Name)
	assert.Equal(t, "helmet", item.Slot)
	assert.Equal(t, "very_rare", item.Rarity)
	assert.Nil(t, item.ArmourClass)
	assert.Len(t, item.Effects, 2)
	assert.Equal(t, "Grymforge", item.Location.Area)
	assert.Equal(t, 1, item.Location.Act)
	assert.Equal(t, srv.URL, item.WikiURL)
	assert.NotNil(t, item.BuildTags)
	assert.Empty(t, item.BuildTags)
	assert.NotNil(t, item.Stats)
}

// TestScrapeItem_CommonRarityFiltered verifies common gear is dropped
func TestScrapeItem_CommonRarityFiltered(t *testing.T) {
	srv := itemServer(t, `<html><body>
		<h1 class="firstHeading"><span class="mw-page-title-main">Leather Boots</span></h1>
		<div class="bg3wiki-property-list"><ul>
			<li>Rarity: <span style="color:grey">Common</span></li>
		</ul></div>
		<h3><span id="Special">Special</span></h3>
		<ul><li>Nothing much</li></ul>
	</body></html>`)
	defer srv.Close()

	item, err := ScrapeItem(fetch.NewClient(0), srv.URL, "boots", tavscrape.Locations{})
	require.NoError(t, err)
	assert.Nil(t, item)
}

// TestScrapeItem_NoEffectsFiltered verifies effect-less gear is dropped
func TestScrapeItem_NoEffectsFiltered(t *testing.T) {
	srv := itemServer(t, `<html><body>
		<h1 class="firstHeading"><span class="mw-page-title-main">Plain Circlet</span></h1>
		<div class="bg3wiki-property-list"><ul>
			<li>Rarity: <span style="color:green">Uncommon</span></li>
		</ul></div>
	</body></html>`)
	defer srv.Close()

	item, err := ScrapeItem(fetch.NewClient(0), srv.URL, "helmet", tavscrape.Locations{})
	require.NoError(t, err)
	assert.Nil(t, item)
}

// TestScrapeItem_NoTitleFiltered verifies unrecognisable pages are dropped
func TestScrapeItem_NoTitleFiltered(t *testing.T) {
	srv := itemServer(t, `<html><body><p>redirect stub</p></body></html>`)
	defer srv.Close()

	item, err := ScrapeItem(fetch.NewClient(0), srv.URL, "ring", tavscrape.Locations{})
	require.NoError(t, err)
	assert.Nil(t, item)
}

// TestScrapeItem_FetchFailure verifies transport errors are returned
func TestScrapeItem_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	item, err := ScrapeItem(fetch.NewClient(0), srv.URL, "ring", tavscrape.Locations{})
	assert.Error(t, err)
	assert.Nil(t, item)
}
