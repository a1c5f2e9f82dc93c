package wiki

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavscrape/fetch"
)

func categoryPage(items []string, nextPath string) string {
	page := `<div class="mw-category-columns"><div class="mw-category-group"><ul>`
	for _, item := range items {
		page += fmt.Sprintf(`<li><a href="/wiki/%s">%s</a></li>`, item, item)
	}
	page += `</ul></div></div><div id="mw-pages">`
	if nextPath != "" {
		page += fmt.Sprintf(`<a href="%s">next page</a>`, nextPath)
	}
	page += `<a href="/irrelevant">previous page</a></div>`
	return page
}

// TestScrapeCategory_SinglePage verifies item URL collection
func TestScrapeCategory_SinglePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, categoryPage([]string{"Circlet_of_Blasting", "Grymskull_Helm"}, ""))
	}))
	defer srv.Close()

	urls, err := ScrapeCategory(fetch.NewClient(0), srv.URL+"/wiki/Category:Helmets")
	require.NoError(t, err)
	assert.Equal(t, []string{
		srv.URL + "/wiki/Circlet_of_Blasting",
		srv.URL + "/wiki/Grymskull_Helm",
	}, urls)
}

// TestScrapeCategory_FollowsPagination verifies multi-page listings keep page order
func TestScrapeCategory_FollowsPagination(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/page1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, categoryPage([]string{"Item_A", "Item_B"}, "/page2"))
	})
	mux.HandleFunc("/page2", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, categoryPage([]string{"Item_C"}, "/page3"))
	})
	mux.HandleFunc("/page3", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, categoryPage([]string{"Item_D"}, ""))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	urls, err := ScrapeCategory(fetch.NewClient(0), srv.URL+"/page1")
	require.NoError(t, err)
	assert.Equal(t, []string{
		srv.URL + "/wiki/Item_A",
		srv.URL + "/wiki/Item_B",
		srv.URL + "/wiki/Item_C",
		srv.URL + "/wiki/Item_D",
	}, urls)
}

// TestScrapeCategory_FetchFailure verifies errors propagate
func TestScrapeCategory_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := ScrapeCategory(fetch.NewClient(0), srv.URL)
	assert.Error(t, err)
}
