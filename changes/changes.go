// Package changes checks the wiki's recent-changes feed against the fetch
// log, reporting scraped pages that have been edited on the wiki since they
// were last fetched. The report only informs a manual rescrape decision;
// nothing is re-fetched automatically.
package changes

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"tavscrape/store"
)

// RecentChangesFeed is the wiki's Atom feed of page edits.
const RecentChangesFeed = "https://bg3.wiki/w/index.php?title=Special:RecentChanges&feed=atom"

// Update describes one scraped page that is stale: the wiki edited it after
// our last fetch.
type Update struct {
	Title       string
	PageURL     string
	EditedAt    time.Time
	LastFetched time.Time
}

// Check parses the recent-changes feed and returns an Update for every feed
// entry whose page title matches a logged fetch that predates the edit.
// Feed entries without a usable timestamp are ignored.
func Check(feedURL string, fetchLog *store.FetchLog) ([]Update, error) {
	entries, err := fetchLog.Entries()
	if err != nil {
		return nil, err
	}

	// Index logged page URLs by wiki page title, e.g.
	// https://bg3.wiki/wiki/Adamantine_Splint_Armour -> "Adamantine Splint Armour".
	fetchedAt := map[string]store.FetchEntry{}
	for _, e := range entries {
		if title := pageTitle(e.URL); title != "" {
			fetchedAt[title] = e
		}
	}

	feed, err := gofeed.NewParser().ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recent-changes feed: %w", err)
	}

	var updates []Update
	seen := map[string]bool{}
	for _, item := range feed.Items {
		edited := item.UpdatedParsed
		if edited == nil {
			edited = item.PublishedParsed
		}
		if edited == nil {
			continue
		}

		entry, ok := fetchedAt[strings.TrimSpace(item.Title)]
		if !ok || seen[entry.URL] {
			continue
		}
		if !edited.After(entry.LastFetchedAt) {
			continue
		}

		seen[entry.URL] = true
		updates = append(updates, Update{
			Title:       strings.TrimSpace(item.Title),
			PageURL:     entry.URL,
			EditedAt:    *edited,
			LastFetched: entry.LastFetchedAt,
		})
	}

	return updates, nil
}

// pageTitle derives the human page title from a /wiki/ URL, or "" for URLs
// that are not article pages (category listings, guide sites).
func pageTitle(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	path, ok := strings.CutPrefix(u.Path, "/wiki/")
	if !ok || strings.Contains(path, ":") {
		return ""
	}
	unescaped, err := url.PathUnescape(path)
	if err != nil {
		unescaped = path
	}
	return strings.ReplaceAll(unescaped, "_", " ")
}
