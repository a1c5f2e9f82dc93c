package store

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// FetchLog records the outcome of every page fetch in SQLite, keyed by URL.
// The recent-changes check reads it to work out which scraped pages have
// since been updated on the wiki.
type FetchLog struct {
	db *sql.DB
}

// FetchEntry is one row of the fetch log.
type FetchEntry struct {
	URL           string
	LastFetchedAt time.Time
	Status        int
	LastError     string
	FetchCount    int
}

// NewFetchLog opens (or creates) the fetch log database at dbPath.
func NewFetchLog(dbPath string) (*FetchLog, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open fetch log database: %w", err)
	}

	l := &FetchLog{db: db}
	if err := l.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize fetch log schema: %w", err)
	}
	return l, nil
}

func (l *FetchLog) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS fetches (
		url TEXT PRIMARY KEY,
		last_fetched_at TIMESTAMP NOT NULL,
		status INTEGER NOT NULL,
		last_error TEXT NOT NULL DEFAULT '',
		fetch_count INTEGER NOT NULL DEFAULT 0
	);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (l *FetchLog) Close() error {
	return l.db.Close()
}

// Record stores the outcome of a fetch attempt. It satisfies the fetch
// client's Recorder interface. Recording failures are logged rather than
// propagated; a broken log must never fail a scrape.
func (l *FetchLog) Record(url string, status int, fetchErr error) {
	errMsg := ""
	if fetchErr != nil {
		errMsg = fetchErr.Error()
	}

	query := `
	INSERT INTO fetches (url, last_fetched_at, status, last_error, fetch_count)
	VALUES (?, ?, ?, ?, 1)
	ON CONFLICT(url) DO UPDATE SET
		last_fetched_at = excluded.last_fetched_at,
		status = excluded.status,
		last_error = excluded.last_error,
		fetch_count = fetch_count + 1
	`
	if _, err := l.db.Exec(query, url, time.Now().UTC(), status, errMsg); err != nil {
		log.Printf("WARN: failed to record fetch of %s: %v", url, err)
	}
}

// LastFetched returns when a URL was last fetched, or nil if it never was.
func (l *FetchLog) LastFetched(url string) (*time.Time, error) {
	var t time.Time
	err := l.db.QueryRow("SELECT last_fetched_at FROM fetches WHERE url = ?", url).Scan(&t)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query fetch log: %w", err)
	}
	return &t, nil
}

// Entries returns all fetch log rows, most recently fetched first.
func (l *FetchLog) Entries() ([]FetchEntry, error) {
	rows, err := l.db.Query(`
		SELECT url, last_fetched_at, status, last_error, fetch_count
		FROM fetches ORDER BY last_fetched_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query fetch log: %w", err)
	}
	defer rows.Close()

	var entries []FetchEntry
	for rows.Next() {
		var e FetchEntry
		if err := rows.Scan(&e.URL, &e.LastFetchedAt, &e.Status, &e.LastError, &e.FetchCount); err != nil {
			return nil, fmt.Errorf("failed to scan fetch log row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
