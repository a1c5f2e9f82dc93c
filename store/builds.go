package store

import (
	"errors"
	"os"

	"tavscrape"
)

// BuildStore reads and writes the builds collection as a single JSON array.
// Builds are few and fixed, so there is no incremental checkpointing; each
// Save rewrites the whole file.
type BuildStore struct {
	path string
}

// NewBuildStore creates a build store backed by the given file path.
func NewBuildStore(path string) *BuildStore {
	return &BuildStore{path: path}
}

// Load reads all builds. A missing file is an error: the enrichment and
// cross-reference phases require an existing base scrape.
func (s *BuildStore) Load() ([]tavscrape.Build, error) {
	var builds []tavscrape.Build
	if err := readJSON(s.path, &builds); err != nil {
		return nil, err
	}
	return builds, nil
}

// LoadOptional reads all builds, treating a missing file as an empty
// collection. Used for the hand-maintained community builds file, which may
// legitimately not exist.
func (s *BuildStore) LoadOptional() ([]tavscrape.Build, error) {
	builds, err := s.Load()
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return builds, err
}

// Save overwrites the builds file with the given collection.
func (s *BuildStore) Save(builds []tavscrape.Build) error {
	return writeJSON(s.path, builds)
}
