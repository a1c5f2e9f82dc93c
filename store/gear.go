package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tavscrape"
)

// GearStore reads and writes the per-act gear files inside a directory:
// act1.json, act2.json, act3.json, plus unknown.json for items whose act
// could not be inferred. Every write is a full-file overwrite.
type GearStore struct {
	dir string
}

// NewGearStore creates a gear store rooted at dir, creating the directory if
// needed.
func NewGearStore(dir string) (*GearStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create gear directory: %w", err)
	}
	return &GearStore{dir: dir}, nil
}

func (s *GearStore) actPath(act int) string {
	if act == 0 {
		return filepath.Join(s.dir, "unknown.json")
	}
	return filepath.Join(s.dir, fmt.Sprintf("act%d.json", act))
}

// Flush partitions items by act and rewrites all act files from scratch.
// unknown.json is only written when at least one item has no act, so the
// common all-items-placed case leaves no empty stray file behind.
func (s *GearStore) Flush(items []tavscrape.GearItem) error {
	byAct := tavscrape.PartitionByAct(items)

	for act := 1; act <= 3; act++ {
		if err := writeJSON(s.actPath(act), byAct[act]); err != nil {
			return err
		}
	}
	if len(byAct[0]) > 0 {
		if err := writeJSON(s.actPath(0), byAct[0]); err != nil {
			return err
		}
	}
	return nil
}

// LoadAll reads every persisted gear item across the act files, in act
// order. The three act files are required; unknown.json is optional. A
// missing act file means the gear scrape has not run, which is fatal for
// the phases that need existing gear.
func (s *GearStore) LoadAll() ([]tavscrape.GearItem, error) {
	var all []tavscrape.GearItem

	for act := 1; act <= 3; act++ {
		var items []tavscrape.GearItem
		if err := readJSON(s.actPath(act), &items); err != nil {
			return nil, err
		}
		all = append(all, items...)
	}

	var unknown []tavscrape.GearItem
	if err := readJSON(s.actPath(0), &unknown); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	} else {
		all = append(all, unknown...)
	}

	return all, nil
}
