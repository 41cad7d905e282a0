// Package catalog loads the ingredient database into memory and answers
// lookup, search and category queries for the browsing commands.
//
// The dataset is small and read fresh on every invocation - there is no
// cache to invalidate and no index to rebuild. Files that fail to parse
// are skipped with a note rather than aborting the load; "sid validate"
// is the tool for diagnosing those.
package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Catalog is an in-memory view of the ingredient database.
type Catalog struct {
	byID    map[string]*Ingredient
	ordered []*Ingredient // sorted by data file path
}

// Load reads every *.json file under dataDir. Malformed or duplicate-id
// files are skipped; one note per skipped file is returned for the caller
// to surface on stderr.
func Load(dataDir string) (*Catalog, []string, error) {
	info, err := os.Stat(dataDir)
	if err != nil || !info.IsDir() {
		return nil, nil, fmt.Errorf("data directory not found: %s", dataDir)
	}

	base := filepath.Dir(filepath.Clean(dataDir))
	c := &Catalog{byID: make(map[string]*Ingredient)}
	var notes []string

	err = filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		rel, relErr := filepath.Rel(base, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		raw, err := os.ReadFile(path)
		if err != nil {
			notes = append(notes, fmt.Sprintf("skipping %s: %v", rel, err))
			return nil
		}

		var ing Ingredient
		if err := json.Unmarshal(raw, &ing); err != nil {
			notes = append(notes, fmt.Sprintf("skipping %s: invalid JSON", rel))
			return nil
		}
		if ing.ID == "" {
			notes = append(notes, fmt.Sprintf("skipping %s: no id", rel))
			return nil
		}
		if _, dup := c.byID[ing.ID]; dup {
			notes = append(notes, fmt.Sprintf("skipping %s: duplicate id %q", rel, ing.ID))
			return nil
		}

		ing.Path = rel
		c.byID[ing.ID] = &ing
		c.ordered = append(c.ordered, &ing)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking %s: %w", dataDir, err)
	}

	sort.Slice(c.ordered, func(i, j int) bool { return c.ordered[i].Path < c.ordered[j].Path })
	return c, notes, nil
}

// Get looks up an ingredient by id.
func (c *Catalog) Get(id string) (*Ingredient, bool) {
	ing, ok := c.byID[id]
	return ing, ok
}

// Search returns ingredients whose English name contains the query
// (case-insensitive) or whose id contains it.
func (c *Catalog) Search(query string) []*Ingredient {
	q := strings.ToLower(query)
	var matches []*Ingredient
	for _, ing := range c.ordered {
		if strings.Contains(strings.ToLower(ing.Name.En), q) || strings.Contains(ing.ID, q) {
			matches = append(matches, ing)
		}
	}
	return matches
}

// ByCategory returns all ingredients in the given category.
func (c *Catalog) ByCategory(category string) []*Ingredient {
	var matches []*Ingredient
	for _, ing := range c.ordered {
		if ing.Category == category {
			matches = append(matches, ing)
		}
	}
	return matches
}

// All returns every ingredient in data file path order.
func (c *Catalog) All() []*Ingredient {
	return c.ordered
}

// Count returns the number of loaded ingredients.
func (c *Catalog) Count() int {
	return len(c.ordered)
}

// Stats summarises the loaded dataset.
type Stats struct {
	Total      int            `json:"total"`
	Categories map[string]int `json:"categories"`
	Sourced    int            `json:"sourced"`
}

// Stats computes dataset totals, the per-category breakdown and how many
// entries cite at least one source.
func (c *Catalog) Stats() Stats {
	s := Stats{Total: len(c.ordered), Categories: make(map[string]int)}
	for _, ing := range c.ordered {
		if ing.Category != "" {
			s.Categories[ing.Category]++
		}
		if len(ing.Sources) > 0 {
			s.Sourced++
		}
	}
	return s
}
