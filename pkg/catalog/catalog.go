// Package catalog maintains the JSON index of all published Beats: the
// single source of truth for the catalog UI and static site.
package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/businessdatasolutions/beat-generator/models"
	"github.com/businessdatasolutions/beat-generator/pkg/storage"
)

// DirName is the catalog directory under the Beats output dir.
const DirName = "_catalog"

// FileName is the catalog index file.
const FileName = "beats.json"

// Entry is one published Beat in the catalog.
type Entry struct {
	models.BeatMetadata
	// URL path of the Beat, relative to the catalog base URL
	Path string `json:"path"`
	// Whether the Beat is live
	Published bool `json:"published"`
}

// Catalog is the persisted index structure.
type Catalog struct {
	// Date (yyyy-mm-dd) of the last mutation
	LastUpdated string `json:"lastUpdated"`
	// Base URL the entry paths resolve against
	BaseURL string `json:"baseUrl"`
	// All published Beats
	Beats []Entry `json:"beats"`
}

// PathFor returns the catalog file location for a Beats output directory.
func PathFor(outputDir string) string {
	return filepath.Join(outputDir, DirName, FileName)
}

// Load reads the catalog file. A missing or unreadable catalog yields a
// fresh empty one with the given base URL.
func Load(s *storage.Storage, path, baseURL string) *Catalog {
	data, err := s.ReadFile(path)
	if err != nil {
		return New(baseURL)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return New(baseURL)
	}
	return &c
}

// New creates an empty catalog for the given base URL.
func New(baseURL string) *Catalog {
	return &Catalog{
		LastUpdated: today(),
		BaseURL:     baseURL,
		Beats:       []Entry{},
	}
}

// Upsert replaces any entry with the same id (last write wins) and bumps
// the catalog timestamp.
func (c *Catalog) Upsert(meta models.BeatMetadata) {
	kept := c.Beats[:0]
	for _, e := range c.Beats {
		if e.ID != meta.ID {
			kept = append(kept, e)
		}
	}
	c.Beats = append(kept, Entry{
		BeatMetadata: meta,
		Path:         "/" + meta.ID + "/",
		Published:    true,
	})
	c.LastUpdated = today()
}

// Save persists the catalog with an atomic replace, so a crashed write
// cannot corrupt the shared index.
func Save(s *storage.Storage, path string, c *Catalog) error {
	if err := s.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling catalog: %w", err)
	}

	if err := s.SaveFileAtomic(path, data); err != nil {
		return fmt.Errorf("error saving catalog: %w", err)
	}
	return nil
}

// Update is the read-modify-write used at finalize time: load, upsert one
// Beat, save. Concurrent updates are last-writer-wins; single-operator
// usage is assumed.
func Update(s *storage.Storage, path, baseURL string, meta models.BeatMetadata) error {
	c := Load(s, path, baseURL)
	c.Upsert(meta)
	return Save(s, path, c)
}

func today() string {
	return time.Now().Format("2006-01-02")
}
