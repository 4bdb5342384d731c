package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/businessdatasolutions/beat-generator/models"
	"github.com/businessdatasolutions/beat-generator/pkg/storage"
)

func testMeta(id, title string) models.BeatMetadata {
	return models.BeatMetadata{
		ID:           id,
		Title:        title,
		TemplateType: models.TemplateConceptTutorial,
	}
}

func TestLoadMissingCatalog(t *testing.T) {
	s := &storage.Storage{}
	c := Load(s, filepath.Join(t.TempDir(), "absent.json"), "https://beats.example.com")

	if c.BaseURL != "https://beats.example.com" {
		t.Errorf("BaseURL = %q", c.BaseURL)
	}
	if len(c.Beats) != 0 {
		t.Errorf("len(Beats) = %d, want 0", len(c.Beats))
	}
	if c.LastUpdated == "" {
		t.Error("LastUpdated is empty")
	}
}

func TestLoadCorruptCatalog(t *testing.T) {
	s := &storage.Storage{}
	path := filepath.Join(t.TempDir(), "beats.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := Load(s, path, "https://beats.example.com")
	if len(c.Beats) != 0 {
		t.Errorf("corrupt catalog yielded %d entries, want fresh empty one", len(c.Beats))
	}
}

func TestUpsertReplacesByID(t *testing.T) {
	c := New("https://beats.example.com")

	c.Upsert(testMeta("eerste-beat", "Eerste"))
	c.Upsert(testMeta("tweede-beat", "Tweede"))
	c.Upsert(testMeta("eerste-beat", "Eerste v2"))

	if len(c.Beats) != 2 {
		t.Fatalf("len(Beats) = %d, want 2", len(c.Beats))
	}
	// Re-upserted entry moves to the end
	last := c.Beats[1]
	if last.ID != "eerste-beat" || last.Title != "Eerste v2" {
		t.Errorf("last entry = %+v, want updated eerste-beat", last)
	}
	if last.Path != "/eerste-beat/" {
		t.Errorf("Path = %q, want %q", last.Path, "/eerste-beat/")
	}
	if !last.Published {
		t.Error("Published = false, want true")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := &storage.Storage{}
	dir := t.TempDir()
	path := PathFor(dir)

	c := New("https://beats.example.com")
	c.Upsert(testMeta("mijn-beat", "Mijn Beat"))

	if err := Save(s, path, c); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded := Load(s, path, "ignored")
	if loaded.BaseURL != "https://beats.example.com" {
		t.Errorf("BaseURL = %q", loaded.BaseURL)
	}
	if len(loaded.Beats) != 1 || loaded.Beats[0].ID != "mijn-beat" {
		t.Errorf("Beats = %+v", loaded.Beats)
	}
}

func TestUpdate(t *testing.T) {
	s := &storage.Storage{}
	dir := t.TempDir()
	path := PathFor(dir)

	if err := Update(s, path, "https://beats.example.com", testMeta("a-beat", "A")); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if err := Update(s, path, "https://beats.example.com", testMeta("b-beat", "B")); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatal(err)
	}
	if len(c.Beats) != 2 {
		t.Errorf("len(Beats) = %d, want 2", len(c.Beats))
	}
}

func TestPathFor(t *testing.T) {
	got := PathFor("/beats")
	want := filepath.Join("/beats", DirName, FileName)
	if got != want {
		t.Errorf("PathFor() = %q, want %q", got, want)
	}
}
