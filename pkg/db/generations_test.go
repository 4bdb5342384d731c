package db

import (
	"strings"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Use in-memory database for tests
	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func testGeneration(id string) Generation {
	return Generation{
		GenerationID:    id,
		OutputName:      "ml-basics",
		TemplateType:    "concept-tutorial",
		Model:           "claude-sonnet-4-5-20250929",
		SourceFilename:  "notes.md",
		SourceFormat:    "markdown",
		SourceWordCount: 420,
	}
}

func TestInsertGeneration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.InsertGeneration(testGeneration("gen-1")); err != nil {
		t.Fatalf("InsertGeneration() error = %v", err)
	}

	gen, err := db.GetGeneration("gen-1")
	if err != nil {
		t.Fatalf("GetGeneration() error = %v", err)
	}

	if gen.Status != StatusPrepared {
		t.Errorf("Status = %q, want %q", gen.Status, StatusPrepared)
	}
	if gen.OutputName != "ml-basics" {
		t.Errorf("OutputName = %q, want %q", gen.OutputName, "ml-basics")
	}
	if gen.SourceWordCount != 420 {
		t.Errorf("SourceWordCount = %d, want 420", gen.SourceWordCount)
	}
}

func TestMarkSaved(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.InsertGeneration(testGeneration("gen-1")); err != nil {
		t.Fatal(err)
	}

	if err := db.MarkSaved("gen-1", "ml-basics-beat", "beats/ml-basics-beat"); err != nil {
		t.Fatalf("MarkSaved() error = %v", err)
	}

	gen, err := db.GetGeneration("gen-1")
	if err != nil {
		t.Fatal(err)
	}
	if gen.Status != StatusSaved {
		t.Errorf("Status = %q, want %q", gen.Status, StatusSaved)
	}
	if gen.BeatID != "ml-basics-beat" {
		t.Errorf("BeatID = %q, want %q", gen.BeatID, "ml-basics-beat")
	}
}

func TestMarkFailed(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.InsertGeneration(testGeneration("gen-1")); err != nil {
		t.Fatal(err)
	}

	if err := db.MarkFailed("gen-1", 2, "Missing metadata.id"); err != nil {
		t.Fatalf("MarkFailed() error = %v", err)
	}

	gen, err := db.GetGeneration("gen-1")
	if err != nil {
		t.Fatal(err)
	}
	if gen.Status != StatusFailed {
		t.Errorf("Status = %q, want %q", gen.Status, StatusFailed)
	}
	if gen.ValidationErrs != 2 {
		t.Errorf("ValidationErrs = %d, want 2", gen.ValidationErrs)
	}
	if !strings.Contains(gen.ErrorMessage, "metadata.id") {
		t.Errorf("ErrorMessage = %q, want validation detail", gen.ErrorMessage)
	}
}

func TestMarkSavedUnknownGeneration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := db.MarkSaved("missing", "beat", "beats/beat")
	if err == nil {
		t.Error("MarkSaved() succeeded for unknown generation")
	}
}

func TestListGenerations(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, id := range []string{"gen-1", "gen-2", "gen-3"} {
		if err := db.InsertGeneration(testGeneration(id)); err != nil {
			t.Fatal(err)
		}
	}

	gens, err := db.ListGenerations(0)
	if err != nil {
		t.Fatalf("ListGenerations() error = %v", err)
	}
	if len(gens) != 3 {
		t.Errorf("ListGenerations() returned %d rows, want 3", len(gens))
	}

	limited, err := db.ListGenerations(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("ListGenerations(2) returned %d rows, want 2", len(limited))
	}
}

func TestListGenerationsByBeat(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.InsertGeneration(testGeneration("gen-1")); err != nil {
		t.Fatal(err)
	}
	if err := db.InsertGeneration(testGeneration("gen-2")); err != nil {
		t.Fatal(err)
	}
	if err := db.MarkSaved("gen-1", "ml-basics-beat", "beats/ml-basics-beat"); err != nil {
		t.Fatal(err)
	}

	gens, err := db.ListGenerationsByBeat("ml-basics-beat")
	if err != nil {
		t.Fatalf("ListGenerationsByBeat() error = %v", err)
	}
	if len(gens) != 1 {
		t.Fatalf("ListGenerationsByBeat() returned %d rows, want 1", len(gens))
	}
	if gens[0].GenerationID != "gen-1" {
		t.Errorf("GenerationID = %q, want %q", gens[0].GenerationID, "gen-1")
	}
}
