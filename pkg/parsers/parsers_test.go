package parsers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/businessdatasolutions/beat-generator/pkg/detector"
)

func TestParseContentDispatch(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		filename string
		format   detector.Format
	}{
		{"markdown by extension", "plain words", "notes.md", detector.FormatMarkdown},
		{"transcript by speakers", "Alice: hello\nBob: hi\nAlice: bye\nBob: later", "chat.txt", detector.FormatTranscript},
		{"plain text fallback", "just some prose without structure.", "doc.txt", detector.FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseContent(tt.content, tt.filename)
			if result.Format != tt.format {
				t.Fatalf("Format = %q, want %q", result.Format, tt.format)
			}

			switch tt.format {
			case detector.FormatMarkdown:
				if _, ok := result.Content.(*ParsedMarkdown); !ok {
					t.Errorf("Content is %T, want *ParsedMarkdown", result.Content)
				}
			case detector.FormatTranscript:
				if _, ok := result.Content.(*ParsedTranscript); !ok {
					t.Errorf("Content is %T, want *ParsedTranscript", result.Content)
				}
			default:
				if _, ok := result.Content.(*ParsedText); !ok {
					t.Errorf("Content is %T, want *ParsedText", result.Content)
				}
			}
		})
	}
}

func TestParseContentDefaultsFilename(t *testing.T) {
	result := ParseContent("some prose here.", "")
	if result.Filename != "content.txt" {
		t.Errorf("Filename = %q, want %q", result.Filename, "content.txt")
	}
}

func TestParseContentCommonFields(t *testing.T) {
	result := ParseContent("# Title\n\n- first point\n- second point\n", "notes.md")

	if result.WordCount == 0 {
		t.Error("WordCount = 0, want > 0")
	}
	if len(result.KeyPoints) != 2 {
		t.Errorf("len(KeyPoints) = %d, want 2", len(result.KeyPoints))
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(path, []byte("# Hello\n\nworld\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if result.Format != detector.FormatMarkdown {
		t.Errorf("Format = %q, want %q", result.Format, detector.FormatMarkdown)
	}
	if result.Filepath != path {
		t.Errorf("Filepath = %q, want %q", result.Filepath, path)
	}
	if result.Filename != "notes.md" {
		t.Errorf("Filename = %q, want %q", result.Filename, "notes.md")
	}
}

func TestParseResultJSONRoundTrip(t *testing.T) {
	original := ParseContent("# Titel\n\n- punt een\n", "bron.md")

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}

	var restored ParseResult
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if restored.Format != detector.FormatMarkdown {
		t.Errorf("Format = %q, want %q", restored.Format, detector.FormatMarkdown)
	}
	md, ok := restored.Content.(*ParsedMarkdown)
	if !ok {
		t.Fatalf("Content is %T, want *ParsedMarkdown", restored.Content)
	}
	if md.Title != "Titel" {
		t.Errorf("Title = %q, want %q", md.Title, "Titel")
	}
	if restored.WordCount != original.WordCount {
		t.Errorf("WordCount = %d, want %d", restored.WordCount, original.WordCount)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "absent.md")); err == nil {
		t.Fatal("ParseFile() on a missing file returned nil error")
	}
}
