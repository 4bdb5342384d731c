package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.OutputDir != "beats" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "beats")
	}
	if cfg.MaxTokens != 16000 {
		t.Errorf("MaxTokens = %d, want 16000", cfg.MaxTokens)
	}
	if cfg.Author != "THTX" {
		t.Errorf("Author = %q, want %q", cfg.Author, "THTX")
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beatgen.yaml")
	yaml := "output_dir: /srv/beats\nmax_tokens: 8000\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.OutputDir != "/srv/beats" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "/srv/beats")
	}
	if cfg.MaxTokens != 8000 {
		t.Errorf("MaxTokens = %d, want 8000", cfg.MaxTokens)
	}
	// Unset keys keep their defaults
	if cfg.Model != "claude-sonnet-4-5-20250929" {
		t.Errorf("Model = %q, want default", cfg.Model)
	}
	if cfg.TemplatesDir != "_templates" {
		t.Errorf("TemplatesDir = %q, want default", cfg.TemplatesDir)
	}
}

func TestLoadConfigInvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beatgen.yaml")
	if err := os.WriteFile(path, []byte("output_dir: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() with invalid yaml returned nil error")
	}
}

func TestParseTemplateType(t *testing.T) {
	tests := []struct {
		input   string
		want    TemplateType
		wantErr bool
	}{
		{"concept-tutorial", TemplateConceptTutorial, false},
		{"strategic-framework", TemplateStrategicFramework, false},
		{"quiz", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseTemplateType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTemplateType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTemplateType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
