package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds optional settings loaded from beatgen.yaml.
// CLI flags override anything set here.
type Config struct {
	// Directory Beats are written to (default "beats")
	OutputDir string `yaml:"output_dir"`
	// Base URL recorded in the catalog file
	CatalogBaseURL string `yaml:"catalog_base_url"`
	// Default author for generated metadata
	Author string `yaml:"author"`
	// Model name for the AI generation command
	Model string `yaml:"model"`
	// Max tokens for the AI generation command
	MaxTokens int `yaml:"max_tokens"`
	// Directory containing <templateType>/scaffold files
	TemplatesDir string `yaml:"templates_dir"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		OutputDir:      "beats",
		CatalogBaseURL: "https://businessdatasolutions.github.io/thtx-knowledge-bank",
		Author:         "THTX",
		Model:          "claude-sonnet-4-5-20250929",
		MaxTokens:      16000,
		TemplatesDir:   "_templates",
	}
}

// LoadConfig reads a yaml config file, merging it over the defaults.
// A missing file is not an error; defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	// Re-fill anything the file blanked out
	def := DefaultConfig()
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.CatalogBaseURL == "" {
		cfg.CatalogBaseURL = def.CatalogBaseURL
	}
	if cfg.Author == "" {
		cfg.Author = def.Author
	}
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = def.MaxTokens
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = def.TemplatesDir
	}

	return cfg, nil
}
