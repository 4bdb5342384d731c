package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/businessdatasolutions/beat-generator/models"
	"github.com/businessdatasolutions/beat-generator/pkg/catalog"
	"github.com/businessdatasolutions/beat-generator/pkg/storage"
	"github.com/urfave/cli/v2"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

func loadConfig(c *cli.Context, logger *slog.Logger) *models.Config {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	return &cfg
}

// ListAction prints the published Beat catalog.
func ListAction(c *cli.Context) error {
	logger := newLogger(c)
	cfg := loadConfig(c, logger)

	store := &storage.Storage{}
	cat := catalog.Load(store, catalog.PathFor(cfg.OutputDir), cfg.CatalogBaseURL)

	if len(cat.Beats) == 0 {
		fmt.Println("Catalog is empty")
		fmt.Println("")
		fmt.Println("Generate a Beat first:")
		fmt.Println(`  beatgen prepare --source notes.md --type concept-tutorial`)
		return nil
	}

	fmt.Printf("Catalog: %d Beat(s), last updated %s\n\n", len(cat.Beats), cat.LastUpdated)
	for i, entry := range cat.Beats {
		fmt.Printf("  %d. %s\n", i+1, entry.ID)
		fmt.Printf("     Title:    %s\n", entry.Title)
		fmt.Printf("     Template: %s  Published: %s\n", entry.TemplateType, entry.PublishDate)
	}

	return nil
}

// RebuildAction reconstructs the catalog from the metadata.json files on
// disk. Use it when the catalog was deleted or drifted from the Beat
// directories.
func RebuildAction(c *cli.Context) error {
	logger := newLogger(c)
	cfg := loadConfig(c, logger)

	entries, err := os.ReadDir(cfg.OutputDir)
	if err != nil {
		logger.Error("failed to read output directory", "dir", cfg.OutputDir, "error", err)
		os.Exit(1)
	}

	store := &storage.Storage{}
	cat := catalog.New(cfg.CatalogBaseURL)

	var rebuilt int
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == catalog.DirName {
			continue
		}

		metaPath := filepath.Join(cfg.OutputDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta models.BeatMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			logger.Warn("skipping invalid metadata", "path", metaPath, "error", err)
			continue
		}
		if meta.ID == "" {
			logger.Warn("skipping metadata without id", "path", metaPath)
			continue
		}

		cat.Upsert(meta)
		rebuilt++
	}

	catalogPath := catalog.PathFor(cfg.OutputDir)
	if err := catalog.Save(store, catalogPath, cat); err != nil {
		logger.Error("failed to save catalog", "path", catalogPath, "error", err)
		os.Exit(2)
	}

	fmt.Printf("Catalog rebuilt: %d Beat(s)\n", rebuilt)
	fmt.Printf("Path: %s\n", catalogPath)
	return nil
}
