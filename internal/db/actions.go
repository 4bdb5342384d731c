package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/businessdatasolutions/beat-generator/models"
	dbpkg "github.com/businessdatasolutions/beat-generator/pkg/db"
	"github.com/urfave/cli/v2"
)

func openHistory(c *cli.Context) (*dbpkg.DB, *slog.Logger) {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	outputDir := cfg.OutputDir
	if c.IsSet("output-dir") {
		outputDir = c.String("output-dir")
	}

	database, err := dbpkg.OpenAt(filepath.Join(outputDir, dbpkg.DefaultDBName))
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	return database, logger
}

// GenerationsAction lists recent generation runs.
func GenerationsAction(c *cli.Context) error {
	database, logger := openHistory(c)
	defer database.Close()

	var gens []dbpkg.Generation
	var err error
	if beatID := c.String("beat"); beatID != "" {
		gens, err = database.ListGenerationsByBeat(beatID)
	} else {
		gens, err = database.ListGenerations(c.Int("limit"))
	}
	if err != nil {
		logger.Error("failed to list generations", "error", err)
		os.Exit(2)
	}

	if len(gens) == 0 {
		fmt.Println("No generations recorded yet")
		return nil
	}

	fmt.Printf("%d generation(s):\n\n", len(gens))
	for _, gen := range gens {
		fmt.Printf("  %s  [%s]\n", gen.GenerationID, gen.Status)
		fmt.Printf("    Name:     %s (%s)\n", gen.OutputName, gen.TemplateType)
		fmt.Printf("    Source:   %s (%s, %d words)\n", gen.SourceFilename, gen.SourceFormat, gen.SourceWordCount)
		fmt.Printf("    Created:  %s\n", gen.CreatedAt.Format("2006-01-02 15:04:05"))
		if gen.BeatID != "" {
			fmt.Printf("    Beat:     %s\n", gen.BeatID)
		}
		if gen.ErrorMessage != "" {
			fmt.Printf("    Error:    %s\n", gen.ErrorMessage)
		}
		fmt.Println()
	}

	fmt.Println("Commands:")
	fmt.Println("  beatgen db generation <id>   # Full details for one run")
	return nil
}

// GenerationAction shows one generation run by ID.
func GenerationAction(c *cli.Context) error {
	database, logger := openHistory(c)
	defer database.Close()

	generationID := c.Args().First()
	if generationID == "" {
		fmt.Fprintln(os.Stderr, "Error: Generation ID required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  beatgen db generation <id>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Find IDs with: beatgen db generations")
		os.Exit(1)
	}

	gen, err := database.GetGeneration(generationID)
	if err != nil {
		logger.Error("generation not found", "generation_id", generationID, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Generation %s\n", gen.GenerationID)
	fmt.Printf("  Status:       %s\n", gen.Status)
	fmt.Printf("  Name:         %s\n", gen.OutputName)
	fmt.Printf("  Template:     %s\n", gen.TemplateType)
	fmt.Printf("  Model:        %s\n", gen.Model)
	fmt.Printf("  Source:       %s (%s, %d words)\n", gen.SourceFilename, gen.SourceFormat, gen.SourceWordCount)
	fmt.Printf("  Created:      %s\n", gen.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Updated:      %s\n", gen.UpdatedAt.Format("2006-01-02 15:04:05"))
	if gen.BeatID != "" {
		fmt.Printf("  Beat:         %s\n", gen.BeatID)
		fmt.Printf("  Output:       %s\n", gen.OutputDir)
	}
	if gen.ValidationErrs > 0 {
		fmt.Printf("  Validation:   %d error(s)\n", gen.ValidationErrs)
	}
	if gen.ErrorMessage != "" {
		fmt.Printf("  Error:        %s\n", gen.ErrorMessage)
	}

	return nil
}
