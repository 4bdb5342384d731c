package generate

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/businessdatasolutions/beat-generator/internal/common"
	"github.com/businessdatasolutions/beat-generator/models"
	"github.com/businessdatasolutions/beat-generator/pkg/db"
	"github.com/businessdatasolutions/beat-generator/pkg/generator"
	"github.com/businessdatasolutions/beat-generator/pkg/llm"
	"github.com/businessdatasolutions/beat-generator/pkg/prompts"
	"github.com/businessdatasolutions/beat-generator/pkg/storage"
	"github.com/businessdatasolutions/beat-generator/pkg/templates"
	"github.com/google/uuid"
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

func openHistory(cfg *models.Config, logger *slog.Logger) *db.DB {
	database, err := db.OpenAt(filepath.Join(cfg.OutputDir, db.DefaultDBName))
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	return database
}

func parseTemplateFlag(c *cli.Context) models.TemplateType {
	templateType, err := models.ParseTemplateType(c.String("type"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  beatgen prepare --source notes.md --type concept-tutorial`)
		fmt.Fprintln(os.Stderr, `  beatgen prepare --source interview.txt --type strategic-framework`)
		os.Exit(1)
	}
	return templateType
}

func buildOptions(c *cli.Context, templateType models.TemplateType) generator.Options {
	return generator.Options{
		SourcePath:         c.String("source"),
		SourceContent:      c.String("content"),
		SourceFilename:     c.String("filename"),
		TemplateType:       templateType,
		OutputName:         c.String("name"),
		TargetAudience:     c.String("audience"),
		FocusTopics:        common.SplitCommaList(c.String("focus")),
		ScenarioCount:      c.Int("scenarios"),
		XAxisConcept:       c.String("x-axis"),
		YAxisConcept:       c.String("y-axis"),
		CustomInstructions: c.String("instructions"),
	}
}

// resolveOutputName falls back to a slug of the source document title when
// no --name was given.
func resolveOutputName(requested string, prep *generator.Preparation) string {
	name := requested
	if name == "" {
		name = common.Slugify(prep.Source.Content.DocumentTitle())
	}
	if !common.IsValidSlug(name) {
		name = common.Slugify(name)
	}
	if name == "" {
		name = "untitled-beat"
	}
	return name
}

func recordPreparation(database *db.DB, logger *slog.Logger, cfg *models.Config, prep *generator.Preparation) string {
	generationID := uuid.NewString()
	err := database.InsertGeneration(db.Generation{
		GenerationID:    generationID,
		OutputName:      prep.OutputName,
		TemplateType:    string(prep.TemplateType),
		Model:           cfg.Model,
		SourceFilename:  prep.Source.Filename,
		SourceFormat:    string(prep.Source.Format),
		SourceWordCount: prep.Source.WordCount,
	})
	if err != nil {
		logger.Warn("failed to record generation", "error", err)
	}
	return generationID
}

// PrepareAction parses the source material and writes the prompt pair to a
// file for manual use with any model.
func PrepareAction(c *cli.Context) error {
	logger := newLogger(c)
	cfg := loadConfig(c, logger)

	if c.String("source") == "" && c.String("content") == "" {
		fmt.Fprintln(os.Stderr, "Error: No source material provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  beatgen prepare --source notes.md --type concept-tutorial --name ml-basics`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: beatgen prepare --help")
		os.Exit(1)
	}

	templateType := parseTemplateFlag(c)
	store := &storage.Storage{}
	gen := generator.New(store, logger, cfg.TemplatesDir, cfg.CatalogBaseURL)

	prep, err := gen.PrepareGeneration(c.Context, buildOptions(c, templateType))
	if err != nil {
		logger.Error("failed to prepare generation", "error", err)
		os.Exit(1)
	}
	prep.OutputName = resolveOutputName(c.String("name"), prep)

	database := openHistory(cfg, logger)
	defer database.Close()
	generationID := recordPreparation(database, logger, cfg, prep)

	prepJSON, err := json.MarshalIndent(prep, "", "  ")
	if err != nil {
		logger.Error("failed to marshal preparation", "error", err)
		os.Exit(2)
	}

	prepPath := filepath.Join(cfg.OutputDir, prep.OutputName+"-prompts.json")
	if err := store.SaveFile(prepPath, prepJSON); err != nil {
		logger.Error("failed to save preparation", "error", err)
		os.Exit(2)
	}

	fmt.Printf("Prepared %s (%s, %d words, %d key points)\n",
		prep.OutputName, prep.Source.Format, prep.Source.WordCount, len(prep.Source.KeyPoints))
	if len(prep.TopKeywords) > 0 {
		fmt.Printf("Keywords: %s\n", strings.Join(prep.TopKeywords, ", "))
	}
	fmt.Printf("Prompts: %s\n", prepPath)
	fmt.Printf("\nNext:\n")
	fmt.Printf("  1. Run the prompts through your model and save the JSON response\n")
	fmt.Printf("  2. beatgen finalize --prompts %s --response <response.json> --generation %s\n", prepPath, generationID)

	return nil
}

// FinalizeAction validates a model response and writes the Beat.
func FinalizeAction(c *cli.Context) error {
	logger := newLogger(c)
	cfg := loadConfig(c, logger)

	prepPath := c.String("prompts")
	responsePath := c.String("response")
	if prepPath == "" || responsePath == "" {
		fmt.Fprintln(os.Stderr, "Error: Both --prompts and --response are required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  beatgen finalize --prompts beats/ml-basics-prompts.json --response response.json`)
		os.Exit(1)
	}

	prepData, err := os.ReadFile(prepPath)
	if err != nil {
		logger.Error("failed to read preparation file", "path", prepPath, "error", err)
		os.Exit(1)
	}
	var prep generator.Preparation
	if err := json.Unmarshal(prepData, &prep); err != nil {
		logger.Error("failed to parse preparation file", "path", prepPath, "error", err)
		os.Exit(1)
	}

	responseData, err := os.ReadFile(responsePath)
	if err != nil {
		logger.Error("failed to read response file", "path", responsePath, "error", err)
		os.Exit(1)
	}
	content, err := llm.ExtractJSON(string(responseData))
	if err != nil {
		logger.Error("response is not valid JSON", "path", responsePath, "error", err)
		os.Exit(1)
	}

	database := openHistory(cfg, logger)
	defer database.Close()

	store := &storage.Storage{}
	gen := generator.New(store, logger, cfg.TemplatesDir, cfg.CatalogBaseURL)

	beat, err := gen.FinalizeGeneration(content, &prep, cfg.OutputDir)
	generationID := c.String("generation")
	if err != nil {
		if generationID != "" {
			if dbErr := database.MarkFailed(generationID, validationErrCount(err), err.Error()); dbErr != nil {
				logger.Warn("failed to record failure", "error", dbErr)
			}
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	if generationID != "" {
		if dbErr := database.MarkSaved(generationID, beat.Metadata.ID, beat.Dir); dbErr != nil {
			logger.Warn("failed to record save", "error", dbErr)
		}
	}

	printSaved(beat)
	return nil
}

// GenerateAction runs the full pipeline: parse, prompt, model call,
// validate, save. Requires ANTHROPIC_API_KEY.
func GenerateAction(c *cli.Context) error {
	logger := newLogger(c)
	cfg := loadConfig(c, logger)

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "Error: ANTHROPIC_API_KEY environment variable is not set")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "For a model-agnostic flow without an API key, use:")
		fmt.Fprintln(os.Stderr, `  beatgen prepare --source notes.md --type concept-tutorial`)
		os.Exit(1)
	}

	if c.String("source") == "" && c.String("content") == "" {
		fmt.Fprintln(os.Stderr, "Error: No source material provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  beatgen generate --source notes.md --type concept-tutorial --name ml-basics`)
		os.Exit(1)
	}

	templateType := parseTemplateFlag(c)
	store := &storage.Storage{}
	gen := generator.New(store, logger, cfg.TemplatesDir, cfg.CatalogBaseURL)

	prep, err := gen.PrepareGeneration(c.Context, buildOptions(c, templateType))
	if err != nil {
		logger.Error("failed to prepare generation", "error", err)
		os.Exit(1)
	}
	prep.OutputName = resolveOutputName(c.String("name"), prep)

	database := openHistory(cfg, logger)
	defer database.Close()
	generationID := recordPreparation(database, logger, cfg, prep)

	client, err := llm.NewAnthropicClient(llm.Config{
		APIKey:    apiKey,
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
	})
	if err != nil {
		logger.Error("failed to create model client", "error", err)
		os.Exit(2)
	}

	logger.Info("generation started",
		"generation_id", generationID,
		"model", client.ModelName(),
		"template", prep.TemplateType,
		"source_format", prep.Source.Format,
		"source_words", prep.Source.WordCount)

	content, validationErrs, err := generateContent(c, logger, client, prep)
	if err != nil {
		if dbErr := database.MarkFailed(generationID, len(validationErrs), err.Error()); dbErr != nil {
			logger.Warn("failed to record failure", "error", dbErr)
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(2)
	}

	beat, err := gen.FinalizeGeneration(content, prep, cfg.OutputDir)
	if err != nil {
		if dbErr := database.MarkFailed(generationID, validationErrCount(err), err.Error()); dbErr != nil {
			logger.Warn("failed to record failure", "error", dbErr)
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	if dbErr := database.MarkSaved(generationID, beat.Metadata.ID, beat.Dir); dbErr != nil {
		logger.Warn("failed to record save", "error", dbErr)
	}

	printSaved(beat)
	return nil
}

// generateContent calls the model and validates the response, retrying with
// a refinement prompt when the content fails validation. The shallow check
// decides acceptance; the strict per-template validation only steers another
// attempt while attempts remain, it never rejects shallow-valid content.
func generateContent(c *cli.Context, logger *slog.Logger, client llm.Client, prep *generator.Preparation) (map[string]any, []string, error) {
	maxAttempts := c.Int("max-attempts")
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	current := prep.Prompts
	var lastErrs []string

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var received int
		response, err := client.Complete(c.Context, current, func(chunk string) {
			received += len(chunk)
		})
		if err != nil {
			return nil, lastErrs, err
		}
		logger.Info("model response received", "attempt", attempt, "chars", received)

		content, err := llm.ExtractJSON(response)
		if err != nil {
			lastErrs = []string{err.Error()}
		} else {
			lastErrs = generator.ValidateContent(content, prep.TemplateType)
			if len(lastErrs) == 0 {
				strictErrs := templates.Validate(content, prep.TemplateType)
				if len(strictErrs) == 0 || attempt == maxAttempts {
					if len(strictErrs) > 0 {
						logger.Warn("saving content with template issues", "errors", strictErrs)
					}
					return content, nil, nil
				}
				lastErrs = strictErrs
			}
		}

		logger.Warn("generated content failed validation", "attempt", attempt, "errors", lastErrs)
		if attempt < maxAttempts {
			current.User = prompts.RefinementPrompt(response, "Los deze validatiefouten op:\n- "+strings.Join(lastErrs, "\n- "))
		}
	}

	return nil, lastErrs, fmt.Errorf("content failed validation after %d attempt(s):\n- %s", maxAttempts, strings.Join(lastErrs, "\n- "))
}

// validationErrCount extracts the number of individual validation messages
// from a finalize error, for the history row.
func validationErrCount(err error) int {
	var vErr *generator.ValidationError
	if errors.As(err, &vErr) {
		return len(vErr.Errs)
	}
	return 0
}

func printSaved(beat *generator.GeneratedBeat) {
	fmt.Printf("Beat saved: %s\n", beat.Dir)
	fmt.Printf("  Title:    %s\n", beat.Metadata.Title)
	fmt.Printf("  Template: %s\n", beat.Metadata.TemplateType)
	fmt.Printf("\nCommands:\n")
	fmt.Printf("  beatgen catalog list        # See all Beats\n")
	fmt.Printf("  beatgen db generations      # Generation history\n")
}
