// Package generator sequences Beat generation: parse source material,
// synthesize prompts, validate the AI's content, and persist the Beat and
// its catalog entry. The LLM call itself sits between the two phases and is
// owned by the caller.
package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/businessdatasolutions/beat-generator/models"
	"github.com/businessdatasolutions/beat-generator/pkg/analytics"
	"github.com/businessdatasolutions/beat-generator/pkg/catalog"
	"github.com/businessdatasolutions/beat-generator/pkg/fetcher"
	"github.com/businessdatasolutions/beat-generator/pkg/htmlsource"
	"github.com/businessdatasolutions/beat-generator/pkg/parsers"
	"github.com/businessdatasolutions/beat-generator/pkg/prompts"
	"github.com/businessdatasolutions/beat-generator/pkg/storage"
	"github.com/businessdatasolutions/beat-generator/pkg/templates"
)

// ErrNoSource is returned when neither a source path nor inline content is
// supplied.
var ErrNoSource = errors.New("either sourcePath or sourceContent must be provided")

// ValidationError aggregates the messages content validation produced.
type ValidationError struct {
	Errs []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("content validation failed:\n%s", strings.Join(e.Errs, "\n"))
}

// Options configure one generation request.
type Options struct {
	// Path to source material file
	SourcePath string
	// Raw source content (alternative to SourcePath)
	SourceContent string
	// Filename hint for SourceContent
	SourceFilename string
	// Template type to generate
	TemplateType models.TemplateType
	// Output name (kebab-case, used for the folder name)
	OutputName string
	// Target audience description
	TargetAudience string
	// Specific topics to focus on (concept-tutorial)
	FocusTopics []string
	// Number of scenarios (concept-tutorial)
	ScenarioCount int
	// X-axis concept (strategic-framework)
	XAxisConcept string
	// Y-axis concept (strategic-framework)
	YAxisConcept string
	// Extra instructions forwarded to the prompt
	CustomInstructions string
}

// Preparation is everything needed for the AI step: prompts plus the parsed
// source they were built from.
type Preparation struct {
	Prompts      models.Prompts      `json:"prompts"`
	Source       *parsers.ParseResult `json:"source"`
	OutputName   string              `json:"outputName"`
	TemplateType models.TemplateType `json:"templateType"`
	// Most frequent non-stopwords across the source material
	TopKeywords []string `json:"topKeywords,omitempty"`
}

// GeneratedBeat is the result of a finalized generation.
type GeneratedBeat struct {
	Metadata models.BeatMetadata
	Content  map[string]any
	Prompts  models.Prompts
	Source   *parsers.ParseResult
	// Directory the Beat was written to
	Dir string
}

// Generator wires the pipeline's collaborators.
type Generator struct {
	store          *storage.Storage
	logger         *slog.Logger
	templatesDir   string
	catalogBaseURL string
}

// New creates a Generator.
func New(store *storage.Storage, logger *slog.Logger, templatesDir, catalogBaseURL string) *Generator {
	return &Generator{
		store:          store,
		logger:         logger,
		templatesDir:   templatesDir,
		catalogBaseURL: catalogBaseURL,
	}
}

// PrepareGeneration resolves and parses the source material and builds the
// prompt pair. It performs no writes. The context covers remote source
// downloads.
func (g *Generator) PrepareGeneration(ctx context.Context, opts Options) (*Preparation, error) {
	source, err := g.resolveSource(ctx, opts)
	if err != nil {
		return nil, err
	}

	promptOpts := prompts.Options{
		TargetAudience:     opts.TargetAudience,
		CustomInstructions: opts.CustomInstructions,
	}
	switch opts.TemplateType {
	case models.TemplateConceptTutorial:
		promptOpts.FocusTopics = opts.FocusTopics
		promptOpts.ScenarioCount = opts.ScenarioCount
	case models.TemplateStrategicFramework:
		promptOpts.XAxisConcept = opts.XAxisConcept
		promptOpts.YAxisConcept = opts.YAxisConcept
	}

	p, err := prompts.Generate(opts.TemplateType, source, promptOpts)
	if err != nil {
		return nil, err
	}

	a := &analytics.Analytics{}

	return &Preparation{
		Prompts:      p,
		Source:       source,
		OutputName:   opts.OutputName,
		TemplateType: opts.TemplateType,
		TopKeywords:  a.TopNWords(source.Content.RawText(), 10),
	}, nil
}

func (g *Generator) resolveSource(ctx context.Context, opts Options) (*parsers.ParseResult, error) {
	if opts.SourcePath != "" {
		if fetcher.IsRemote(opts.SourcePath) {
			return g.fetchRemoteSource(ctx, opts.SourcePath)
		}
		if htmlsource.IsHTMLPath(opts.SourcePath) {
			return g.parseHTMLSource(opts.SourcePath)
		}
		return parsers.ParseFile(opts.SourcePath)
	}

	if opts.SourceContent != "" {
		return parsers.ParseContent(opts.SourceContent, opts.SourceFilename), nil
	}

	return nil, ErrNoSource
}

// parseHTMLSource distills an HTML file to plain text first, then runs it
// through the regular pipeline as a text document.
func (g *Generator) parseHTMLSource(path string) (*parsers.ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source material: %w", err)
	}

	base := filepath.Base(path)
	return g.distillHTML(string(data), path, base)
}

// fetchRemoteSource downloads an http(s) source and treats the body as HTML.
func (g *Generator) fetchRemoteSource(ctx context.Context, url string) (*parsers.ParseResult, error) {
	g.logger.Info("fetching remote source", "url", url)

	html, err := fetcher.NewFetcher().GetHTML(ctx, url)
	if err != nil {
		return nil, err
	}

	base := filepath.Base(strings.TrimRight(url, "/"))
	if base == "" || strings.Contains(base, ":") {
		base = "source.html"
	}
	return g.distillHTML(html, url, base)
}

func (g *Generator) distillHTML(html, origin, base string) (*parsers.ParseResult, error) {
	title, text, err := htmlsource.Distill(html)
	if err != nil {
		return nil, err
	}

	hint := strings.TrimSuffix(base, filepath.Ext(base)) + ".txt"

	result := parsers.ParseContent(text, hint)
	result.Filepath = origin
	result.Filename = base
	if title != "" {
		if pt, ok := result.Content.(*parsers.ParsedText); ok {
			pt.Title = title
		}
	}
	return result, nil
}

// FinalizeGeneration validates AI-produced content and, when valid, writes
// the Beat directory and upserts the catalog. Invalid content aborts with
// an aggregated error before anything is written. Catalog failures are
// logged as warnings; the Beat files still count as saved.
func (g *Generator) FinalizeGeneration(content map[string]any, prep *Preparation, outputDir string) (*GeneratedBeat, error) {
	if errs := ValidateContent(content, prep.TemplateType); len(errs) > 0 {
		return nil, &ValidationError{Errs: errs}
	}

	meta, err := metadataFromContent(content)
	if err != nil {
		return nil, err
	}

	beat := &GeneratedBeat{
		Metadata: meta,
		Content:  content,
		Prompts:  prep.Prompts,
		Source:   prep.Source,
	}

	beatDir, err := g.saveBeat(beat, outputDir)
	if err != nil {
		return nil, err
	}
	beat.Dir = beatDir

	catalogPath := catalog.PathFor(outputDir)
	if err := catalog.Update(g.store, catalogPath, g.catalogBaseURL, meta); err != nil {
		g.logger.Warn("could not update catalog", "path", catalogPath, "error", err)
	} else {
		g.logger.Info("catalog updated", "path", catalogPath, "beat_id", meta.ID)
	}

	return beat, nil
}

func metadataFromContent(content map[string]any) (models.BeatMetadata, error) {
	var meta models.BeatMetadata

	raw, err := json.Marshal(content["metadata"])
	if err != nil {
		return meta, fmt.Errorf("failed to encode metadata: %w", err)
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return meta, fmt.Errorf("failed to decode metadata: %w", err)
	}
	return meta, nil
}

func (g *Generator) saveBeat(beat *GeneratedBeat, outputDir string) (string, error) {
	beatDir := filepath.Join(outputDir, beat.Metadata.ID)
	if err := g.store.EnsureDir(beatDir); err != nil {
		return "", err
	}

	if err := g.copyScaffold(beat.Metadata.TemplateType, beatDir, beat.Metadata.ID, beat.Metadata.Title); err != nil {
		return "", err
	}

	contentJSON, err := json.MarshalIndent(beat.Content, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode content: %w", err)
	}

	constants := fmt.Sprintf(`/**
 * %s
 *
 * Generated Beat content.
 * Template: %s
 * Generated: %s
 */

export const BEAT_CONTENT = %s as const;

export default BEAT_CONTENT;
`, beat.Metadata.Title, beat.Metadata.TemplateType, time.Now().Format(time.RFC3339), contentJSON)

	// The generated content overwrites any scaffold placeholder.
	if err := g.store.SaveFile(filepath.Join(beatDir, "constants.tsx"), []byte(constants)); err != nil {
		return "", err
	}

	metaJSON, err := json.MarshalIndent(beat.Metadata, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode metadata: %w", err)
	}
	if err := g.store.SaveFile(filepath.Join(beatDir, "metadata.json"), metaJSON); err != nil {
		return "", err
	}

	promptsJSON, err := json.MarshalIndent(beat.Prompts, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode prompts: %w", err)
	}
	if err := g.store.SaveFile(filepath.Join(beatDir, "_prompts.json"), promptsJSON); err != nil {
		return "", err
	}

	return beatDir, nil
}

// copyScaffold copies the template's scaffold files into the Beat
// directory, substituting {{BEAT_ID}} and {{BEAT_TITLE}}. Files already
// present in the destination are left alone. A missing scaffold directory
// is a warning, not an error.
func (g *Generator) copyScaffold(templateType models.TemplateType, beatDir, beatID, beatTitle string) error {
	scaffoldDir := templates.ScaffoldDir(g.templatesDir, templateType)

	entries, err := os.ReadDir(scaffoldDir)
	if err != nil {
		g.logger.Warn("scaffold directory not found", "dir", scaffoldDir)
		return nil
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		destPath := filepath.Join(beatDir, entry.Name())
		if g.store.HasFile(destPath) {
			continue
		}

		data, err := g.store.ReadFile(filepath.Join(scaffoldDir, entry.Name()))
		if err != nil {
			return err
		}

		content := strings.ReplaceAll(string(data), "{{BEAT_ID}}", beatID)
		content = strings.ReplaceAll(content, "{{BEAT_TITLE}}", beatTitle)

		if err := g.store.SaveFile(destPath, []byte(content)); err != nil {
			return err
		}
	}

	return nil
}
