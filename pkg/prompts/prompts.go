// Package prompts synthesizes the system and user prompts sent to the LLM
// for each Beat template type.
package prompts

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/businessdatasolutions/beat-generator/models"
	"github.com/businessdatasolutions/beat-generator/pkg/parsers"
)

// Options tune the user prompt. Zero values fall back to per-template
// defaults.
type Options struct {
	// Target audience description
	TargetAudience string
	// Topics to focus on (concept-tutorial)
	FocusTopics []string
	// Number of scenarios (concept-tutorial)
	ScenarioCount int
	// X-axis concept hint (strategic-framework)
	XAxisConcept string
	// Y-axis concept hint (strategic-framework)
	YAxisConcept string
	// Free-form extra instructions appended to the prompt
	CustomInstructions string
}

// maxSourceChars bounds how much raw source is embedded in the user prompt.
const maxSourceChars = 15000

const truncationMarker = "\n[Content afgekapt na 15000 karakters]"

const defaultAudience = "executives en technisch leiders"

const fence = "```"

// Generate renders the prompt pair for a template type and parsed source.
// Deterministic given identical inputs, except for the current-date default
// publish date embedded in the JSON example.
func Generate(templateType models.TemplateType, source *parsers.ParseResult, opts Options) (models.Prompts, error) {
	switch templateType {
	case models.TemplateConceptTutorial:
		return models.Prompts{
			System: ConceptTutorialSystemPrompt,
			User:   conceptTutorialUserPrompt(source, opts),
		}, nil
	case models.TemplateStrategicFramework:
		return models.Prompts{
			System: StrategicFrameworkSystemPrompt,
			User:   strategicFrameworkUserPrompt(source, opts),
		}, nil
	default:
		return models.Prompts{}, fmt.Errorf("unknown template type: %q", templateType)
	}
}

// RefinementPrompt builds a follow-up prompt for iterating on previously
// generated content.
func RefinementPrompt(currentContent, feedback string) string {
	return fmt.Sprintf(`## Huidige Content

%s

## Feedback voor Aanpassing

%s

---

## Opdracht

Pas de content aan op basis van de feedback.
Behoud de JSON structuur.
Genereer de complete aangepaste JSON:`, currentContent, feedback)
}

// sourceSection renders the shared source-material block at the top of
// every user prompt, bounded to maxSourceChars.
func sourceSection(source *parsers.ParseResult) string {
	raw := source.Content.RawText()
	body := truncateRunesafe(raw, maxSourceChars)

	marker := ""
	if utf8.RuneCountInString(raw) > maxSourceChars {
		marker = truncationMarker
	}

	return fmt.Sprintf(`## Bronmateriaal

**Titel:** %s
**Formaat:** %s
**Woorden:** %d

### Inhoud

%s

%s`, source.Content.DocumentTitle(), source.Format, source.WordCount, body, marker)
}

// truncateRunesafe cuts a string to at most n runes without splitting a
// multibyte character.
func truncateRunesafe(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

func customInstructionsSection(instructions string) string {
	if instructions == "" {
		return ""
	}
	return fmt.Sprintf("\n\n## Aanvullende instructies van de gebruiker\n\n%s\n", instructions)
}

func audienceOrDefault(audience string) string {
	if strings.TrimSpace(audience) == "" {
		return defaultAudience
	}
	return audience
}

// publishDateDefault is today's date, embedded in the JSON example as the
// default publish date.
func publishDateDefault() string {
	return time.Now().Format("2006-01-02")
}
