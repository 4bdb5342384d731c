// Package models defines shared data structures for Beat generation.
package models

import "fmt"

// TemplateType identifies which Beat template the content targets.
type TemplateType string

const (
	// TemplateConceptTutorial is the multi-stage scenario quiz template.
	TemplateConceptTutorial TemplateType = "concept-tutorial"
	// TemplateStrategicFramework is the 2x2 matrix explainer template.
	TemplateStrategicFramework TemplateType = "strategic-framework"
)

// TemplateTypes lists all valid template types in display order.
var TemplateTypes = []TemplateType{TemplateConceptTutorial, TemplateStrategicFramework}

// ParseTemplateType validates a raw string against the known template types.
func ParseTemplateType(s string) (TemplateType, error) {
	for _, t := range TemplateTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown template type: %q (valid: %s, %s)",
		s, TemplateConceptTutorial, TemplateStrategicFramework)
}

// BeatMetadata describes a Beat for the catalog and for indexing.
type BeatMetadata struct {
	// Unique identifier (kebab-case)
	ID string `json:"id"`
	// Display title
	Title string `json:"title"`
	// Short description for catalog listing
	Description string `json:"description"`
	// Author name
	Author string `json:"author"`
	// ISO date string of publication
	PublishDate string `json:"publishDate"`
	// Template type used for this Beat
	TemplateType TemplateType `json:"templateType"`
	// Optional tags for categorization
	Tags []string `json:"tags,omitempty"`
	// Optional URL path override (defaults to id)
	Slug string `json:"slug,omitempty"`
}

// Prompts holds the system and user prompt pair for one generation.
type Prompts struct {
	System string `json:"system"`
	User   string `json:"user"`
}
