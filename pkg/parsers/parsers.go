// Package parsers ingests heterogeneous source material (markdown,
// transcripts, plain text), auto-detects the format, and produces one
// normalized ParseResult consumed by prompt synthesis.
package parsers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/businessdatasolutions/beat-generator/pkg/detector"
)

// ParsedContent is the tagged union of the three parser outputs. The
// concrete type follows the ParseResult's Format field.
type ParsedContent interface {
	// CommonFields projects the format-specific result onto the shared
	// (wordCount, keyPoints) pair.
	CommonFields() (wordCount int, keyPoints []string)
	// DocumentTitle returns the derived document title.
	DocumentTitle() string
	// RawText returns the full raw source.
	RawText() string
}

// ParseResult is the normalized output of ingesting one source document.
// It is immutable once produced.
type ParseResult struct {
	// Detected format
	Format detector.Format `json:"format"`
	// Parsed content; concrete type matches Format
	Content ParsedContent `json:"content"`
	// Original filename
	Filename string `json:"filename"`
	// File path
	Filepath string `json:"filepath"`
	// Word count (from content)
	WordCount int `json:"wordCount"`
	// Key points extracted (from content)
	KeyPoints []string `json:"keyPoints"`
}

// UnmarshalJSON decodes a ParseResult written by a previous run. The
// Content field is an interface, so the concrete type is chosen from the
// Format field before decoding it.
func (r *ParseResult) UnmarshalJSON(data []byte) error {
	type alias ParseResult
	aux := struct {
		*alias
		Content json.RawMessage `json:"content"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var content ParsedContent
	switch r.Format {
	case detector.FormatMarkdown:
		content = &ParsedMarkdown{}
	case detector.FormatTranscript:
		content = &ParsedTranscript{}
	default:
		content = &ParsedText{}
	}
	if len(aux.Content) > 0 {
		if err := json.Unmarshal(aux.Content, content); err != nil {
			return fmt.Errorf("failed to decode %s content: %w", r.Format, err)
		}
	}
	r.Content = content
	return nil
}

// ParseFile reads and parses source material from a file path.
func ParseFile(path string) (*ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source material: %w", err)
	}

	result := ParseContent(string(data), filepath.Base(path))
	result.Filepath = path
	return result, nil
}

// ParseContent parses raw source material. The filename is an optional
// hint for format detection and title derivation.
func ParseContent(content, filename string) *ParseResult {
	path := filename
	if path == "" {
		path = "content.txt"
	}

	format := detector.Detect(path, content)

	var parsed ParsedContent
	switch format {
	case detector.FormatMarkdown:
		parsed = ParseMarkdown(content, filename)
	case detector.FormatTranscript:
		parsed = ParseTranscript(content, filename)
	default:
		parsed = ParseText(content, filename)
	}

	wordCount, keyPoints := parsed.CommonFields()

	name := filename
	if name == "" {
		name = "content.txt"
	}

	return &ParseResult{
		Format:    format,
		Content:   parsed,
		Filename:  name,
		Filepath:  path,
		WordCount: wordCount,
		KeyPoints: keyPoints,
	}
}
