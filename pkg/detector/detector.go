// Package detector classifies raw source material as markdown, transcript,
// or plain text using the file extension plus content heuristics.
package detector

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Format is the detected source material format.
type Format string

const (
	FormatMarkdown   Format = "markdown"
	FormatTranscript Format = "transcript"
	FormatText       Format = "text"
)

// headLines is how many leading lines are inspected for content signals.
const headLines = 50

// extensionFormats maps file extensions to formats decided without
// looking at content.
var extensionFormats = map[string]Format{
	".md":         FormatMarkdown,
	".markdown":   FormatMarkdown,
	".transcript": FormatTranscript,
}

// Markdown signals checked against the leading lines.
var (
	markdownHeading = regexp.MustCompile(`^#{1,6}\s`)
	markdownBullet  = regexp.MustCompile(`^[\s]*[-*+]\s`)
)

// Transcript signals. Ordered: new speaker/timestamp layouts get appended
// here rather than new branches in Detect.
var speakerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?:`), // "John Smith:"
	regexp.MustCompile(`^\[[^\]]+\]:`),                     // "[Speaker]:"
	regexp.MustCompile(`^[A-Z]{2,}:`),                      // "JD:" (initials)
	regexp.MustCompile(`(?i)^Speaker\s*\d+:`),              // "Speaker 1:"
}

var timestampSignal = regexp.MustCompile(`\d{1,2}:\d{2}`)

// Detect classifies source content. It is pure and total: every input maps
// to exactly one format and no input fails.
func Detect(filepath_ string, content string) Format {
	ext := strings.ToLower(filepath.Ext(filepath_))
	if f, ok := extensionFormats[ext]; ok {
		return f
	}

	lines := strings.Split(content, "\n")
	if len(lines) > headLines {
		lines = lines[:headLines]
	}

	if hasMarkdownSignals(lines, content) {
		return FormatMarkdown
	}
	if hasTranscriptSignals(lines) {
		return FormatTranscript
	}
	return FormatText
}

func hasMarkdownSignals(lines []string, content string) bool {
	var hasHeading, hasList bool
	for _, line := range lines {
		if markdownHeading.MatchString(line) {
			hasHeading = true
		}
		if markdownBullet.MatchString(line) {
			hasList = true
		}
	}
	// Links are checked against the whole document, not just the head.
	hasLinks := strings.Contains(content, "](")

	return hasHeading || (hasLinks && hasList)
}

func hasTranscriptSignals(lines []string) bool {
	var hasSpeaker, hasTimestamp bool
	for _, line := range lines {
		for _, p := range speakerPatterns {
			if p.MatchString(line) {
				hasSpeaker = true
				break
			}
		}
		if timestampSignal.MatchString(line) {
			hasTimestamp = true
		}
	}

	return hasSpeaker || (hasTimestamp && len(lines) > 20)
}
