package parsers

import (
	"regexp"
	"sort"
	"strings"
)

// Speaker is one identified transcript participant.
type Speaker struct {
	// Speaker identifier or name
	Name string `json:"name"`
	// Number of turns attributed to this speaker
	TurnCount int `json:"turnCount"`
}

// TranscriptSegment is one contiguous stretch of speech.
type TranscriptSegment struct {
	// Speaker name, if identified
	Speaker string `json:"speaker,omitempty"`
	// Timestamp, if present
	Timestamp string `json:"timestamp,omitempty"`
	// Segment text, lines joined with spaces
	Content string `json:"content"`
}

// ParsedTranscript is the structured representation of a transcript.
type ParsedTranscript struct {
	// Document title (from filename or first line)
	Title string `json:"title"`
	// Full raw content
	Raw string `json:"raw"`
	// Speakers sorted by turn count, descending
	Speakers []Speaker `json:"speakers"`
	// Segments in source order
	Segments []TranscriptSegment `json:"segments"`
	// Top-10 longest segments between 100 and 500 chars
	Quotes []string `json:"quotes"`
	// Up to 20 capitalized multi-word phrases, insertion order
	Topics []string `json:"topics"`
	// Word count
	WordCount int `json:"wordCount"`
}

// Speaker prefix patterns, tried in order. Each captures (name, rest).
// New transcript layouts get a new table entry, not a new branch.
var transcriptSpeakerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?):\s*(.+)$`), // "John Smith: text"
	regexp.MustCompile(`^\[([^\]]+)\]\s*(.+)$`),                      // "[Speaker]: text"
	regexp.MustCompile(`^([A-Z]{2,}):\s*(.+)$`),                      // "JD: text" (initials)
	regexp.MustCompile(`(?i)^Speaker\s*(\d+):\s*(.+)$`),              // "Speaker 1: text"
}

// Timestamp prefix patterns, tried before speaker patterns. Each captures
// (timestamp, rest).
var transcriptTimestampPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\[?(\d{1,2}:\d{2}(?::\d{2})?)\]?\s*(.+)$`), // [00:00] or 0:00
	regexp.MustCompile(`^\((\d{1,2}:\d{2}(?::\d{2})?)\)\s*(.+)$`),   // (00:00)
}

var (
	topicPhrase           = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)
	transcriptTitleSuffix = regexp.MustCompile(`(?i)\.(txt|md|transcript)$`)
)

const (
	quoteMinChars = 100
	quoteMaxChars = 500
	maxQuotes     = 10
	maxTopics     = 20
)

// ParseTranscript parses transcript content into speaker-attributed
// segments. It keeps a current speaker/timestamp context and flushes the
// pending segment whenever either changes.
func ParseTranscript(content, filename string) *ParsedTranscript {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	title := "Transcript"
	if filename != "" {
		title = transcriptTitleSuffix.ReplaceAllString(filename, "")
	}
	// First line overrides the filename title when it reads like one.
	if len(lines) > 0 && !strings.Contains(lines[0], ":") && len(lines[0]) < 100 {
		title = strings.TrimSpace(lines[0])
	}

	var segments []TranscriptSegment
	speakerCounts := make(map[string]int)
	var speakerOrder []string
	var quoteCandidates []string

	topicSeen := make(map[string]bool)
	var topics []string

	var currentSpeaker, currentTimestamp string
	var buf []string

	saveSegment := func() {
		if len(buf) == 0 {
			return
		}
		text := strings.TrimSpace(strings.Join(buf, " "))
		buf = nil
		if text == "" {
			return
		}

		segments = append(segments, TranscriptSegment{
			Speaker:   currentSpeaker,
			Timestamp: currentTimestamp,
			Content:   text,
		})

		if currentSpeaker != "" {
			if speakerCounts[currentSpeaker] == 0 {
				speakerOrder = append(speakerOrder, currentSpeaker)
			}
			speakerCounts[currentSpeaker]++
		}

		// Longer statements with substance are quote candidates.
		if len(text) > quoteMinChars && len(text) < quoteMaxChars {
			quoteCandidates = append(quoteCandidates, text)
		}
	}

	for _, line := range lines {
		if m := matchFirst(transcriptTimestampPatterns, line); m != nil {
			saveSegment()
			currentTimestamp = m[1]
			if m[2] != "" {
				buf = append(buf, m[2])
			}
			continue
		}

		if m := matchFirst(transcriptSpeakerPatterns, line); m != nil {
			saveSegment()
			currentSpeaker = m[1]
			if m[2] != "" {
				buf = append(buf, m[2])
			}
			continue
		}

		buf = append(buf, line)

		for _, phrase := range topicPhrase.FindAllString(line, -1) {
			if len(phrase) > 5 && len(phrase) < 50 && !topicSeen[phrase] {
				topicSeen[phrase] = true
				topics = append(topics, phrase)
			}
		}
	}

	saveSegment()

	speakers := make([]Speaker, 0, len(speakerOrder))
	for _, name := range speakerOrder {
		speakers = append(speakers, Speaker{Name: name, TurnCount: speakerCounts[name]})
	}
	sort.SliceStable(speakers, func(i, j int) bool {
		return speakers[i].TurnCount > speakers[j].TurnCount
	})

	sort.SliceStable(quoteCandidates, func(i, j int) bool {
		return len(quoteCandidates[i]) > len(quoteCandidates[j])
	})
	if len(quoteCandidates) > maxQuotes {
		quoteCandidates = quoteCandidates[:maxQuotes]
	}

	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}

	return &ParsedTranscript{
		Title:     title,
		Raw:       content,
		Speakers:  speakers,
		Segments:  segments,
		Quotes:    quoteCandidates,
		Topics:    topics,
		WordCount: len(strings.Fields(content)),
	}
}

// matchFirst returns the submatches of the first pattern matching the line.
func matchFirst(patterns []*regexp.Regexp, line string) []string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(line); m != nil {
			return m
		}
	}
	return nil
}

// SpeakerContent returns all segment texts attributed to one speaker.
func SpeakerContent(parsed *ParsedTranscript, speakerName string) []string {
	var result []string
	for _, s := range parsed.Segments {
		if strings.EqualFold(s.Speaker, speakerName) {
			result = append(result, s.Content)
		}
	}
	return result
}

// FullContent joins all segment texts into one document.
func FullContent(parsed *ParsedTranscript) string {
	parts := make([]string, len(parsed.Segments))
	for i, s := range parsed.Segments {
		parts[i] = s.Content
	}
	return strings.Join(parts, "\n\n")
}

// CommonFields implements ParsedContent. Quotes are the transcript's
// key-point projection.
func (p *ParsedTranscript) CommonFields() (int, []string) { return p.WordCount, p.Quotes }

// DocumentTitle implements ParsedContent.
func (p *ParsedTranscript) DocumentTitle() string { return p.Title }

// RawText implements ParsedContent.
func (p *ParsedTranscript) RawText() string { return p.Raw }
