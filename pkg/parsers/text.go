package parsers

import (
	"regexp"
	"sort"
	"strings"
)

// TextParagraph is one paragraph of a plain-text document.
type TextParagraph struct {
	// Paragraph content
	Content string `json:"content"`
	// Estimated importance (0-1) based on position and keywords
	Importance float64 `json:"importance"`
	// Whether this looks like a heading
	IsHeading bool `json:"isHeading"`
}

// ParsedText is the structured representation of a plain-text document,
// including PDFs that have been converted to text.
type ParsedText struct {
	// Document title (inferred or from filename)
	Title string `json:"title"`
	// Full raw content
	Raw string `json:"raw"`
	// Paragraphs in source order
	Paragraphs []TextParagraph `json:"paragraphs"`
	// Top-10 scored sentences
	KeySentences []string `json:"keySentences"`
	// Word count
	WordCount int `json:"wordCount"`
	// Detected language: "nl", "en", or "unknown"
	LanguageHint string `json:"languageHint"`
}

// importanceKeywords flag paragraphs and sentences carrying conclusions or
// recommendations, in English and Dutch. Matches are not deduplicated
// across entries: overlapping keywords each add their own bonus.
var importanceKeywords = []string{
	"important", "key", "critical", "essential", "must", "should",
	"conclusion", "summary", "recommendation", "result",
	"belangrijk", "essentieel", "conclusie", "samenvatting", "aanbeveling",
}

var dutchIndicators = []string{
	"de", "het", "een", "van", "en", "is", "dat", "op", "voor", "zijn",
	"worden", "niet", "met", "aan", "om", "ook", "als", "maar", "bij", "nog",
}

var englishIndicators = []string{
	"the", "a", "an", "of", "and", "is", "that", "on", "for", "are",
	"be", "not", "with", "to", "at", "also", "as", "but", "by", "still",
}

var (
	numberedSection = regexp.MustCompile(`^\d+\.?\s+[A-Z]`)
	sentenceSplit   = regexp.MustCompile(`[.!?]+`)
	containsDigit   = regexp.MustCompile(`\d`)
	startsCapital   = regexp.MustCompile(`^[A-Z]`)
	textTitleSuffix = regexp.MustCompile(`(?i)\.(txt|pdf|doc|docx)$`)
)

const (
	headingImportance = 0.7
	maxKeySentences   = 10
)

// ParseText parses plain-text content into scored paragraphs.
func ParseText(content, filename string) *ParsedText {
	lines := strings.Split(content, "\n")

	title := "Document"
	if filename != "" {
		title = textTitleSuffix.ReplaceAllString(filename, "")
	}
	// First short line without a period makes a better title than the filename.
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && len(trimmed) < 100 && !strings.Contains(trimmed, ".") {
			title = trimmed
			break
		}
	}

	var paragraphs []TextParagraph
	var buf []string

	flush := func() {
		if len(buf) == 0 {
			return
		}
		text := strings.TrimSpace(strings.Join(buf, " "))
		buf = nil
		if text != "" {
			paragraphs = append(paragraphs, TextParagraph{Content: text})
		}
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		nextLine, hasNext := "", i+1 < len(lines)
		if hasNext {
			nextLine = strings.TrimSpace(lines[i+1])
		}

		switch {
		case trimmed == "":
			flush()
		case isLikelyHeading(trimmed, nextLine, hasNext):
			flush()
			paragraphs = append(paragraphs, TextParagraph{
				Content:    trimmed,
				Importance: headingImportance,
				IsHeading:  true,
			})
		default:
			buf = append(buf, trimmed)
		}
	}
	flush()

	// Importance is only computed for body paragraphs; headings keep their
	// fixed score.
	var bodyIdx []int
	for i, p := range paragraphs {
		if !p.IsHeading {
			bodyIdx = append(bodyIdx, i)
		}
	}
	for rank, i := range bodyIdx {
		paragraphs[i].Importance = importanceScore(paragraphs[i].Content, rank, len(bodyIdx))
	}

	return &ParsedText{
		Title:        title,
		Raw:          content,
		Paragraphs:   paragraphs,
		KeySentences: keySentences(content),
		WordCount:    len(strings.Fields(content)),
		LanguageHint: detectLanguage(content),
	}
}

// isLikelyHeading applies the heading heuristics in order: short capitalized
// line without terminal period, all caps, numbered section, or a short line
// followed by a blank one.
func isLikelyHeading(trimmed, nextLine string, hasNext bool) bool {
	if len(trimmed) < 80 && !strings.HasSuffix(trimmed, ".") && startsCapital.MatchString(trimmed) {
		return true
	}
	if trimmed == strings.ToUpper(trimmed) && len(trimmed) > 3 && len(trimmed) < 60 {
		return true
	}
	if numberedSection.MatchString(trimmed) && len(trimmed) < 80 {
		return true
	}
	if hasNext && nextLine == "" && len(trimmed) < 80 {
		return true
	}
	return false
}

// importanceScore starts from a 0.5 base with positional, keyword, and
// length bonuses, clamped to 1.0.
func importanceScore(content string, index, total int) float64 {
	score := 0.5

	if index < 3 {
		score += 0.2
	}
	if index >= total-3 {
		score += 0.1
	}

	lower := strings.ToLower(content)
	for _, keyword := range importanceKeywords {
		if strings.Contains(lower, keyword) {
			score += 0.1
		}
	}

	wordCount := len(strings.Fields(content))
	if wordCount > 20 && wordCount < 150 {
		score += 0.1
	}

	if score > 1 {
		score = 1
	}
	return score
}

// keySentences scores every sentence between 30 and 300 chars: +2 per
// importance keyword, +1 when it cites a number. Ties keep source order.
func keySentences(text string) []string {
	type scored struct {
		sentence string
		score    int
	}

	var candidates []scored
	for _, raw := range sentenceSplit.Split(text, -1) {
		sentence := strings.TrimSpace(raw)
		if len(sentence) <= 30 || len(sentence) >= 300 {
			continue
		}

		score := 0
		lower := strings.ToLower(sentence)
		for _, keyword := range importanceKeywords {
			if strings.Contains(lower, keyword) {
				score += 2
			}
		}
		if containsDigit.MatchString(sentence) {
			score++
		}

		candidates = append(candidates, scored{sentence, score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	limit := maxKeySentences
	if len(candidates) < limit {
		limit = len(candidates)
	}
	result := make([]string, limit)
	for i := 0; i < limit; i++ {
		result[i] = candidates[i].sentence
	}
	return result
}

// TopParagraphs returns the most important body paragraphs.
func TopParagraphs(parsed *ParsedText, count int) []string {
	var body []TextParagraph
	for _, p := range parsed.Paragraphs {
		if !p.IsHeading {
			body = append(body, p)
		}
	}

	sort.SliceStable(body, func(i, j int) bool {
		return body[i].Importance > body[j].Importance
	})

	if len(body) > count {
		body = body[:count]
	}
	result := make([]string, len(body))
	for i, p := range body {
		result[i] = p.Content
	}
	return result
}

// Headings returns all heading paragraphs.
func Headings(parsed *ParsedText) []string {
	var result []string
	for _, p := range parsed.Paragraphs {
		if p.IsHeading {
			result = append(result, p.Content)
		}
	}
	return result
}

// CommonFields implements ParsedContent. Key sentences are the text
// format's key-point projection.
func (p *ParsedText) CommonFields() (int, []string) { return p.WordCount, p.KeySentences }

// DocumentTitle implements ParsedContent.
func (p *ParsedText) DocumentTitle() string { return p.Title }

// RawText implements ParsedContent.
func (p *ParsedText) RawText() string { return p.Raw }
