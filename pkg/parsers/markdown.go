package parsers

import (
	"regexp"
	"strings"
)

// MarkdownSection is one heading with its body text and nested subsections.
// Children are exclusively owned by their parent; the section tree follows
// heading-level monotonicity.
type MarkdownSection struct {
	// Heading level (1-6)
	Level int `json:"level"`
	// Heading text
	Title string `json:"title"`
	// Text between this heading and the next
	Content string `json:"content"`
	// Nested subsections
	Children []*MarkdownSection `json:"children"`
}

// MarkdownLink is an inline [text](url) link.
type MarkdownLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// ParsedMarkdown is the structured representation of a markdown document.
type ParsedMarkdown struct {
	// Document title (first h1 or filename)
	Title string `json:"title"`
	// Full raw content
	Raw string `json:"raw"`
	// Hierarchical sections
	Sections []*MarkdownSection `json:"sections"`
	// Bullet list items, flattened regardless of nesting
	KeyPoints []string `json:"keyPoints"`
	// Inline links
	Links []MarkdownLink `json:"links"`
	// Word count with markdown syntax stripped
	WordCount int `json:"wordCount"`
}

var (
	headingPattern  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	bulletPattern   = regexp.MustCompile(`^[\s]*[-*+]\s+(.+)$`)
	inlineLink      = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	markdownSyntax  = regexp.MustCompile("[#*_`\\[\\]()]")
	mdTitleSuffix   = regexp.MustCompile(`\.md$`)
)

// ParseMarkdown parses markdown content into a section tree plus derived
// metrics. The first h1 heading becomes the document title; the filename
// is only a fallback.
func ParseMarkdown(content, filename string) *ParsedMarkdown {
	lines := strings.Split(content, "\n")

	defaultTitle := "Untitled"
	if filename != "" {
		defaultTitle = mdTitleSuffix.ReplaceAllString(filename, "")
	}
	title := defaultTitle

	var sections []*MarkdownSection
	var keyPoints []string
	var links []MarkdownLink

	// Stack of open sections; the top is the section new content attaches to.
	var stack []*MarkdownSection
	var current *MarkdownSection
	var buf []string

	saveContent := func() {
		if current != nil && len(buf) > 0 {
			current.Content = strings.TrimSpace(strings.Join(buf, "\n"))
			buf = nil
		}
	}

	for _, line := range lines {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			saveContent()

			level := len(m[1])
			headingTitle := strings.TrimSpace(m[2])

			if level == 1 && title == defaultTitle {
				title = headingTitle
			}

			section := &MarkdownSection{
				Level:    level,
				Title:    headingTitle,
				Children: []*MarkdownSection{},
			}

			if parent := findParent(stack, level); parent != nil {
				parent.Children = append(parent.Children, section)
			} else {
				sections = append(sections, section)
			}

			for len(stack) > 0 && stack[len(stack)-1].Level >= level {
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, section)
			current = section
			continue
		}

		if m := bulletPattern.FindStringSubmatch(line); m != nil {
			keyPoints = append(keyPoints, strings.TrimSpace(m[1]))
		}

		for _, m := range inlineLink.FindAllStringSubmatch(line, -1) {
			links = append(links, MarkdownLink{Text: m[1], URL: m[2]})
		}

		buf = append(buf, line)
	}

	saveContent()

	return &ParsedMarkdown{
		Title:     title,
		Raw:       content,
		Sections:  sections,
		KeyPoints: keyPoints,
		Links:     links,
		WordCount: markdownWordCount(content),
	}
}

// findParent walks the open-section stack top-down for the nearest section
// shallower than the given level.
func findParent(stack []*MarkdownSection, level int) *MarkdownSection {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Level < level {
			return stack[i]
		}
	}
	return nil
}

// markdownWordCount strips markdown punctuation before counting words, so
// "**bold** text" counts 2 words rather than tokens with asterisks.
func markdownWordCount(content string) int {
	stripped := markdownSyntax.ReplaceAllString(content, "")
	return len(strings.Fields(stripped))
}

// FlattenSections returns every section in document order, depth-first.
func FlattenSections(sections []*MarkdownSection) []*MarkdownSection {
	var result []*MarkdownSection

	var walk func(*MarkdownSection)
	walk = func(s *MarkdownSection) {
		result = append(result, s)
		for _, child := range s.Children {
			walk(child)
		}
	}

	for _, s := range sections {
		walk(s)
	}
	return result
}

// MainTopics lists the h2 titles, the document's main topic headings.
func MainTopics(parsed *ParsedMarkdown) []string {
	var topics []string
	for _, s := range FlattenSections(parsed.Sections) {
		if s.Level == 2 {
			topics = append(topics, s.Title)
		}
	}
	return topics
}

// CommonFields implements ParsedContent.
func (p *ParsedMarkdown) CommonFields() (int, []string) { return p.WordCount, p.KeyPoints }

// DocumentTitle implements ParsedContent.
func (p *ParsedMarkdown) DocumentTitle() string { return p.Title }

// RawText implements ParsedContent.
func (p *ParsedMarkdown) RawText() string { return p.Raw }
