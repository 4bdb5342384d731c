// Package htmlsource distills HTML source material into plain text so it
// can flow through the regular text parsing pipeline, mirroring how PDF
// sources arrive pre-converted to text.
package htmlsource

import (
	"bufio"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// IsHTMLPath reports whether a source path points at an HTML document.
func IsHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// Distill extracts the main content of an HTML document as plain text.
// Readability strips navigation and boilerplate first; the remaining
// blocks are emitted as blank-line-separated paragraphs so the text parser
// can segment them. The article title is returned separately.
func Distill(html string) (title, text string, err error) {
	// Local source files have no meaningful URL; readability only uses it
	// to resolve relative links.
	base, _ := url.Parse("file://localhost/source.html")

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), base)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract readable content: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse readable content: %w", err)
	}

	var blocks []string
	doc.Find("h1,h2,h3,h4,p,li,pre").Each(func(i int, s *goquery.Selection) {
		block := normalizeText(s.Text())
		if block != "" {
			blocks = append(blocks, block)
		}
	})

	return normalizeText(article.Title), strings.Join(blocks, "\n\n"), nil
}

// normalizeText collapses a string's lines into one space-separated line.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
