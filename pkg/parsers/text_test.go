package parsers

import (
	"strings"
	"testing"
)

const reviewDoc = `Quarterly Review

the team delivered strong results and the most important conclusion is that revenue grew overall.

the weather stayed the same during autumn this season. revenue grew by 12 percent in the third quarter.
`

func TestParseTextHeadingsAndBody(t *testing.T) {
	parsed := ParseText(reviewDoc, "review.txt")

	if parsed.Title != "Quarterly Review" {
		t.Errorf("Title = %q, want %q", parsed.Title, "Quarterly Review")
	}

	headings := Headings(parsed)
	if len(headings) != 1 || headings[0] != "Quarterly Review" {
		t.Fatalf("Headings() = %v, want [Quarterly Review]", headings)
	}
	if parsed.Paragraphs[0].Importance != 0.7 {
		t.Errorf("heading importance = %v, want 0.7", parsed.Paragraphs[0].Importance)
	}

	var body []TextParagraph
	for _, p := range parsed.Paragraphs {
		if !p.IsHeading {
			body = append(body, p)
		}
	}
	if len(body) != 2 {
		t.Fatalf("body paragraph count = %d, want 2", len(body))
	}
}

func TestParseTextImportanceClamped(t *testing.T) {
	parsed := ParseText(reviewDoc, "review.txt")

	// First body paragraph hits position, "important", "conclusion" and
	// "result" bonuses, which would exceed 1.0 without the clamp.
	for _, p := range parsed.Paragraphs {
		if p.IsHeading {
			continue
		}
		if strings.Contains(p.Content, "important") {
			if p.Importance != 1.0 {
				t.Errorf("keyword paragraph importance = %v, want 1.0", p.Importance)
			}
		} else if p.Importance >= 1.0 || p.Importance < 0.5 {
			t.Errorf("plain paragraph importance = %v, want in [0.5, 1.0)", p.Importance)
		}
	}
}

func TestParseTextNumberedHeading(t *testing.T) {
	parsed := ParseText("1. Introduction\n\nthe section body goes on for a while and describes what the chapter covers in detail.", "doc.txt")

	headings := Headings(parsed)
	if len(headings) != 1 || headings[0] != "1. Introduction" {
		t.Errorf("Headings() = %v, want [1. Introduction]", headings)
	}
}

func TestParseTextTitleFallsBackToFilename(t *testing.T) {
	parsed := ParseText("every line here contains a period.\nso none qualifies as a title.", "report.pdf")
	if parsed.Title != "report" {
		t.Errorf("Title = %q, want %q", parsed.Title, "report")
	}
}

func TestKeySentencesRankedByScore(t *testing.T) {
	parsed := ParseText(reviewDoc, "review.txt")

	if len(parsed.KeySentences) == 0 {
		t.Fatal("no key sentences")
	}
	// Keyword hits score above a bare number, which scores above plain prose.
	if !strings.Contains(parsed.KeySentences[0], "important") {
		t.Errorf("KeySentences[0] = %q, want the keyword sentence first", parsed.KeySentences[0])
	}
}

func TestTopParagraphs(t *testing.T) {
	parsed := ParseText(reviewDoc, "review.txt")

	top := TopParagraphs(parsed, 1)
	if len(top) != 1 {
		t.Fatalf("len(TopParagraphs) = %d, want 1", len(top))
	}
	if !strings.Contains(top[0], "important") {
		t.Errorf("TopParagraphs()[0] = %q, want the highest scored paragraph", top[0])
	}
	for _, p := range top {
		if p == "Quarterly Review" {
			t.Error("TopParagraphs() must exclude headings")
		}
	}
}

func TestParseTextWordCount(t *testing.T) {
	parsed := ParseText("one two three", "")
	if parsed.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", parsed.WordCount)
	}
}
