package detector

import "testing"

func TestDetectByExtension(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"notes.md", FormatMarkdown},
		{"notes.MARKDOWN", FormatMarkdown},
		{"interview.transcript", FormatTranscript},
	}

	for _, tt := range tests {
		// Content deliberately contradicts the extension
		if got := Detect(tt.path, "plain prose without signals"); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDetectMarkdownByHeading(t *testing.T) {
	content := "# Title\n\nSome prose follows here."
	if got := Detect("notes.txt", content); got != FormatMarkdown {
		t.Errorf("Detect() = %q, want %q", got, FormatMarkdown)
	}
}

func TestDetectMarkdownByLinksAndList(t *testing.T) {
	content := "Intro line\n- first [link](https://example.com)\n- second point"
	if got := Detect("notes.txt", content); got != FormatMarkdown {
		t.Errorf("Detect() = %q, want %q", got, FormatMarkdown)
	}
}

func TestDetectTranscriptBySpeaker(t *testing.T) {
	tests := []string{
		"John Smith: welcome everyone",
		"[Host]: let's get started",
		"JD: I think so",
		"Speaker 1: first point",
		"speaker 2: case insensitive",
	}

	for _, content := range tests {
		if got := Detect("interview.txt", content); got != FormatTranscript {
			t.Errorf("Detect(%q) = %q, want %q", content, got, FormatTranscript)
		}
	}
}

func TestDetectTimestampsNeedManyLines(t *testing.T) {
	// Timestamps alone on a short document stay text
	short := "meeting at 10:30\ndone"
	if got := Detect("notes.txt", short); got != FormatText {
		t.Errorf("Detect(short) = %q, want %q", got, FormatText)
	}

	long := "00:01 intro\n"
	for i := 0; i < 25; i++ {
		long += "some line without any signal\n"
	}
	if got := Detect("notes.txt", long); got != FormatTranscript {
		t.Errorf("Detect(long) = %q, want %q", got, FormatTranscript)
	}
}

func TestDetectPlainText(t *testing.T) {
	content := "Just a few paragraphs.\n\nNothing special about them."
	if got := Detect("notes.txt", content); got != FormatText {
		t.Errorf("Detect() = %q, want %q", got, FormatText)
	}
}

func TestDetectSignalsOnlyInHead(t *testing.T) {
	// A heading past the inspection window does not trigger markdown
	content := ""
	for i := 0; i < 60; i++ {
		content += "plain line\n"
	}
	content += "# Late Heading\n"

	if got := Detect("notes.txt", content); got != FormatText {
		t.Errorf("Detect() = %q, want %q", got, FormatText)
	}
}
