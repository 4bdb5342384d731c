package parsers

import "testing"

func TestDetectLanguageDutch(t *testing.T) {
	text := "de man en het kind zijn op weg met een hond voor dat huis"
	if got := detectLanguage(text); got != LangDutch {
		t.Errorf("detectLanguage() = %q, want %q", got, LangDutch)
	}
}

func TestDetectLanguageEnglish(t *testing.T) {
	text := "the quick result is that we should also be ready for it and not wait"
	if got := detectLanguage(text); got != LangEnglish {
		t.Errorf("detectLanguage() = %q, want %q", got, LangEnglish)
	}
}

func TestDetectLanguageEmptyUnknown(t *testing.T) {
	if got := detectLanguage("   "); got != LangUnknown {
		t.Errorf("detectLanguage() = %q, want %q", got, LangUnknown)
	}
}
