package parsers

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// Language hints carried on ParsedText.
const (
	LangDutch   = "nl"
	LangEnglish = "en"
	LangUnknown = "unknown"
)

// A heuristic verdict needs this margin of indicator words to win outright.
const indicatorMargin = 3

// linguaConfidenceFloor gates the statistical fallback; below it the hint
// stays unknown.
const linguaConfidenceFloor = 0.9

var linguaOnce sync.Once
var linguaDetector lingua.LanguageDetector

// detectLanguage counts Dutch and English indicator words. When neither
// list wins by a clear margin it falls back to a lingua-go detector
// restricted to the two supported languages; a heuristic verdict is never
// overridden.
func detectLanguage(text string) string {
	wordSet := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		wordSet[w] = true
	}

	var dutchScore, englishScore int
	for _, w := range dutchIndicators {
		if wordSet[w] {
			dutchScore++
		}
	}
	for _, w := range englishIndicators {
		if wordSet[w] {
			englishScore++
		}
	}

	if dutchScore > englishScore+indicatorMargin {
		return LangDutch
	}
	if englishScore > dutchScore+indicatorMargin {
		return LangEnglish
	}

	return linguaFallback(text)
}

func linguaFallback(text string) string {
	if strings.TrimSpace(text) == "" {
		return LangUnknown
	}

	linguaOnce.Do(func() {
		linguaDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.Dutch, lingua.English).
			Build()
	})

	language, ok := linguaDetector.DetectLanguageOf(text)
	if !ok {
		return LangUnknown
	}
	if linguaDetector.ComputeLanguageConfidence(text, language) < linguaConfidenceFloor {
		return LangUnknown
	}

	switch language {
	case lingua.Dutch:
		return LangDutch
	case lingua.English:
		return LangEnglish
	default:
		return LangUnknown
	}
}
