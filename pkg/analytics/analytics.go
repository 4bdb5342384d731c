// Package analytics computes keyword frequencies over source material.
// Sources are Dutch, English, or a mix of both, so both stopword sets are
// filtered.
package analytics

import (
	"sort"
	"strings"
)

type Analytics struct{}

// stopwords are filtered before counting. English core set plus the Dutch
// function words that dominate business texts.
var stopwords = map[string]struct{}{
	// English
	"a": {}, "about": {}, "after": {}, "again": {}, "against": {}, "all": {},
	"also": {}, "although": {}, "always": {}, "am": {}, "an": {}, "and": {},
	"another": {}, "any": {}, "are": {}, "as": {}, "at": {},

	"back": {}, "be": {}, "became": {}, "because": {}, "become": {},
	"been": {}, "before": {}, "being": {}, "below": {}, "between": {},
	"both": {}, "but": {}, "by": {},

	"can": {}, "cannot": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "doing": {}, "done": {}, "down": {},
	"during": {},

	"each": {}, "either": {}, "else": {}, "enough": {}, "even": {},
	"ever": {}, "every": {}, "everything": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "herself": {}, "him": {}, "himself": {},
	"his": {}, "how": {}, "however": {},

	"i": {}, "if": {}, "in": {}, "indeed": {}, "into": {}, "is": {},
	"it": {}, "its": {}, "itself": {},

	"just": {},

	"less": {}, "like": {}, "likely": {},

	"made": {}, "make": {}, "many": {}, "may": {}, "maybe": {}, "me": {},
	"might": {}, "more": {}, "most": {}, "much": {}, "must": {}, "my": {},
	"myself": {},

	"neither": {}, "never": {}, "no": {}, "nor": {}, "not": {},
	"nothing": {}, "now": {},

	"of": {}, "off": {}, "often": {}, "on": {}, "once": {}, "one": {},
	"only": {}, "onto": {}, "or": {}, "other": {}, "others": {},
	"our": {}, "ours": {}, "ourselves": {}, "out": {}, "over": {},
	"own": {},

	"per": {}, "perhaps": {},

	"rather": {}, "same": {}, "she": {}, "should": {}, "since": {},
	"so": {}, "some": {}, "something": {}, "sometimes": {}, "still": {},
	"such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {},
	"them": {}, "themselves": {}, "then": {}, "there": {}, "therefore": {},
	"these": {}, "they": {}, "this": {}, "those": {}, "through": {},
	"thus": {}, "to": {}, "too": {}, "toward": {}, "towards": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "use": {},

	"very": {}, "via": {},

	"was": {}, "we": {}, "well": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "whether": {}, "which": {}, "while": {}, "who": {},
	"whose": {}, "why": {}, "will": {}, "with": {}, "within": {},
	"without": {}, "would": {},

	"yet": {}, "you": {}, "your": {}, "yours": {}, "yourself": {},

	// Dutch
	"aan": {}, "af": {}, "al": {}, "alle": {}, "alleen": {}, "alles": {},
	"als": {}, "altijd": {}, "ander": {}, "andere": {},

	"bij": {}, "binnen": {}, "boven": {},

	"daar": {}, "dan": {}, "dat": {}, "de": {}, "deze": {}, "die": {},
	"dit": {}, "doch": {}, "doen": {}, "door": {}, "dus": {},

	"een": {}, "eens": {}, "en": {}, "er": {},

	"gaan": {}, "geen": {}, "geweest": {},

	"haar": {}, "heb": {}, "hebben": {}, "heeft": {}, "hem": {},
	"het": {}, "hier": {}, "hij": {}, "hoe": {}, "hun": {},

	"iemand": {}, "iets": {}, "ik": {},

	"ja": {}, "je": {}, "jij": {}, "jou": {}, "jullie": {},

	"kan": {}, "kon": {}, "kunnen": {},

	"maar": {}, "met": {}, "mij": {}, "mijn": {}, "moet": {}, "moeten": {},

	"na": {}, "naar": {}, "nee": {}, "niet": {}, "niets": {}, "nog": {},
	"nu": {},

	"om": {}, "omdat": {}, "onder": {}, "ons": {}, "onze": {}, "ook": {},
	"op": {},

	"reeds": {},

	"te": {}, "tegen": {}, "toch": {}, "toen": {}, "tot": {}, "tussen": {},

	"uit": {}, "uw": {},

	"van": {}, "veel": {}, "voor": {},

	"waar": {}, "want": {}, "waren": {}, "wat": {}, "wel": {}, "werd": {},
	"wezen": {}, "wie": {}, "wij": {}, "wil": {}, "worden": {}, "wordt": {},

	"zal": {}, "ze": {}, "zei": {}, "zelf": {}, "zich": {}, "zij": {},
	"zijn": {}, "zo": {}, "zonder": {}, "zou": {}, "zouden": {},
}

// IsStopword checks if a word is a common stopword that should be filtered out.
func IsStopword(word string) bool {
	_, exists := stopwords[strings.ToLower(word)]
	return exists
}

// WordFrequency counts non-stopword occurrences in the text.
func (a *Analytics) WordFrequency(text string) map[string]int {
	words := strings.Fields(strings.ToLower(text)) // strings.Fields handles multiple spaces and newlines
	frequencies := make(map[string]int)

	for _, word := range words {
		// Remove punctuation from words
		word = strings.TrimFunc(word, func(r rune) bool {
			// Keep only lowercase letters and numbers
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})

		// Skip if it's a stopword or empty after cleaning
		if _, exists := stopwords[word]; exists || word == "" {
			continue
		}

		frequencies[word]++
	}

	return frequencies
}

type wordCount struct {
	Word  string
	Count int
}

// TopNWords returns the N most frequent non-stopwords, highest count first.
func (a *Analytics) TopNWords(text string, n int) []string {
	frequencies := a.WordFrequency(text)

	counts := make([]wordCount, 0, len(frequencies))
	for k, v := range frequencies {
		counts = append(counts, wordCount{k, v})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Word < counts[j].Word
	})

	limit := n
	if len(counts) < n {
		limit = len(counts)
	}

	topN := make([]string, limit)
	for i := 0; i < limit; i++ {
		topN[i] = counts[i].Word
	}

	return topN
}
