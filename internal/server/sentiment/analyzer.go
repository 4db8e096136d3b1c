// Package sentiment scores free text for the journal service. The service
// layer only depends on the Analyzer interface; the bundled lexicon
// implementation can be swapped for any other scorer.
package sentiment

import (
	"strings"
	"unicode"
)

// Analyzer produces a raw sentiment score for a piece of text. The score is
// unbounded in either direction; zero is neutral. Callers are expected to
// map the raw score into whatever range they persist.
type Analyzer interface {
	Analyze(text string) float64
}

// LexiconAnalyzer scores text by summing per-word valences from a fixed
// lexicon and normalizing by the number of scored words.
type LexiconAnalyzer struct {
	lexicon map[string]float64
}

// NewLexiconAnalyzer returns an analyzer backed by the built-in lexicon.
func NewLexiconAnalyzer() *LexiconAnalyzer {
	return &LexiconAnalyzer{lexicon: defaultLexicon}
}

// Analyze tokenizes text and returns the mean valence of the words found in
// the lexicon. Text with no scored words yields 0 (neutral).
func (a *LexiconAnalyzer) Analyze(text string) float64 {
	var sum float64
	var n int

	for _, word := range tokenize(text) {
		if valence, ok := a.lexicon[word]; ok {
			sum += valence
			n++
		}
	}

	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}
