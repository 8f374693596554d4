package sentiment

import (
	"strings"
	"unicode"
)

// Scorer scores a piece of text on a [-1, 1] polarity scale. Metric names
// the scoring method and keys the per-day aggregates, so two scorers must
// never share a metric name. Implementations are pure and safe for
// concurrent use.
type Scorer interface {
	Metric() string
	Score(text string) (polarity, subjectivity float64)
}

// DefaultScorers returns the built-in scoring methods.
func DefaultScorers() []Scorer {
	return []Scorer{
		NewPatternScorer(),
		NewValenceScorer(),
	}
}

// tokenize lowercases text and splits it into letter-only tokens.
// Apostrophes are kept so contractions ("isn't") survive as one token.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

// negations invert the polarity of nearby sentiment words.
var negations = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"isn't": true, "aren't": true, "wasn't": true, "weren't": true,
	"don't": true, "doesn't": true, "didn't": true, "won't": true,
	"wouldn't": true, "can't": true, "cannot": true, "couldn't": true,
	"shouldn't": true, "hasn't": true, "haven't": true, "without": true,
}
