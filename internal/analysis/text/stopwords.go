package text

import (
	"strings"
	"unicode"
)

// stopwords is the english stopword list applied before TF-IDF and topic
// modeling.
var stopwords = map[string]bool{}

func init() {
	for _, w := range strings.Fields(`
		a about above after again against all am an and any are as at be
		because been before being below between both but by can did do
		does doing down during each few for from further had has have
		having he her here hers herself him himself his how i if in into
		is it its itself just me more most my myself no nor not now of
		off on once only or other our ours ourselves out over own same
		she should so some such than that the their theirs them
		themselves then there these they this those through to too under
		until up very was we were what when where which while who whom
		why will with you your yours yourself yourselves says said say
		new s t don will
	`) {
		stopwords[w] = true
	}
}

// tokens lowercases text, splits it on non-letters and drops stopwords
// and single-character tokens.
func tokens(text string) []string {
	raw := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if len(t) < 2 || stopwords[t] {
			continue
		}
		out = append(out, t)
	}
	return out
}
