package sentiment

import "math"

// ValenceScorer is a rule-based scorer in the VADER style: each lexicon
// word carries a valence, boosters ("very", "extremely") amplify the
// following word, negations within a three-token window flip it, and the
// summed valence is squashed into [-1, 1] with the standard
// x/sqrt(x^2+alpha) normalization. It reports polarity only; headlines
// are too short for a meaningful intensity-based subjectivity estimate,
// so subjectivity is always 0.
type ValenceScorer struct {
	lexicon map[string]float64
}

const valenceAlpha = 15.0

// NewValenceScorer creates the valence-rule scorer.
func NewValenceScorer() *ValenceScorer {
	return &ValenceScorer{lexicon: valenceLexicon}
}

// Metric implements Scorer.
func (s *ValenceScorer) Metric() string { return "valence" }

// Score implements Scorer.
func (s *ValenceScorer) Score(text string) (float64, float64) {
	tokens := tokenize(text)

	var sum float64
	for i, token := range tokens {
		valence, ok := s.lexicon[token]
		if !ok {
			continue
		}
		valence *= boosterFactor(tokens, i)
		if negatedWithin(tokens, i, 3) {
			valence = -0.74 * valence
		}
		sum += valence
	}
	if sum == 0 {
		return 0, 0
	}
	return sum / math.Sqrt(sum*sum+valenceAlpha), 0
}

// boosterFactor scales a word's valence by the boosters immediately
// before it.
func boosterFactor(tokens []string, i int) float64 {
	factor := 1.0
	for j := i - 2; j < i; j++ {
		if j < 0 {
			continue
		}
		if inc, ok := boosters[tokens[j]]; ok {
			factor += inc
		}
	}
	return factor
}

func negatedWithin(tokens []string, i, window int) bool {
	for j := i - window; j < i; j++ {
		if j >= 0 && negations[tokens[j]] {
			return true
		}
	}
	return false
}

var boosters = map[string]float64{
	"very":       0.293,
	"extremely":  0.293,
	"hugely":     0.293,
	"incredibly": 0.293,
	"really":     0.267,
	"highly":     0.267,
	"sharply":    0.267,
	"strongly":   0.267,
	"slightly":   -0.293,
	"somewhat":   -0.267,
	"marginally": -0.293,
	"barely":     -0.293,
}

// valenceLexicon maps words to raw valence on the VADER [-4, 4] scale.
var valenceLexicon = map[string]float64{
	// positive
	"good": 1.9, "great": 3.1, "excellent": 2.7, "strong": 2.3,
	"positive": 2.3, "gain": 2.4, "gains": 2.4, "growth": 2.4,
	"profit": 2.3, "profits": 2.3, "record": 1.5, "beat": 1.6,
	"beats": 1.6, "surge": 2.3, "surges": 2.3, "soar": 2.6,
	"soars": 2.6, "rally": 2.0, "rallies": 2.0, "jump": 1.5,
	"jumps": 1.5, "rise": 1.4, "rises": 1.4, "upgrade": 2.0,
	"upgrades": 2.0, "upgraded": 2.0, "bullish": 2.6, "buy": 1.3,
	"success": 2.7, "successful": 2.7, "win": 2.8, "wins": 2.8,
	"boost": 1.9, "boosts": 1.9, "improve": 1.9, "improves": 1.9,
	"improved": 1.9, "recovery": 1.8, "optimistic": 2.4, "upbeat": 2.2,
	"best": 3.2, "breakthrough": 2.4, "opportunity": 1.8,
	"outperform": 2.1, "outperforms": 2.1, "higher": 1.2,

	// negative
	"bad": -2.5, "terrible": -3.0, "awful": -3.0, "weak": -1.9,
	"negative": -2.3, "loss": -2.4, "losses": -2.4, "lose": -2.4,
	"loses": -2.4, "miss": -1.6, "misses": -1.6, "missed": -1.6,
	"fall": -1.5, "falls": -1.5, "fell": -1.5, "drop": -1.6,
	"drops": -1.6, "plunge": -2.6, "plunges": -2.6, "crash": -2.9,
	"crashes": -2.9, "tumble": -2.2, "tumbles": -2.2, "slump": -2.2,
	"slumps": -2.2, "decline": -1.6, "declines": -1.6, "downgrade": -2.0,
	"downgrades": -2.0, "downgraded": -2.0, "bearish": -2.6, "sell": -1.3,
	"selloff": -2.2, "fail": -2.3, "fails": -2.3, "failed": -2.3,
	"failure": -2.5, "risk": -1.1, "risks": -1.1, "fear": -2.2,
	"fears": -2.2, "worry": -1.9, "worries": -1.9, "concern": -1.4,
	"concerns": -1.4, "warning": -1.9, "warns": -1.9, "layoff": -2.3,
	"layoffs": -2.3, "lawsuit": -1.9, "fraud": -3.2, "scandal": -2.7,
	"bankruptcy": -3.0, "recession": -2.5, "crisis": -2.7, "worst": -3.1,
	"weakness": -1.9, "uncertainty": -1.4, "pessimistic": -2.4,
	"disappointing": -2.2, "disappoints": -2.2, "underperform": -2.1,
	"underperforms": -2.1, "lower": -1.2,
}
