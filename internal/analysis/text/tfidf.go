package text

import (
	"math"
	"sort"
	"strings"
)

// Term is one TF-IDF ranked term.
type Term struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// TFIDF ranks unigrams and bigrams across the corpus by summed TF-IDF
// weight and returns the top k. IDF is smoothed (ln((1+n)/(1+df)) + 1)
// so terms present in every document keep a non-zero weight. Ties break
// lexicographically, keeping the ranking deterministic.
func TFIDF(texts []string, topK int) []Term {
	if len(texts) == 0 || topK <= 0 {
		return nil
	}

	docs := make([][]string, 0, len(texts))
	for _, t := range texts {
		docs = append(docs, ngrams(tokens(t)))
	}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, term := range doc {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	n := float64(len(docs))
	scores := make(map[string]float64)
	for _, doc := range docs {
		if len(doc) == 0 {
			continue
		}
		tf := make(map[string]int, len(doc))
		for _, term := range doc {
			tf[term]++
		}
		for term, count := range tf {
			idf := math.Log((1+n)/(1+float64(df[term]))) + 1
			scores[term] += float64(count) / float64(len(doc)) * idf
		}
	}

	ranked := make([]Term, 0, len(scores))
	for term, score := range scores {
		ranked = append(ranked, Term{Term: term, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Term < ranked[j].Term
	})
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}

// ngrams returns the unigrams plus space-joined bigrams of a token list.
func ngrams(toks []string) []string {
	out := make([]string, 0, len(toks)*2)
	out = append(out, toks...)
	for i := 0; i+1 < len(toks); i++ {
		out = append(out, strings.Join(toks[i:i+2], " "))
	}
	return out
}
