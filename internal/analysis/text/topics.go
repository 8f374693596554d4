package text

import (
	"math/rand"
	"sort"
)

// topicSeed fixes the Gibbs sampler's RNG so repeated runs over the same
// corpus emit identical topics.
const topicSeed = 42

const (
	ldaIterations = 100
	ldaAlpha      = 0.1
	ldaBeta       = 0.01
)

// Topics fits an LDA topic model over the texts with collapsed Gibbs
// sampling and returns nTopics lists of the nWords highest-probability
// terms each. Short corpora degrade gracefully: with fewer distinct
// terms than requested words, topics simply come back shorter.
func Topics(texts []string, nTopics, nWords int) [][]string {
	if len(texts) == 0 || nTopics <= 0 || nWords <= 0 {
		return nil
	}

	vocab := make(map[string]int)
	var words []string
	docs := make([][]int, 0, len(texts))
	for _, t := range texts {
		var doc []int
		for _, tok := range tokens(t) {
			id, ok := vocab[tok]
			if !ok {
				id = len(words)
				vocab[tok] = id
				words = append(words, tok)
			}
			doc = append(doc, id)
		}
		if len(doc) > 0 {
			docs = append(docs, doc)
		}
	}
	if len(docs) == 0 || len(words) == 0 {
		return nil
	}
	if nTopics > len(words) {
		nTopics = len(words)
	}

	rng := rand.New(rand.NewSource(topicSeed))

	// Count matrices for the collapsed sampler.
	docTopic := make([][]int, len(docs))
	topicWord := make([][]int, nTopics)
	topicTotal := make([]int, nTopics)
	for k := range topicWord {
		topicWord[k] = make([]int, len(words))
	}
	assign := make([][]int, len(docs))

	for d, doc := range docs {
		docTopic[d] = make([]int, nTopics)
		assign[d] = make([]int, len(doc))
		for i, w := range doc {
			k := rng.Intn(nTopics)
			assign[d][i] = k
			docTopic[d][k]++
			topicWord[k][w]++
			topicTotal[k]++
		}
	}

	probs := make([]float64, nTopics)
	vSize := float64(len(words))
	for iter := 0; iter < ldaIterations; iter++ {
		for d, doc := range docs {
			for i, w := range doc {
				k := assign[d][i]
				docTopic[d][k]--
				topicWord[k][w]--
				topicTotal[k]--

				var total float64
				for t := 0; t < nTopics; t++ {
					p := (float64(docTopic[d][t]) + ldaAlpha) *
						(float64(topicWord[t][w]) + ldaBeta) /
						(float64(topicTotal[t]) + ldaBeta*vSize)
					probs[t] = p
					total += p
				}

				u := rng.Float64() * total
				next := 0
				for t := 0; t < nTopics; t++ {
					u -= probs[t]
					if u <= 0 {
						next = t
						break
					}
				}

				assign[d][i] = next
				docTopic[d][next]++
				topicWord[next][w]++
				topicTotal[next]++
			}
		}
	}

	out := make([][]string, nTopics)
	for k := 0; k < nTopics; k++ {
		type wc struct {
			word  string
			count int
		}
		ranked := make([]wc, 0, len(words))
		for w, count := range topicWord[k] {
			if count > 0 {
				ranked = append(ranked, wc{word: words[w], count: count})
			}
		}
		sort.Slice(ranked, func(i, j int) bool {
			if ranked[i].count != ranked[j].count {
				return ranked[i].count > ranked[j].count
			}
			return ranked[i].word < ranked[j].word
		})
		limit := nWords
		if limit > len(ranked) {
			limit = len(ranked)
		}
		topic := make([]string, 0, limit)
		for _, r := range ranked[:limit] {
			topic = append(topic, r.word)
		}
		out[k] = topic
	}
	return out
}
