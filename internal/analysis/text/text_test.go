package text

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var corpus = []string{
	"Apple earnings beat expectations as iPhone sales surge",
	"Apple supplier warns of weak iPhone demand",
	"Microsoft cloud revenue grows on strong Azure demand",
	"Federal Reserve holds interest rates steady",
	"Interest rates weigh on tech stocks as demand cools",
}

func TestTFIDF_RanksDomainTerms(t *testing.T) {
	terms := TFIDF(corpus, 10)
	require.NotEmpty(t, terms)
	assert.LessOrEqual(t, len(terms), 10)

	byTerm := map[string]float64{}
	for _, term := range terms {
		assert.Greater(t, term.Score, 0.0)
		byTerm[term.Term] = term.Score
	}

	// Stopwords never rank.
	assert.NotContains(t, byTerm, "as")
	assert.NotContains(t, byTerm, "of")

	// Scores are sorted descending.
	for i := 1; i < len(terms); i++ {
		assert.GreaterOrEqual(t, terms[i-1].Score, terms[i].Score)
	}
}

func TestTFIDF_IncludesBigrams(t *testing.T) {
	terms := TFIDF([]string{
		"interest rates rise",
		"interest rates fall",
		"interest rates hold",
	}, 50)

	found := false
	for _, term := range terms {
		if term.Term == "interest rates" {
			found = true
		}
	}
	assert.True(t, found, "expected the repeated bigram to rank")
}

func TestTFIDF_Deterministic(t *testing.T) {
	first := TFIDF(corpus, 10)
	second := TFIDF(corpus, 10)
	assert.True(t, reflect.DeepEqual(first, second))
}

func TestTFIDF_EmptyInputs(t *testing.T) {
	assert.Nil(t, TFIDF(nil, 10))
	assert.Nil(t, TFIDF(corpus, 0))
}

func TestTopics_ShapeAndDeterminism(t *testing.T) {
	topics := Topics(corpus, 2, 5)
	require.Len(t, topics, 2)
	for _, topic := range topics {
		assert.LessOrEqual(t, len(topic), 5)
	}

	// Fixed seed: repeated runs emit identical topics.
	again := Topics(corpus, 2, 5)
	assert.True(t, reflect.DeepEqual(topics, again))
}

func TestTopics_DegradesOnTinyCorpus(t *testing.T) {
	topics := Topics([]string{"apple rises"}, 5, 10)
	require.NotNil(t, topics)
	// Only two distinct terms exist, so the topic count is capped.
	assert.LessOrEqual(t, len(topics), 2)
}

func TestTopics_EmptyInputs(t *testing.T) {
	assert.Nil(t, Topics(nil, 3, 5))
	assert.Nil(t, Topics([]string{"the a an"}, 3, 5))
}
