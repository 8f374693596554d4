package analysis

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pythia/internal/adapters/config"
	"pythia/internal/analysis/sentiment"
	"pythia/internal/domain/marketdata"
	"pythia/internal/domain/news"
	"pythia/pkg/errors"
)

// wordScorer assigns polarity by keyword so pipeline-level outcomes are
// predictable.
type wordScorer struct{}

func (wordScorer) Metric() string { return "word" }

func (wordScorer) Score(text string) (float64, float64) {
	switch {
	case strings.Contains(text, "surge"):
		return 0.8, 0.5
	case strings.Contains(text, "slump"):
		return -0.8, 0.5
	}
	return 0, 0
}

func testConfig() *config.Config {
	return &config.Config{
		Analysis: config.AnalysisConfig{
			SentimentShiftDays:  0,
			MovingAverageWindow: 3,
			RSIPeriod:           3,
			VolatilityWindow:    3,
			Topics:              2,
			TopicWords:          5,
			TFIDFTopK:           10,
			PublisherMixWindow:  2,
			CorrelationWorkers:  2,
		},
	}
}

func testInputs() Inputs {
	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	closes := []float64{100, 104, 102, 107, 105, 111}

	bars := make([]marketdata.PriceBar, 0, len(closes))
	headlines := make([]news.Headline, 0, len(closes))
	for i, c := range closes {
		day := base.AddDate(0, 0, i)
		bars = append(bars, marketdata.PriceBar{
			Ticker: "AAPL",
			Date:   day,
			Open:   c - 1,
			High:   c + 1,
			Low:    c - 2,
			Close:  c,
			Volume: 1000,
		})

		text := "apple shares slump on weak outlook"
		if i > 0 && closes[i] > closes[i-1] {
			text = "apple shares surge on strong outlook"
		}
		headlines = append(headlines, news.Headline{
			ID:        uuid.New(),
			Ticker:    "AAPL",
			Timestamp: day.Add(14 * time.Hour),
			Publisher: "reuters",
			Text:      text,
			URL:       "https://reuters.com/a",
		})
	}

	return Inputs{
		Prices:    map[string][]marketdata.PriceBar{"AAPL": bars},
		Headlines: headlines,
	}
}

func TestPipeline_Run(t *testing.T) {
	p := NewPipeline(testConfig()).WithScorers([]sentiment.Scorer{wordScorer{}})

	rep, err := p.Run(context.Background(), testInputs())
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Run.PriceTickers)
	assert.Equal(t, 6, rep.Run.Headlines)
	assert.Empty(t, rep.Run.TickerErrors)

	require.Len(t, rep.Indicators, 1)
	snap := rep.Indicators[0]
	assert.Equal(t, "AAPL", snap.Ticker)
	assert.Equal(t, 6, snap.Bars)
	assert.Equal(t, 111.0, snap.Close)
	require.NotNil(t, snap.MovingAverage)
	require.NotNil(t, snap.Volatility)

	// Sentiment tracks the sign of the same-day return exactly, so the
	// correlation is defined and strongly positive.
	require.Len(t, rep.Correlations, 1)
	corr := rep.Correlations[0]
	assert.Equal(t, "AAPL", corr.Ticker)
	assert.Equal(t, "word", corr.Metric)
	require.NotNil(t, corr.Coefficient)
	assert.Greater(t, *corr.Coefficient, 0.5)
	assert.Empty(t, corr.Reason)

	assert.NotEmpty(t, rep.Publishers)
	assert.NotEmpty(t, rep.DailyArticles)
	assert.NotEmpty(t, rep.PublisherMix)
	assert.NotEmpty(t, rep.TFIDFTerms)
	assert.Len(t, rep.Topics, 2)
}

func TestPipeline_Deterministic(t *testing.T) {
	p := NewPipeline(testConfig()).WithScorers([]sentiment.Scorer{wordScorer{}})
	in := testInputs()

	first, err := p.Run(context.Background(), in)
	require.NoError(t, err)
	second, err := p.Run(context.Background(), in)
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, first.Encode(&a))
	require.NoError(t, second.Encode(&b))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestPipeline_NoTickers(t *testing.T) {
	p := NewPipeline(testConfig())

	_, err := p.Run(context.Background(), Inputs{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoTickers)
}

func TestPipeline_CancelledContext(t *testing.T) {
	p := NewPipeline(testConfig()).WithScorers([]sentiment.Scorer{wordScorer{}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Run(ctx, testInputs())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPipeline_SkipFlags(t *testing.T) {
	cfg := testConfig()
	cfg.Analysis.SkipTFIDF = true
	cfg.Analysis.SkipTopics = true
	p := NewPipeline(cfg).WithScorers([]sentiment.Scorer{wordScorer{}})

	rep, err := p.Run(context.Background(), testInputs())
	require.NoError(t, err)
	assert.Nil(t, rep.TFIDFTerms)
	assert.Nil(t, rep.Topics)
}

func TestPipeline_DisabledExtendedIndicators(t *testing.T) {
	cfg := testConfig()
	cfg.Analysis.DisableExtendedIndicators = true
	p := NewPipeline(cfg).WithScorers([]sentiment.Scorer{wordScorer{}})

	rep, err := p.Run(context.Background(), testInputs())
	require.NoError(t, err)

	require.Len(t, rep.Indicators, 1)
	snap := rep.Indicators[0]
	assert.Nil(t, snap.MACD)
	assert.Nil(t, snap.MACDSignal)
	assert.Nil(t, snap.BollingerUpper)
	assert.Nil(t, snap.Volatility)
	require.NotNil(t, snap.MovingAverage)
}
