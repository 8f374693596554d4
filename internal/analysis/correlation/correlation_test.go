package correlation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pythia/internal/domain/marketdata"
	"pythia/internal/domain/news"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func sentimentRow(ticker, metric string, d int, value float64) news.DailySentiment {
	return news.DailySentiment{
		Ticker: ticker,
		Date:   day(d),
		Metric: metric,
		Value:  value,
		Count:  1,
	}
}

func returnRow(ticker string, d int, value float64) marketdata.DailyReturn {
	return marketdata.DailyReturn{Ticker: ticker, Date: day(d), Return: value}
}

func TestPearson(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []float64
		want   float64
		ok     bool
	}{
		{"perfect positive", []float64{1, 2, 3}, []float64{10, 20, 30}, 1, true},
		{"perfect negative", []float64{1, 2, 3}, []float64{30, 20, 10}, -1, true},
		{"uncorrelated-ish", []float64{1, 2, 3, 4}, []float64{2, 1, 4, 3}, 0.6, true},
		{"single pair", []float64{1}, []float64{2}, 0, false},
		{"empty", nil, nil, 0, false},
		{"zero variance x", []float64{3, 3, 3}, []float64{1, 2, 3}, 0, false},
		{"zero variance y", []float64{1, 2, 3}, []float64{5, 5, 5}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := Pearson(tt.xs, tt.ys)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, r, 1e-9)
				assert.GreaterOrEqual(t, r, -1.0)
				assert.LessOrEqual(t, r, 1.0)
			}
		})
	}
}

func TestEngine_ShiftPairsSentimentWithLaterReturn(t *testing.T) {
	// Prices 100 -> 102 -> 101 give returns on days 2 and 3. With a
	// one-day lead, sentiment on day 1 pairs with the day-2 return and
	// sentiment on day 2 with the day-3 return.
	daily := []news.DailySentiment{
		sentimentRow("TEST", "pattern", 1, 0.4),
		sentimentRow("TEST", "pattern", 2, -0.2),
	}
	returns := map[string][]marketdata.DailyReturn{
		"TEST": {
			returnRow("TEST", 2, 0.02),
			returnRow("TEST", 3, -0.0098),
		},
	}

	results := NewEngine(1, 1).Compute(daily, returns)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "TEST", r.Ticker)
	assert.Equal(t, "pattern", r.Metric)
	assert.Equal(t, 1, r.ShiftDays)
	assert.Equal(t, 2, r.SampleSize)
	require.NotNil(t, r.Coefficient)
	// Higher sentiment preceded the higher return: two points align
	// perfectly.
	assert.InDelta(t, 1.0, *r.Coefficient, 1e-9)
	assert.Empty(t, r.Reason)
}

func TestEngine_SameDayAlignment(t *testing.T) {
	daily := []news.DailySentiment{
		sentimentRow("TEST", "pattern", 2, 0.4),
		sentimentRow("TEST", "pattern", 3, -0.2),
	}
	returns := map[string][]marketdata.DailyReturn{
		"TEST": {
			returnRow("TEST", 2, 0.01),
			returnRow("TEST", 3, -0.02),
		},
	}

	results := NewEngine(0, 1).Compute(daily, returns)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Coefficient)
	assert.Equal(t, 2, results[0].SampleSize)
}

func TestEngine_InsufficientSample(t *testing.T) {
	daily := []news.DailySentiment{
		sentimentRow("TEST", "pattern", 1, 0.4),
	}
	returns := map[string][]marketdata.DailyReturn{
		"TEST": {returnRow("TEST", 2, 0.02)},
	}

	results := NewEngine(1, 1).Compute(daily, returns)
	require.Len(t, results, 1)

	r := results[0]
	assert.Nil(t, r.Coefficient)
	assert.Equal(t, 1, r.SampleSize)
	assert.Equal(t, news.ReasonInsufficientSample, r.Reason)
}

func TestEngine_ZeroVarianceSentiment(t *testing.T) {
	// Constant sentiment against varying returns: undefined, with a
	// reason distinct from the small-sample case.
	daily := []news.DailySentiment{
		sentimentRow("TEST", "pattern", 2, 0.3),
		sentimentRow("TEST", "pattern", 3, 0.3),
		sentimentRow("TEST", "pattern", 4, 0.3),
	}
	returns := map[string][]marketdata.DailyReturn{
		"TEST": {
			returnRow("TEST", 2, 0.01),
			returnRow("TEST", 3, -0.02),
			returnRow("TEST", 4, 0.005),
		},
	}

	results := NewEngine(0, 1).Compute(daily, returns)
	require.Len(t, results, 1)

	r := results[0]
	assert.Nil(t, r.Coefficient)
	assert.Equal(t, 3, r.SampleSize)
	assert.Equal(t, news.ReasonZeroVariance, r.Reason)
}

func TestEngine_NewsOnlyTickerYieldsNoRows(t *testing.T) {
	daily := []news.DailySentiment{
		sentimentRow("GHOST", "pattern", 1, 0.5),
		sentimentRow("GHOST", "pattern", 2, -0.5),
	}
	returns := map[string][]marketdata.DailyReturn{
		"AAPL": {returnRow("AAPL", 2, 0.02)},
	}

	results := NewEngine(0, 1).Compute(daily, returns)
	assert.Empty(t, results)
}

func TestEngine_StableOrdering(t *testing.T) {
	daily := []news.DailySentiment{
		sentimentRow("MSFT", "valence", 2, 0.1),
		sentimentRow("MSFT", "pattern", 2, 0.1),
		sentimentRow("AAPL", "valence", 2, 0.2),
		sentimentRow("AAPL", "pattern", 2, 0.2),
	}
	returns := map[string][]marketdata.DailyReturn{
		"AAPL": {returnRow("AAPL", 2, 0.01)},
		"MSFT": {returnRow("MSFT", 2, 0.01)},
	}

	// Several workers, still deterministic output order.
	results := NewEngine(0, 4).Compute(daily, returns)
	require.Len(t, results, 4)
	assert.Equal(t, "AAPL", results[0].Ticker)
	assert.Equal(t, "pattern", results[0].Metric)
	assert.Equal(t, "AAPL", results[1].Ticker)
	assert.Equal(t, "valence", results[1].Metric)
	assert.Equal(t, "MSFT", results[2].Ticker)
	assert.Equal(t, "pattern", results[2].Metric)
	assert.Equal(t, "MSFT", results[3].Ticker)
	assert.Equal(t, "valence", results[3].Metric)
}
