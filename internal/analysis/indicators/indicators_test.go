package indicators

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pythia/internal/domain/marketdata"
)

func bars(ticker string, closes ...float64) []marketdata.PriceBar {
	out := make([]marketdata.PriceBar, len(closes))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		out[i] = marketdata.PriceBar{
			Ticker: ticker,
			Date:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return out
}

func TestSMA_WarmupAndValues(t *testing.T) {
	series := SMA([]float64{1, 2, 3, 4, 5}, 3)
	require.Len(t, series, 5)

	assert.True(t, math.IsNaN(series[0]))
	assert.True(t, math.IsNaN(series[1]))
	assert.InDelta(t, 2.0, series[2], 1e-9)
	assert.InDelta(t, 3.0, series[3], 1e-9)
	assert.InDelta(t, 4.0, series[4], 1e-9)
}

func TestSMA_TooShort(t *testing.T) {
	series := SMA([]float64{1, 2}, 5)
	require.Len(t, series, 2)
	for _, v := range series {
		assert.True(t, math.IsNaN(v))
	}
}

func TestRSI_Warmup(t *testing.T) {
	closes := []float64{100, 101, 102, 103, 104, 105, 106}
	series := RSI(closes, 3)
	require.Len(t, series, len(closes))

	for i := 0; i < 3; i++ {
		assert.True(t, math.IsNaN(series[i]), "index %d should be warmup", i)
	}
	// Monotonic gains drive RSI to 100.
	assert.InDelta(t, 100.0, series[len(series)-1], 1e-9)
}

func TestMACD_Warmup(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	m := MACD(closes, 12, 26, 9)
	require.Len(t, m.MACD, 60)

	warmup := 26 + 9 - 2
	for i := 0; i < warmup; i++ {
		assert.True(t, math.IsNaN(m.MACD[i]))
		assert.True(t, math.IsNaN(m.Signal[i]))
		assert.True(t, math.IsNaN(m.Histogram[i]))
	}
	assert.False(t, math.IsNaN(m.MACD[warmup]))
	assert.InDelta(t, m.Histogram[59], m.MACD[59]-m.Signal[59], 1e-9)
}

func TestBollinger_Bounds(t *testing.T) {
	closes := []float64{10, 11, 9, 12, 8, 13, 10, 11, 9, 12}
	b := Bollinger(closes, 5, 2.0)
	require.Len(t, b.Upper, len(closes))

	for i := 4; i < len(closes); i++ {
		assert.GreaterOrEqual(t, b.Upper[i], b.Middle[i])
		assert.LessOrEqual(t, b.Lower[i], b.Middle[i])
	}
}

func TestVolatility_WarmupIncludesFirstReturn(t *testing.T) {
	closes := []float64{100, 101, 99, 102, 98, 103, 100}
	series := Volatility(closes, 3)
	require.Len(t, series, len(closes))

	// Index 0 has no return, indexes 1..2 are inside the stddev window.
	for i := 0; i <= 2; i++ {
		assert.True(t, math.IsNaN(series[i]), "index %d should be warmup", i)
	}
	assert.False(t, math.IsNaN(series[3]))
	assert.Greater(t, series[3], 0.0)
}

func TestDailyReturns(t *testing.T) {
	rets := DailyReturns(bars("AAPL", 100, 102, 101))
	require.Len(t, rets, 2)

	// No return for the first bar; the remaining two follow the simple
	// return formula.
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), rets[0].Date)
	assert.InDelta(t, 0.02, rets[0].Return, 1e-9)
	assert.InDelta(t, -0.0098, rets[1].Return, 1e-4)
}

func TestDailyReturns_SingleBar(t *testing.T) {
	assert.Nil(t, DailyReturns(bars("AAPL", 100)))
}

func TestSnapshot_ExtendedToggle(t *testing.T) {
	series := bars("AAPL",
		100, 102, 101, 103, 105, 104, 106, 108, 107, 109,
		111, 110, 112, 114, 113, 115, 117, 116, 118, 120,
		119, 121, 123, 122, 124, 126, 125, 127, 129, 128,
		130, 132, 131, 133, 135, 134, 137, 136, 138, 140,
	)

	full := Snapshot(series, SnapshotParams{
		MovingAverageWindow: 5,
		RSIPeriod:           14,
		VolatilityWindow:    20,
		Extended:            true,
	})
	assert.Equal(t, "AAPL", full.Ticker)
	assert.Equal(t, 140.0, full.Close)
	require.NotNil(t, full.MovingAverage)
	require.NotNil(t, full.RSI)
	require.NotNil(t, full.MACD)
	require.NotNil(t, full.BollingerUpper)
	require.NotNil(t, full.Volatility)

	reduced := Snapshot(series, SnapshotParams{
		MovingAverageWindow: 5,
		RSIPeriod:           14,
		VolatilityWindow:    20,
		Extended:            false,
	})
	assert.NotNil(t, reduced.MovingAverage)
	assert.Nil(t, reduced.MACD)
	assert.Nil(t, reduced.BollingerUpper)
	assert.Nil(t, reduced.Volatility)
}

func TestSnapshot_ShortSeriesLeavesNils(t *testing.T) {
	// Three bars never fill the MA(5) or RSI(14) windows, so every
	// windowed field stays nil while the close is still reported.
	snap := Snapshot(bars("AAPL", 100, 101, 102), DefaultSnapshotParams())
	assert.Equal(t, 102.0, snap.Close)
	assert.Nil(t, snap.MovingAverage)
	assert.Nil(t, snap.RSI)
	assert.Nil(t, snap.MACD)
	assert.Nil(t, snap.Volatility)
}
