package indicators

import (
	"math"

	"pythia/internal/domain/marketdata"
)

// Closes extracts close prices in chronological order.
func Closes(bars []marketdata.PriceBar) []float64 {
	closes := make([]float64, len(bars))
	for i, bar := range bars {
		closes[i] = bar.Close
	}
	return closes
}

// maskWarmup replaces the first `warmup` entries with NaN. ta-lib fills
// its lookback window with zeros, which are indistinguishable from real
// values; the series contract here is that entries before the window is
// filled are explicitly undefined.
func maskWarmup(values []float64, warmup int) []float64 {
	if warmup > len(values) {
		warmup = len(values)
	}
	for i := 0; i < warmup; i++ {
		values[i] = math.NaN()
	}
	return values
}

// LastDefined returns a pointer to the most recent non-NaN value, or nil
// when the series never left its warmup window.
func LastDefined(values []float64) *float64 {
	for i := len(values) - 1; i >= 0; i-- {
		if !math.IsNaN(values[i]) {
			v := values[i]
			return &v
		}
	}
	return nil
}
