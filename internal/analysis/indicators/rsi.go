package indicators

import (
	"github.com/markcheno/go-talib"
)

// RSI computes the Relative Strength Index over closes. A 14-day RSI
// leaves its first 14 entries NaN (the first delta consumes one bar on
// top of the averaging window).
func RSI(closes []float64, period int) []float64 {
	if period < 1 || len(closes) < period+1 {
		return undefinedSeries(len(closes))
	}
	return maskWarmup(talib.Rsi(closes, period), period)
}
