package indicators

import (
	"github.com/markcheno/go-talib"
)

// EMA computes the exponential moving average over closes, NaN during
// the first period-1 entries.
func EMA(closes []float64, period int) []float64 {
	if period < 1 || len(closes) < period {
		return undefinedSeries(len(closes))
	}
	return maskWarmup(talib.Ema(closes, period), period-1)
}
