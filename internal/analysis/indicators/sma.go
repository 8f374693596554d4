package indicators

import (
	"math"

	"github.com/markcheno/go-talib"
)

// SMA computes the simple moving average over closes. The output is
// aligned 1:1 with the input; the first period-1 entries are NaN.
func SMA(closes []float64, period int) []float64 {
	if period < 1 || len(closes) == 0 {
		return undefinedSeries(len(closes))
	}
	if len(closes) < period {
		return undefinedSeries(len(closes))
	}
	return maskWarmup(talib.Sma(closes, period), period-1)
}

func undefinedSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
