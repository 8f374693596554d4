package indicators

import (
	"math"

	"github.com/markcheno/go-talib"
)

// Volatility computes the rolling sample standard deviation of daily
// returns over `window` bars. The first entry carries the undefined
// first return, so the series is NaN through index window.
func Volatility(closes []float64, window int) []float64 {
	out := undefinedSeries(len(closes))
	if window < 2 || len(closes) < window+1 {
		return out
	}

	rets := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			rets = append(rets, math.NaN())
			continue
		}
		rets = append(rets, (closes[i]-closes[i-1])/closes[i-1])
	}

	std := maskWarmup(talib.StdDev(rets, window, 1.0), window-1)
	for i, v := range std {
		out[i+1] = v
	}
	return out
}
