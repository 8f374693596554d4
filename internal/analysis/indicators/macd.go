package indicators

import (
	"github.com/markcheno/go-talib"
)

// MACDSeries holds the three MACD output lines, each aligned 1:1 with
// the input closes.
type MACDSeries struct {
	MACD      []float64
	Signal    []float64
	Histogram []float64
}

// MACD computes Moving Average Convergence Divergence (12,26,9 by
// convention). All three lines share the longest lookback: slow-1 bars
// for the MACD line plus signal-1 bars for its smoothing.
func MACD(closes []float64, fast, slow, signal int) MACDSeries {
	warmup := slow + signal - 2
	if fast < 1 || slow <= fast || signal < 1 || len(closes) <= warmup {
		return MACDSeries{
			MACD:      undefinedSeries(len(closes)),
			Signal:    undefinedSeries(len(closes)),
			Histogram: undefinedSeries(len(closes)),
		}
	}
	macd, sig, hist := talib.Macd(closes, fast, slow, signal)
	return MACDSeries{
		MACD:      maskWarmup(macd, warmup),
		Signal:    maskWarmup(sig, warmup),
		Histogram: maskWarmup(hist, warmup),
	}
}
