package indicators

import (
	"github.com/markcheno/go-talib"
)

// BollingerSeries holds the three band lines aligned 1:1 with the input.
type BollingerSeries struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// Bollinger computes Bollinger Bands over closes with an SMA basis and
// symmetric standard-deviation bands.
func Bollinger(closes []float64, period int, stdDev float64) BollingerSeries {
	if period < 2 || len(closes) < period {
		return BollingerSeries{
			Upper:  undefinedSeries(len(closes)),
			Middle: undefinedSeries(len(closes)),
			Lower:  undefinedSeries(len(closes)),
		}
	}
	upper, middle, lower := talib.BBands(closes, period, stdDev, stdDev, talib.SMA)
	return BollingerSeries{
		Upper:  maskWarmup(upper, period-1),
		Middle: maskWarmup(middle, period-1),
		Lower:  maskWarmup(lower, period-1),
	}
}
