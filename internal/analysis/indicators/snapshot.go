package indicators

import (
	"pythia/internal/domain/marketdata"
)

// SnapshotParams sets the windows used when assembling a snapshot.
type SnapshotParams struct {
	MovingAverageWindow int
	RSIPeriod           int
	VolatilityWindow    int

	// Extended toggles MACD, Bollinger Bands and volatility. When false
	// their snapshot fields stay nil.
	Extended bool
}

// DefaultSnapshotParams mirrors the conventional windows: MA(5), RSI(14),
// volatility over 20 bars, extended set on.
func DefaultSnapshotParams() SnapshotParams {
	return SnapshotParams{
		MovingAverageWindow: 5,
		RSIPeriod:           14,
		VolatilityWindow:    20,
		Extended:            true,
	}
}

// Snapshot computes every indicator series for one ticker and keeps the
// last defined value of each. Bars must be sorted and non-empty.
func Snapshot(bars []marketdata.PriceBar, params SnapshotParams) marketdata.IndicatorSnapshot {
	closes := Closes(bars)

	snap := marketdata.IndicatorSnapshot{
		Ticker:        bars[0].Ticker,
		Bars:          len(bars),
		Close:         closes[len(closes)-1],
		MovingAverage: LastDefined(SMA(closes, params.MovingAverageWindow)),
		EMA:           LastDefined(EMA(closes, params.MovingAverageWindow)),
		RSI:           LastDefined(RSI(closes, params.RSIPeriod)),
	}

	if params.Extended {
		macd := MACD(closes, 12, 26, 9)
		snap.MACD = LastDefined(macd.MACD)
		snap.MACDSignal = LastDefined(macd.Signal)
		snap.MACDHist = LastDefined(macd.Histogram)

		bands := Bollinger(closes, 20, 2.0)
		snap.BollingerUpper = LastDefined(bands.Upper)
		snap.BollingerLower = LastDefined(bands.Lower)

		snap.Volatility = LastDefined(Volatility(closes, params.VolatilityWindow))
	}
	return snap
}
