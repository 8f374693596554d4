package indicators

import (
	"pythia/internal/domain/marketdata"
)

// DailyReturns computes simple one-day returns from a sorted bar series:
// (close[t] - close[t-1]) / close[t-1]. The first bar yields no row, so
// a series of n bars produces n-1 returns. Bars with a zero previous
// close are skipped (the return is undefined, not infinite).
func DailyReturns(bars []marketdata.PriceBar) []marketdata.DailyReturn {
	if len(bars) < 2 {
		return nil
	}
	out := make([]marketdata.DailyReturn, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		if prev == 0 {
			continue
		}
		out = append(out, marketdata.DailyReturn{
			Ticker: bars[i].Ticker,
			Date:   bars[i].Day(),
			Return: (bars[i].Close - prev) / prev,
		})
	}
	return out
}
