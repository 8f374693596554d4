package marketdata

import "time"

// PriceBar represents one day of OHLCV data for a ticker.
// Bars are kept sorted by date, one bar per calendar day.
type PriceBar struct {
	Ticker string    `json:"ticker"`
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// Day returns the bar's UTC calendar date, the grouping key used for
// daily joins.
func (b PriceBar) Day() time.Time {
	return time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), 0, 0, 0, 0, time.UTC)
}

// DailyReturn is the simple one-day return of a ticker's close price.
// The first bar of a series has no return row.
type DailyReturn struct {
	Ticker string    `json:"ticker"`
	Date   time.Time `json:"date"`
	Return float64   `json:"return"`
}

// IndicatorSnapshot holds the latest defined value of each indicator for
// one ticker. Nil means undefined: either the warmup window was never
// filled or the extended indicator set was disabled.
type IndicatorSnapshot struct {
	Ticker string `json:"ticker"`
	Bars   int    `json:"bars"`

	Close         float64  `json:"close"`
	MovingAverage *float64 `json:"moving_average"`
	EMA           *float64 `json:"ema"`
	RSI           *float64 `json:"rsi"`

	// Extended set, gated by configuration.
	MACD           *float64 `json:"macd"`
	MACDSignal     *float64 `json:"macd_signal"`
	MACDHist       *float64 `json:"macd_hist"`
	BollingerUpper *float64 `json:"bollinger_upper"`
	BollingerLower *float64 `json:"bollinger_lower"`
	Volatility     *float64 `json:"volatility"`
}
