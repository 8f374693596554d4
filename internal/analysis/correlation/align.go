package correlation

import (
	"sort"
	"time"

	"pythia/internal/domain/marketdata"
	"pythia/internal/domain/news"
)

// dayKey formats a UTC day as the join key.
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// sentimentSeries indexes one (ticker, metric) group's daily values by day.
type sentimentSeries map[string]float64

// groupSentiment splits daily sentiment rows into per-(ticker, metric)
// date-indexed series.
func groupSentiment(daily []news.DailySentiment) map[string]map[string]sentimentSeries {
	out := make(map[string]map[string]sentimentSeries)
	for _, d := range daily {
		byMetric := out[d.Ticker]
		if byMetric == nil {
			byMetric = make(map[string]sentimentSeries)
			out[d.Ticker] = byMetric
		}
		series := byMetric[d.Metric]
		if series == nil {
			series = make(sentimentSeries)
			byMetric[d.Metric] = series
		}
		series[dayKey(d.Date)] = d.Value
	}
	return out
}

// indexReturns builds the day-indexed return series for one ticker.
func indexReturns(returns []marketdata.DailyReturn) map[string]float64 {
	out := make(map[string]float64, len(returns))
	for _, r := range returns {
		out[dayKey(r.Date)] = r.Return
	}
	return out
}

// alignPairs shifts each sentiment observation forward by shiftDays
// (sentiment on day D is paired with the return on day D+shiftDays) and
// inner-joins against the return series. Pair order follows ascending
// sentiment date so the Pearson input is deterministic.
func alignPairs(sentiment sentimentSeries, returns map[string]float64, shiftDays int) (xs, ys []float64) {
	days := make([]string, 0, len(sentiment))
	for day := range sentiment {
		days = append(days, day)
	}
	sort.Strings(days)

	for _, day := range days {
		d, err := time.Parse("2006-01-02", day)
		if err != nil {
			continue
		}
		target := dayKey(d.AddDate(0, 0, shiftDays))
		ret, ok := returns[target]
		if !ok {
			continue
		}
		xs = append(xs, sentiment[day])
		ys = append(ys, ret)
	}
	return xs, ys
}
