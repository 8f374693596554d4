package correlation

import (
	"sort"
	"sync"

	"pythia/internal/domain/marketdata"
	"pythia/internal/domain/news"
	"pythia/pkg/logger"
)

// Engine aligns per-ticker daily sentiment with daily returns and
// computes Pearson correlations. Tickers are independent, so they are
// fanned out over a bounded worker pool; results are sorted afterwards
// (ticker lexicographic, then metric) so the output is deterministic.
type Engine struct {
	shiftDays int
	workers   int
	log       *logger.Logger
}

// NewEngine creates a correlation engine. shiftDays moves sentiment
// forward: sentiment on day D is tested against the return on day
// D+shiftDays (0 pairs same-day observations).
func NewEngine(shiftDays, workers int) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{
		shiftDays: shiftDays,
		workers:   workers,
		log:       logger.Get().With("component", "correlation_engine"),
	}
}

// Compute produces one CorrelationResult per (ticker, metric) pair that
// exists in both the sentiment aggregates and the return series. A
// ticker present in news but absent from price data yields no rows.
// Undefined coefficients (fewer than two pairs, zero variance) are
// explicit nil values with a reason, never errors.
func (e *Engine) Compute(
	daily []news.DailySentiment,
	returns map[string][]marketdata.DailyReturn,
) []news.CorrelationResult {
	grouped := groupSentiment(daily)

	tickers := make([]string, 0, len(grouped))
	for ticker := range grouped {
		if _, ok := returns[ticker]; ok {
			tickers = append(tickers, ticker)
		}
	}
	sort.Strings(tickers)

	var (
		mu      sync.Mutex
		results []news.CorrelationResult
		wg      sync.WaitGroup
	)
	sem := make(chan struct{}, e.workers)

	for _, ticker := range tickers {
		wg.Add(1)
		go func(ticker string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			rows := e.computeTicker(ticker, grouped[ticker], returns[ticker])

			mu.Lock()
			results = append(results, rows...)
			mu.Unlock()
		}(ticker)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		if results[i].Ticker != results[j].Ticker {
			return results[i].Ticker < results[j].Ticker
		}
		return results[i].Metric < results[j].Metric
	})

	e.log.Infow("Computed correlations",
		"tickers", len(tickers),
		"rows", len(results),
		"shift_days", e.shiftDays,
	)
	return results
}

func (e *Engine) computeTicker(
	ticker string,
	byMetric map[string]sentimentSeries,
	returns []marketdata.DailyReturn,
) []news.CorrelationResult {
	indexed := indexReturns(returns)

	metrics := make([]string, 0, len(byMetric))
	for metric := range byMetric {
		metrics = append(metrics, metric)
	}
	sort.Strings(metrics)

	rows := make([]news.CorrelationResult, 0, len(metrics))
	for _, metric := range metrics {
		xs, ys := alignPairs(byMetric[metric], indexed, e.shiftDays)

		result := news.CorrelationResult{
			Ticker:     ticker,
			Metric:     metric,
			ShiftDays:  e.shiftDays,
			SampleSize: len(xs),
		}
		if len(xs) < 2 {
			result.Reason = news.ReasonInsufficientSample
		} else if r, ok := Pearson(xs, ys); ok {
			result.Coefficient = &r
		} else {
			result.Reason = news.ReasonZeroVariance
		}
		rows = append(rows, result)
	}
	return rows
}
