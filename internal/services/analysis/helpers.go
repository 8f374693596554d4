package analysis

import (
	"sort"

	"pythia/internal/domain/marketdata"
	"pythia/internal/domain/news"
)

func sortedTickers(prices map[string][]marketdata.PriceBar) []string {
	tickers := make([]string, 0, len(prices))
	for t := range prices {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers
}

func headlineTexts(headlines []news.Headline) []string {
	texts := make([]string, len(headlines))
	for i, h := range headlines {
		texts[i] = h.Text
	}
	return texts
}
