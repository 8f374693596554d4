package report

import (
	"encoding/json"
	"io"
	"os"
	"sort"

	"pythia/internal/analysis/eda"
	"pythia/internal/analysis/text"
	"pythia/internal/domain/marketdata"
	"pythia/internal/domain/news"
	"pythia/pkg/errors"
)

// Report is the single structured output document of a pipeline run. It
// contains no wall-clock fields: two runs over identical inputs must
// serialize byte-identically. Undefined correlations stay in the list
// with an explicit null coefficient so consumers can tell "not computed"
// from "computed as zero".
type Report struct {
	Run RunSummary `json:"run"`

	Publishers     []eda.PublisherCount `json:"publishers"`
	Domains        []eda.DomainCount    `json:"domains"`
	HeadlineLength eda.LengthStats      `json:"headline_length"`
	DailyArticles  []eda.DailyCount     `json:"daily_articles"`
	PublishingHour []eda.HourCount      `json:"publishing_hours"`
	PublisherMix   []eda.PublisherShare `json:"publisher_mix"`

	Indicators   []marketdata.IndicatorSnapshot `json:"indicators"`
	Correlations []news.CorrelationResult       `json:"correlations"`

	// Null when the corresponding feature is skipped via configuration.
	TFIDFTerms []text.Term `json:"tfidf_terms"`
	Topics     [][]string  `json:"topics"`
}

// RunSummary records input sizes and everything that was dropped along
// the way, so a consumer can judge coverage.
type RunSummary struct {
	PriceTickers       int           `json:"price_tickers"`
	Headlines          int           `json:"headlines"`
	SkippedNewsRows    int           `json:"skipped_news_rows"`
	SkippedHeadlines   int           `json:"skipped_headlines"`
	SentimentShiftDays int           `json:"sentiment_shift_days"`
	TickerErrors       []TickerError `json:"ticker_errors"`
}

// TickerError reports one ticker dropped during price validation.
type TickerError struct {
	Ticker string `json:"ticker"`
	Error  string `json:"error"`
}

// TickerErrors flattens a validation-error map into a sorted slice.
func TickerErrors(errs map[string]error) []TickerError {
	out := make([]TickerError, 0, len(errs))
	for ticker, err := range errs {
		out = append(out, TickerError{Ticker: ticker, Error: err.Error()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ticker < out[j].Ticker })
	return out
}

// Encode writes the report as indented JSON.
func (r *Report) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "encode report")
	}
	return nil
}

// Write sends the report to the given path, or to stdout when the path
// is empty.
func (r *Report) Write(path string) error {
	if path == "" {
		return r.Encode(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()
	return r.Encode(f)
}
