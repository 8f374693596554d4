package loader

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"pythia/internal/domain/news"
	"pythia/pkg/errors"
	"pythia/pkg/logger"
)

// NewsOptions controls news loading.
type NewsOptions struct {
	// MaxRows caps the number of accepted headlines. Zero means no cap.
	MaxRows int

	// Tickers, when non-empty, keeps only headlines tagged with one of
	// the given symbols. Untagged headlines are kept either way; the
	// aggregator skips them later.
	Tickers []string
}

// NewsData is the output of LoadNews. Skipped counts rows dropped for an
// unparseable timestamp or an empty headline.
type NewsData struct {
	Headlines []news.Headline
	Skipped   int
}

// LoadNews reads the news CSV. Timestamps are normalized to UTC,
// publishers lowercased with empty values mapped to "unknown". Rows that
// cannot yield a usable headline are skipped and counted, never guessed.
func LoadNews(path string, opts NewsOptions) (*NewsData, error) {
	log := logger.Get().With("component", "news_loader")

	wanted := tickerSet(opts.Tickers)
	data := &NewsData{}

	err := forEachRecord(path, func(h header, record []string) error {
		if opts.MaxRows > 0 && len(data.Headlines) >= opts.MaxRows {
			return nil
		}

		textIdx := h.col("headline", "title", "text")
		if textIdx < 0 {
			return errors.Wrap(errors.ErrMissingColumn, "headline")
		}
		dateIdx := h.col("date", "timestamp", "published_at")
		if dateIdx < 0 {
			return errors.Wrap(errors.ErrMissingColumn, "date")
		}

		text := field(record, textIdx)
		if text == "" {
			data.Skipped++
			return nil
		}
		ts, ok := parseTimestamp(field(record, dateIdx))
		if !ok {
			data.Skipped++
			return nil
		}

		ticker := strings.ToUpper(field(record, h.col("ticker", "stock", "symbol")))
		if wanted != nil && ticker != "" && !wanted[ticker] {
			return nil
		}

		publisher := strings.ToLower(field(record, h.col("publisher", "source")))
		if publisher == "" {
			publisher = "unknown"
		}

		data.Headlines = append(data.Headlines, news.Headline{
			ID:        uuid.New(),
			Ticker:    ticker,
			Timestamp: ts,
			Publisher: publisher,
			Text:      text,
			URL:       field(record, h.col("url", "link")),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infow("Loaded news data",
		"headlines", humanize.Comma(int64(len(data.Headlines))),
		"skipped", data.Skipped,
	)
	return data, nil
}
