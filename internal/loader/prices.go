package loader

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"pythia/internal/domain/marketdata"
	"pythia/pkg/errors"
	"pythia/pkg/logger"
)

// PriceOptions controls price loading.
type PriceOptions struct {
	// Tickers restricts loading to the given symbols (uppercased).
	// Empty means every ticker found.
	Tickers []string
}

// PriceData is the validated output of LoadPrices. Bars hold the sorted
// series per surviving ticker; TickerErrors records tickers whose series
// failed validation and were dropped (reported, not silently lost).
type PriceData struct {
	Bars         map[string][]marketdata.PriceBar
	TickerErrors map[string]error
}

// Tickers returns the surviving ticker symbols in lexicographic order.
func (d *PriceData) Tickers() []string {
	out := make([]string, 0, len(d.Bars))
	for t := range d.Bars {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// LoadPrices reads OHLCV bars from a single CSV file or from a directory
// of per-ticker CSV files. In directory mode the ticker defaults to the
// file stem when the file has no ticker column. Validation failures are
// isolated per ticker: the offending ticker is dropped and recorded in
// TickerErrors, the rest of the load continues.
func LoadPrices(path string, opts PriceOptions) (*PriceData, error) {
	log := logger.Get().With("component", "price_loader")

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	wanted := tickerSet(opts.Tickers)
	raw := make(map[string][]marketdata.PriceBar)
	tickerErrs := make(map[string]error)

	files := []string{path}
	if info.IsDir() {
		files, err = listCSVFiles(path)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, errors.Wrapf(errors.ErrDataValidation, "no CSV files in %s", path)
		}
	}

	rows := 0
	for _, file := range files {
		stem := strings.ToUpper(strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)))
		err := forEachRecord(file, func(h header, record []string) error {
			bar, ticker, err := parsePriceRow(h, record, stem)
			if err != nil {
				// A malformed row poisons its ticker, not the whole load.
				// Tickers outside the requested set stay out of the error
				// report too.
				if ticker != "" {
					if wanted != nil && !wanted[ticker] {
						return nil
					}
					if _, seen := tickerErrs[ticker]; !seen {
						tickerErrs[ticker] = err
					}
					return nil
				}
				return err
			}
			if wanted != nil && !wanted[ticker] {
				return nil
			}
			raw[ticker] = append(raw[ticker], bar)
			rows++
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	data := &PriceData{
		Bars:         make(map[string][]marketdata.PriceBar, len(raw)),
		TickerErrors: tickerErrs,
	}
	for ticker, bars := range raw {
		if err, poisoned := tickerErrs[ticker]; poisoned {
			log.Warnw("Dropping ticker with malformed rows", "ticker", ticker, "error", err)
			continue
		}
		sorted, err := validateSeries(ticker, bars)
		if err != nil {
			log.Warnw("Dropping ticker after validation", "ticker", ticker, "error", err)
			tickerErrs[ticker] = err
			continue
		}
		data.Bars[ticker] = sorted
	}

	// Requested tickers that never appeared are an empty series.
	for t := range wanted {
		if _, ok := data.Bars[t]; !ok {
			if _, ok := tickerErrs[t]; !ok {
				tickerErrs[t] = errors.Wrapf(errors.ErrEmptySeries, "ticker %s", t)
			}
		}
	}

	log.Infow("Loaded price data",
		"files", len(files),
		"rows", humanize.Comma(int64(rows)),
		"tickers", len(data.Bars),
		"dropped", len(tickerErrs),
	)
	return data, nil
}

func listCSVFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read dir %s", dir)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func tickerSet(tickers []string) map[string]bool {
	if len(tickers) == 0 {
		return nil
	}
	set := make(map[string]bool, len(tickers))
	for _, t := range tickers {
		set[strings.ToUpper(strings.TrimSpace(t))] = true
	}
	return set
}

// parsePriceRow parses one CSV record into a bar. It returns the ticker
// even on failure so the caller can isolate the error.
func parsePriceRow(h header, record []string, fallbackTicker string) (marketdata.PriceBar, string, error) {
	ticker := strings.ToUpper(field(record, h.col("ticker", "stock", "symbol")))
	if ticker == "" {
		ticker = fallbackTicker
	}

	dateIdx := h.col("date", "timestamp")
	if dateIdx < 0 {
		return marketdata.PriceBar{}, ticker, errors.Wrap(errors.ErrMissingColumn, "date")
	}
	ts, ok := parseTimestamp(field(record, dateIdx))
	if !ok {
		return marketdata.PriceBar{}, ticker,
			errors.NewValidationError("date", "unparseable timestamp", field(record, dateIdx))
	}

	bar := marketdata.PriceBar{Ticker: ticker, Date: ts}
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"open", &bar.Open},
		{"high", &bar.High},
		{"low", &bar.Low},
		{"close", &bar.Close},
		{"volume", &bar.Volume},
	} {
		idx := h.col(f.name)
		if idx < 0 {
			return marketdata.PriceBar{}, ticker, errors.Wrap(errors.ErrMissingColumn, f.name)
		}
		raw := field(record, idx)
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			// No best-effort coercion: a non-numeric cell is fatal for
			// the ticker.
			return marketdata.PriceBar{}, ticker,
				errors.NewValidationError(f.name, "not a number", raw)
		}
		if v < 0 {
			return marketdata.PriceBar{}, ticker,
				errors.NewValidationError(f.name, "negative value", raw)
		}
		*f.dst = v
	}
	return bar, ticker, nil
}

// validateSeries sorts a ticker's bars by date and enforces the series
// invariants: at least one row, strictly increasing dates.
func validateSeries(ticker string, bars []marketdata.PriceBar) ([]marketdata.PriceBar, error) {
	if len(bars) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptySeries, "ticker %s", ticker)
	}
	sorted := make([]marketdata.PriceBar, len(bars))
	copy(sorted, bars)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Day().Equal(sorted[i-1].Day()) {
			return nil, errors.Wrapf(errors.ErrDuplicateDate,
				"ticker %s date %s", ticker, sorted[i].Day().Format("2006-01-02"))
		}
	}
	return sorted, nil
}
