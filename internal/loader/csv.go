package loader

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
	"time"

	"pythia/pkg/errors"
)

// header maps lowercased column names to their index.
type header map[string]int

func readHeader(r *csv.Reader) (header, error) {
	record, err := r.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read header row")
	}
	h := make(header, len(record))
	for i, name := range record {
		h[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return h, nil
}

// col returns the index of the first matching column name, or -1.
func (h header) col(names ...string) int {
	for _, name := range names {
		if idx, ok := h[name]; ok {
			return idx
		}
	}
	return -1
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// dateLayouts are tried in order when parsing timestamps. All values are
// normalized to UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

func parseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

// forEachRecord streams the CSV at path, calling fn with each data row
// after the header. Rows with mismatched field counts are surfaced as
// csv.ErrFieldCount by the reader and treated as fatal.
func forEachRecord(path string, fn func(h header, record []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	h, err := readHeader(r)
	if err != nil {
		return err
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "read %s", path)
		}
		if err := fn(h, record); err != nil {
			return err
		}
	}
}
