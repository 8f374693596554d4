package news

import (
	"time"

	"github.com/google/uuid"
)

// Headline represents a single financial news headline.
// Timestamp is normalized to UTC at load time; Ticker may be empty when
// the source row carries no symbol.
type Headline struct {
	ID        uuid.UUID `json:"id"`
	Ticker    string    `json:"ticker"`
	Timestamp time.Time `json:"timestamp"`
	Publisher string    `json:"publisher"`
	Text      string    `json:"text"`
	URL       string    `json:"url"`
}

// Day returns the headline's UTC calendar date (the canonical day used
// for daily aggregation).
func (h Headline) Day() time.Time {
	ts := h.Timestamp.UTC()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}

// SentimentScore is one scoring method's output for one headline.
// Polarity is in [-1, 1], Subjectivity in [0, 1].
type SentimentScore struct {
	HeadlineID   uuid.UUID `json:"headline_id"`
	Metric       string    `json:"metric"`
	Polarity     float64   `json:"polarity"`
	Subjectivity float64   `json:"subjectivity"`
}

// DailySentiment is the arithmetic mean polarity of all same-ticker,
// same-day scores for one metric, with the mean subjectivity alongside.
// Count is always at least 1. Correlation consumes Value only.
type DailySentiment struct {
	Ticker       string    `json:"ticker"`
	Date         time.Time `json:"date"`
	Metric       string    `json:"metric"`
	Value        float64   `json:"value"`
	Subjectivity float64   `json:"subjectivity"`
	Count        int       `json:"count"`
}

// Reasons a correlation coefficient can be undefined.
const (
	ReasonInsufficientSample = "insufficient_sample"
	ReasonZeroVariance       = "zero_variance"
)

// CorrelationResult pairs one ticker/metric with the Pearson correlation
// of shifted sentiment against daily returns. Coefficient is nil when the
// correlation is undefined; Reason then says why. An undefined coefficient
// is a valid outcome, not an error.
type CorrelationResult struct {
	Ticker      string   `json:"ticker"`
	Metric      string   `json:"metric"`
	ShiftDays   int      `json:"shift_days"`
	Coefficient *float64 `json:"correlation_coefficient"`
	SampleSize  int      `json:"sample_size"`
	Reason      string   `json:"reason,omitempty"`
}
