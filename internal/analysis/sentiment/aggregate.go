package sentiment

import (
	"sort"
	"time"

	"pythia/internal/domain/news"
	"pythia/pkg/logger"
)

// ScoreHeadlines runs every scorer over every headline. One score per
// (headline, scorer).
func ScoreHeadlines(headlines []news.Headline, scorers []Scorer) []news.SentimentScore {
	scores := make([]news.SentimentScore, 0, len(headlines)*len(scorers))
	for _, h := range headlines {
		for _, scorer := range scorers {
			polarity, subjectivity := scorer.Score(h.Text)
			scores = append(scores, news.SentimentScore{
				HeadlineID:   h.ID,
				Metric:       scorer.Metric(),
				Polarity:     polarity,
				Subjectivity: subjectivity,
			})
		}
	}
	return scores
}

// AggregateResult carries the daily aggregates plus the number of
// headlines excluded for a missing ticker or timestamp.
type AggregateResult struct {
	Daily   []news.DailySentiment
	Skipped int
}

// AggregateDaily groups scores by (ticker, UTC calendar day, metric) and
// takes the arithmetic mean of polarity and of subjectivity. Headlines
// without a resolvable
// ticker or timestamp are excluded and counted as skipped; a ticker with
// no usable headlines simply yields no rows. Output ordering is stable:
// ticker, then date, then metric.
func AggregateDaily(headlines []news.Headline, scores []news.SentimentScore) AggregateResult {
	log := logger.Get().With("component", "sentiment_aggregator")

	type key struct {
		ticker string
		day    time.Time
		metric string
	}
	type acc struct {
		sum     float64
		subjSum float64
		count   int
	}

	byHeadline := make(map[string]news.Headline, len(headlines))
	skipped := 0
	for _, h := range headlines {
		if h.Ticker == "" || h.Timestamp.IsZero() {
			skipped++
			continue
		}
		byHeadline[h.ID.String()] = h
	}

	groups := make(map[key]*acc)
	for _, score := range scores {
		h, ok := byHeadline[score.HeadlineID.String()]
		if !ok {
			continue
		}
		k := key{ticker: h.Ticker, day: h.Day(), metric: score.Metric}
		a := groups[k]
		if a == nil {
			a = &acc{}
			groups[k] = a
		}
		a.sum += score.Polarity
		a.subjSum += score.Subjectivity
		a.count++
	}

	daily := make([]news.DailySentiment, 0, len(groups))
	for k, a := range groups {
		daily = append(daily, news.DailySentiment{
			Ticker:       k.ticker,
			Date:         k.day,
			Metric:       k.metric,
			Value:        a.sum / float64(a.count),
			Subjectivity: a.subjSum / float64(a.count),
			Count:        a.count,
		})
	}
	sort.Slice(daily, func(i, j int) bool {
		if daily[i].Ticker != daily[j].Ticker {
			return daily[i].Ticker < daily[j].Ticker
		}
		if !daily[i].Date.Equal(daily[j].Date) {
			return daily[i].Date.Before(daily[j].Date)
		}
		return daily[i].Metric < daily[j].Metric
	})

	if skipped > 0 {
		log.Debugw("Excluded headlines without ticker or timestamp", "skipped", skipped)
	}
	return AggregateResult{Daily: daily, Skipped: skipped}
}
