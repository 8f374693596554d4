package eda

import (
	"math"
	"net/url"
	"sort"
	"strings"
	"unicode/utf8"

	"pythia/internal/domain/news"
)

// PublisherCount is one publisher's headline count.
type PublisherCount struct {
	Publisher string `json:"publisher"`
	Articles  int    `json:"articles"`
}

// DomainCount is one source domain's headline count.
type DomainCount struct {
	Domain   string `json:"domain"`
	Articles int    `json:"articles"`
}

// DailyCount is the number of headlines on one UTC calendar day.
type DailyCount struct {
	Date     string `json:"date"`
	Articles int    `json:"articles"`
}

// HourCount is the number of headlines published in one UTC hour of day.
type HourCount struct {
	Hour     int `json:"hour"`
	Articles int `json:"articles"`
}

// PublisherShare is one publisher's share of a day's headlines, with a
// rolling mean of that share over the trailing window of observed days.
type PublisherShare struct {
	Date       string  `json:"date"`
	Publisher  string  `json:"publisher"`
	Share      float64 `json:"share"`
	RollingAvg float64 `json:"rolling_avg"`
}

// LengthStats summarizes headline character lengths.
type LengthStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    int     `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	Max    int     `json:"max"`
}

// PublisherActivity counts headlines per publisher, descending, capped
// at topN (0 means no cap). Ties break lexicographically so the output
// is stable.
func PublisherActivity(headlines []news.Headline, topN int) []PublisherCount {
	counts := make(map[string]int)
	for _, h := range headlines {
		counts[h.Publisher]++
	}
	out := make([]PublisherCount, 0, len(counts))
	for publisher, n := range counts {
		out = append(out, PublisherCount{Publisher: publisher, Articles: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Articles != out[j].Articles {
			return out[i].Articles > out[j].Articles
		}
		return out[i].Publisher < out[j].Publisher
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// DomainBreakdown extracts hostnames from headline URLs and counts them,
// descending. Headlines without a parseable URL count as "unknown".
func DomainBreakdown(headlines []news.Headline, topN int) []DomainCount {
	counts := make(map[string]int)
	for _, h := range headlines {
		counts[extractDomain(h.URL)]++
	}
	out := make([]DomainCount, 0, len(counts))
	for domain, n := range counts {
		out = append(out, DomainCount{Domain: domain, Articles: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Articles != out[j].Articles {
			return out[i].Articles > out[j].Articles
		}
		return out[i].Domain < out[j].Domain
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

func extractDomain(raw string) string {
	if raw == "" {
		return "unknown"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// DailyArticleCounts counts headlines per UTC calendar day, ascending by
// date.
func DailyArticleCounts(headlines []news.Headline) []DailyCount {
	counts := make(map[string]int)
	for _, h := range headlines {
		counts[h.Day().Format("2006-01-02")]++
	}
	out := make([]DailyCount, 0, len(counts))
	for date, n := range counts {
		out = append(out, DailyCount{Date: date, Articles: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// PublishingHours counts headlines per UTC hour of day, ascending by
// hour; hours with no headlines are omitted.
func PublishingHours(headlines []news.Headline) []HourCount {
	counts := make(map[int]int)
	for _, h := range headlines {
		counts[h.Timestamp.UTC().Hour()]++
	}
	out := make([]HourCount, 0, len(counts))
	for hour, n := range counts {
		out = append(out, HourCount{Hour: hour, Articles: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out
}

// RollingPublisherMix computes each publisher's share of the daily
// headline count, plus the rolling mean of that share over the trailing
// `window` observed days (days with no headlines are absent, not zero).
// The output is a full day-by-publisher grid, ordered by date then
// publisher, so the series stays stable and diffable.
func RollingPublisherMix(headlines []news.Headline, window int) []PublisherShare {
	if len(headlines) == 0 {
		return nil
	}
	if window < 1 {
		window = 1
	}

	dayTotals := make(map[string]int)
	counts := make(map[string]map[string]int)
	publisherSet := make(map[string]bool)
	for _, h := range headlines {
		day := h.Day().Format("2006-01-02")
		dayTotals[day]++
		if counts[day] == nil {
			counts[day] = make(map[string]int)
		}
		counts[day][h.Publisher]++
		publisherSet[h.Publisher] = true
	}

	days := make([]string, 0, len(dayTotals))
	for day := range dayTotals {
		days = append(days, day)
	}
	sort.Strings(days)
	publishers := make([]string, 0, len(publisherSet))
	for p := range publisherSet {
		publishers = append(publishers, p)
	}
	sort.Strings(publishers)

	shares := make(map[string][]float64, len(publishers))
	out := make([]PublisherShare, 0, len(days)*len(publishers))
	for i, day := range days {
		total := float64(dayTotals[day])
		for _, p := range publishers {
			share := float64(counts[day][p]) / total
			shares[p] = append(shares[p], share)

			start := i - window + 1
			if start < 0 {
				start = 0
			}
			var sum float64
			for _, s := range shares[p][start:] {
				sum += s
			}
			out = append(out, PublisherShare{
				Date:       day,
				Publisher:  p,
				Share:      share,
				RollingAvg: sum / float64(i-start+1),
			})
		}
	}
	return out
}

// HeadlineLengthStats computes character-length distribution stats over
// headline texts. Returns the zero value when there are no headlines.
func HeadlineLengthStats(headlines []news.Headline) LengthStats {
	if len(headlines) == 0 {
		return LengthStats{}
	}

	lengths := make([]float64, len(headlines))
	for i, h := range headlines {
		// Character count, not byte count: multibyte headlines must not
		// skew the distribution.
		lengths[i] = float64(utf8.RuneCountInString(h.Text))
	}
	sort.Float64s(lengths)

	var sum float64
	for _, l := range lengths {
		sum += l
	}
	mean := sum / float64(len(lengths))

	var sq float64
	for _, l := range lengths {
		d := l - mean
		sq += d * d
	}
	std := 0.0
	if len(lengths) > 1 {
		std = math.Sqrt(sq / float64(len(lengths)-1))
	}

	return LengthStats{
		Count:  len(lengths),
		Mean:   mean,
		Std:    std,
		Min:    int(lengths[0]),
		P25:    percentile(lengths, 0.25),
		Median: percentile(lengths, 0.5),
		P75:    percentile(lengths, 0.75),
		Max:    int(lengths[len(lengths)-1]),
	}
}

// percentile uses linear interpolation between closest ranks over a
// sorted slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
