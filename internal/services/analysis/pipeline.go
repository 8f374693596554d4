package analysis

import (
	"context"

	"pythia/internal/adapters/config"
	"pythia/internal/analysis/correlation"
	"pythia/internal/analysis/eda"
	"pythia/internal/analysis/indicators"
	"pythia/internal/analysis/sentiment"
	"pythia/internal/analysis/text"
	"pythia/internal/domain/marketdata"
	"pythia/internal/domain/news"
	"pythia/internal/report"
	"pythia/pkg/errors"
	"pythia/pkg/logger"
)

const topPublishers = 10

// Pipeline runs the full batch: price and news inputs in, one report
// out. Every stage is a pure transform over the previous stage's output;
// the pipeline itself only sequences them and carries the capability
// flags resolved at startup.
type Pipeline struct {
	cfg     *config.Config
	scorers []sentiment.Scorer
	log     *logger.Logger
}

// Inputs are the loaded and validated datasets the pipeline consumes.
type Inputs struct {
	Prices          map[string][]marketdata.PriceBar
	PriceErrors     map[string]error
	Headlines       []news.Headline
	SkippedNewsRows int
}

// NewPipeline creates a pipeline with the default scorers.
func NewPipeline(cfg *config.Config) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		scorers: sentiment.DefaultScorers(),
		log:     logger.Get().With("component", "pipeline"),
	}
}

// WithScorers replaces the sentiment scorers (used by tests and callers
// that plug in their own scoring method).
func (p *Pipeline) WithScorers(scorers []sentiment.Scorer) *Pipeline {
	p.scorers = scorers
	return p
}

// Run executes every analysis stage and assembles the report. It fails
// only on unrecoverable conditions (no ticker survived validation);
// undefined correlations and disabled features are represented in the
// report, not raised.
func (p *Pipeline) Run(ctx context.Context, in Inputs) (*report.Report, error) {
	if len(in.Prices) == 0 {
		return nil, errors.Wrap(errors.ErrNoTickers, "no price series survived validation")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	headlines := in.Headlines

	// Sentiment: score, then aggregate per ticker/day/metric.
	scores := sentiment.ScoreHeadlines(headlines, p.scorers)
	aggregated := sentiment.AggregateDaily(headlines, scores)
	p.log.Infow("Aggregated sentiment",
		"headlines", len(headlines),
		"scores", len(scores),
		"daily_rows", len(aggregated.Daily),
		"skipped", aggregated.Skipped,
	)

	// Indicators and returns per surviving ticker.
	params := indicators.SnapshotParams{
		MovingAverageWindow: p.cfg.Analysis.MovingAverageWindow,
		RSIPeriod:           p.cfg.Analysis.RSIPeriod,
		VolatilityWindow:    p.cfg.Analysis.VolatilityWindow,
		Extended:            !p.cfg.Analysis.DisableExtendedIndicators,
	}
	snapshots := make([]marketdata.IndicatorSnapshot, 0, len(in.Prices))
	returns := make(map[string][]marketdata.DailyReturn, len(in.Prices))
	for _, ticker := range sortedTickers(in.Prices) {
		bars := in.Prices[ticker]
		snapshots = append(snapshots, indicators.Snapshot(bars, params))
		returns[ticker] = indicators.DailyReturns(bars)
	}

	// Alignment and correlation.
	engine := correlation.NewEngine(
		p.cfg.Analysis.SentimentShiftDays,
		p.cfg.Analysis.CorrelationWorkers,
	)
	correlations := engine.Compute(aggregated.Daily, returns)

	rep := &report.Report{
		Run: report.RunSummary{
			PriceTickers:       len(in.Prices),
			Headlines:          len(headlines),
			SkippedNewsRows:    in.SkippedNewsRows,
			SkippedHeadlines:   aggregated.Skipped,
			SentimentShiftDays: p.cfg.Analysis.SentimentShiftDays,
			TickerErrors:       report.TickerErrors(in.PriceErrors),
		},
		Publishers:     eda.PublisherActivity(headlines, topPublishers),
		Domains:        eda.DomainBreakdown(headlines, topPublishers),
		HeadlineLength: eda.HeadlineLengthStats(headlines),
		DailyArticles:  eda.DailyArticleCounts(headlines),
		PublishingHour: eda.PublishingHours(headlines),
		PublisherMix:   eda.RollingPublisherMix(headlines, p.cfg.Analysis.PublisherMixWindow),
		Indicators:     snapshots,
		Correlations:   correlations,
	}

	texts := headlineTexts(headlines)
	if !p.cfg.Analysis.SkipTFIDF {
		rep.TFIDFTerms = text.TFIDF(texts, p.cfg.Analysis.TFIDFTopK)
	}
	if !p.cfg.Analysis.SkipTopics {
		rep.Topics = text.Topics(texts, p.cfg.Analysis.Topics, p.cfg.Analysis.TopicWords)
	}

	return rep, nil
}
