package main

import (
	"context"
	"flag"
	"strings"

	"pythia/internal/adapters/config"
	"pythia/internal/adapters/errors/noop"
	"pythia/internal/adapters/errors/sentry"
	"pythia/internal/loader"
	"pythia/internal/services/analysis"
	"pythia/pkg/errors"
	"pythia/pkg/logger"
)

func main() {
	// Per-run inputs come from flags; everything else from the
	// environment (see internal/adapters/config).
	pricesPath := flag.String("prices", "", "Price CSV file or directory of per-ticker CSVs")
	newsPath := flag.String("news", "", "News CSV file")
	outputPath := flag.String("output", "", "Report destination (default stdout)")
	tickers := flag.String("tickers", "", "Comma-separated ticker filter")
	shiftDays := flag.Int("shift", -1, "Sentiment lead shift in days (overrides env)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	applyFlags(cfg, *pricesPath, *newsPath, *outputPath, *tickers, *shiftDays)

	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	log := logger.Get()
	log.Infof("Starting %s in %s mode", cfg.App.Name, cfg.App.Env)

	errorTracker := initErrorTracker(cfg, log)
	logger.SetErrorTracker(errorTracker)

	ctx := context.Background()

	prices, err := loader.LoadPrices(cfg.Data.PricesPath, loader.PriceOptions{
		Tickers: cfg.Data.Tickers,
	})
	if err != nil {
		log.Fatalf("Failed to load price data: %v", err)
	}

	newsData, err := loader.LoadNews(cfg.Data.NewsPath, loader.NewsOptions{
		MaxRows: cfg.Data.MaxNewsRows,
		Tickers: cfg.Data.Tickers,
	})
	if err != nil {
		log.Fatalf("Failed to load news data: %v", err)
	}

	pipeline := analysis.NewPipeline(cfg)
	rep, err := pipeline.Run(ctx, analysis.Inputs{
		Prices:          prices.Bars,
		PriceErrors:     prices.TickerErrors,
		Headlines:       newsData.Headlines,
		SkippedNewsRows: newsData.Skipped,
	})
	if err != nil {
		log.ErrorWithContext(ctx, err, map[string]string{"stage": "pipeline"})
		log.Fatalf("Analysis failed: %v", err)
	}

	if err := rep.Write(cfg.Data.OutputPath); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	errorTracker.Flush(ctx)
	log.Infow("Report complete",
		"tickers", rep.Run.PriceTickers,
		"headlines", rep.Run.Headlines,
		"correlations", len(rep.Correlations),
		"output", outName(cfg.Data.OutputPath),
	)
}

func applyFlags(cfg *config.Config, prices, news, output, tickers string, shift int) {
	if prices != "" {
		cfg.Data.PricesPath = prices
	}
	if news != "" {
		cfg.Data.NewsPath = news
	}
	if output != "" {
		cfg.Data.OutputPath = output
	}
	if tickers != "" {
		cfg.Data.Tickers = nil
		for _, t := range strings.Split(tickers, ",") {
			if t = strings.ToUpper(strings.TrimSpace(t)); t != "" {
				cfg.Data.Tickers = append(cfg.Data.Tickers, t)
			}
		}
	}
	if shift >= 0 {
		cfg.Analysis.SentimentShiftDays = shift
	}
}

// initErrorTracker initializes error tracking (Sentry or no-op)
func initErrorTracker(cfg *config.Config, log *logger.Logger) errors.Tracker {
	if !cfg.ErrorTracking.Enabled || cfg.ErrorTracking.SentryDSN == "" {
		log.Debug("Error tracking disabled, using no-op tracker")
		return noop.New()
	}

	tracker, err := sentry.New(cfg.ErrorTracking.SentryDSN, cfg.ErrorTracking.Environment)
	if err != nil {
		log.Warnw("Failed to init Sentry, falling back to no-op tracker", "error", err)
		return noop.New()
	}
	log.Info("Sentry error tracking enabled")
	return tracker
}

func outName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
