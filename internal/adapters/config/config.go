package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"pythia/pkg/errors"
)

type Config struct {
	App           AppConfig
	Data          DataConfig
	Analysis      AnalysisConfig
	ErrorTracking ErrorTrackingConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"pythia"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type DataConfig struct {
	PricesPath string `envconfig:"PRICES_PATH" default:"data/raw/prices"`
	NewsPath   string `envconfig:"NEWS_PATH" default:"data/raw/news.csv"`
	OutputPath string `envconfig:"OUTPUT_PATH"` // empty means stdout

	// Tickers restricts the analysis to the given symbols. Empty means
	// every ticker found in the price data.
	Tickers []string `envconfig:"TICKERS"`

	// MaxNewsRows caps the number of news rows loaded. Zero means no cap.
	MaxNewsRows int `envconfig:"MAX_NEWS_ROWS" default:"0"`
}

// AnalysisConfig carries the knobs of the analytical passes. Optional
// features are resolved here once at startup and threaded through as
// capability flags.
type AnalysisConfig struct {
	// SentimentShiftDays shifts aggregated sentiment forward by N days
	// before alignment: sentiment on day D is paired with the return on
	// day D+N. Zero pairs same-day observations.
	SentimentShiftDays int `envconfig:"SENTIMENT_SHIFT_DAYS" default:"0"`

	MovingAverageWindow int `envconfig:"MA_WINDOW" default:"5"`
	RSIPeriod           int `envconfig:"RSI_PERIOD" default:"14"`
	VolatilityWindow    int `envconfig:"VOLATILITY_WINDOW" default:"20"`

	Topics     int `envconfig:"TOPICS" default:"5"`
	TopicWords int `envconfig:"TOPIC_WORDS" default:"10"`
	TFIDFTopK  int `envconfig:"TFIDF_TOP_K" default:"20"`

	// PublisherMixWindow is the rolling window (in observed days) of the
	// publisher-share series.
	PublisherMixWindow int `envconfig:"PUBLISHER_MIX_WINDOW" default:"30"`

	// Capability flags. Extended indicators cover MACD, Bollinger Bands
	// and rolling volatility; when disabled their snapshot fields stay
	// null in the report.
	DisableExtendedIndicators bool `envconfig:"DISABLE_EXTENDED_INDICATORS" default:"false"`
	SkipTFIDF                 bool `envconfig:"SKIP_TFIDF" default:"false"`
	SkipTopics                bool `envconfig:"SKIP_TOPICS" default:"false"`

	// CorrelationWorkers bounds the per-ticker correlation fan-out.
	CorrelationWorkers int `envconfig:"CORRELATION_WORKERS" default:"4"`
}

type ErrorTrackingConfig struct {
	Enabled     bool   `envconfig:"ERROR_TRACKING_ENABLED" default:"false"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"development"`
}

// Load reads configuration from environment variables
// It first tries to load .env file (useful for local development)
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process env config")
	}

	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	for i, t := range c.Data.Tickers {
		c.Data.Tickers[i] = strings.ToUpper(strings.TrimSpace(t))
	}
	if c.Analysis.CorrelationWorkers < 1 {
		c.Analysis.CorrelationWorkers = 1
	}
}
