package di

import (
	"fmt"

	"QuantScout/internal/domain/repository"
	internalrepo "QuantScout/internal/repository"
	"QuantScout/internal/service/alpaca"
	"QuantScout/internal/service/cache"
	"QuantScout/internal/service/googlenews"
	"QuantScout/internal/service/polygon"
	"QuantScout/internal/service/sentiment"
	"QuantScout/internal/service/telegram"
	"QuantScout/internal/service/tiingo"
	"QuantScout/internal/service/yahoo"
	"QuantScout/internal/usecase"
	"QuantScout/pkg/config"
	pkgkafka "QuantScout/pkg/kafka"
	applogger "QuantScout/pkg/logger"
	"QuantScout/pkg/metrics"
	"QuantScout/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideIndicatorCache selects the indicator cache backend: Redis when
// configured, the in-process TTL map otherwise.
func ProvideIndicatorCache(cfg *config.Config) cache.BytesCache {
	if cfg.Indicators.Redis.Enabled {
		return cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Indicators.Redis.Addr,
			Password: cfg.Indicators.Redis.Password,
			DB:       cfg.Indicators.Redis.DB,
		})
	}
	return cache.NewTTLCache()
}

// ProvidePriceSources builds the price fallback chain: Alpaca then Polygon.
func ProvidePriceSources(cfg *config.Config) []repository.PriceSource {
	return []repository.PriceSource{
		alpaca.New(cfg.Alpaca.KeyID, cfg.Alpaca.SecretKey, cfg.Alpaca.DataURL),
		polygon.New(cfg.Polygon.APIKey, cfg.Polygon.BaseURL),
	}
}

// ProvideBarSources builds the history fallback chain: Alpaca then Yahoo.
func ProvideBarSources(cfg *config.Config) []repository.BarSource {
	return []repository.BarSource{
		alpaca.New(cfg.Alpaca.KeyID, cfg.Alpaca.SecretKey, cfg.Alpaca.DataURL),
		yahoo.New(),
	}
}

// ProvideNewsSources builds the headline fallback chain: Tiingo then Google.
func ProvideNewsSources(cfg *config.Config) []repository.NewsSource {
	return []repository.NewsSource{
		tiingo.New(cfg.Tiingo.APIKey, cfg.Tiingo.BaseURL),
		googlenews.New(),
	}
}

// ProvideSentimentScorer creates the VADER scorer, or a disabled one.
func ProvideSentimentScorer(cfg *config.Config) repository.SentimentScorer {
	return sentiment.New(cfg.Sentiment.Enabled)
}

// ProvideAlertSender creates the Telegram sender.
func ProvideAlertSender(cfg *config.Config) repository.AlertSender {
	return telegram.New(cfg.Telegram.Token, cfg.Telegram.ChatID)
}

// ProvideScanPublisher creates the Kafka scan publisher when enabled; a nil
// Publisher means scans stay local.
func ProvideScanPublisher(cfg *config.Config) (repository.Publisher, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaScanPublisher(producer, cfg.Kafka.Topic), nil
}

// ProvideQuoteFetcher creates the price use case.
func ProvideQuoteFetcher(sources []repository.PriceSource, m repository.Metrics, l *applogger.Logger) *usecase.QuoteFetcher {
	return usecase.NewQuoteFetcher(sources, m, l)
}

// ProvideIndicatorEngine creates the indicator use case.
func ProvideIndicatorEngine(cfg *config.Config, sources []repository.BarSource, c cache.BytesCache, m repository.Metrics, l *applogger.Logger) *usecase.IndicatorEngine {
	return usecase.NewIndicatorEngine(sources, c, cfg.Indicators.CacheTTL, m, l)
}

// ProvideSentimentFetcher creates the sentiment use case.
func ProvideSentimentFetcher(scorer repository.SentimentScorer, sources []repository.NewsSource, m repository.Metrics, l *applogger.Logger) *usecase.SentimentFetcher {
	return usecase.NewSentimentFetcher(scorer, sources, m, l)
}

// ProvideAlertDispatcher creates the alert use case.
func ProvideAlertDispatcher(sender repository.AlertSender, m repository.Metrics, l *applogger.Logger) *usecase.AlertDispatcher {
	return usecase.NewAlertDispatcher(sender, m, l)
}

// ProvideScanner assembles the scan loop.
func ProvideScanner(
	cfg *config.Config,
	quotes *usecase.QuoteFetcher,
	indicators *usecase.IndicatorEngine,
	sent *usecase.SentimentFetcher,
	alerts *usecase.AlertDispatcher,
	pub repository.Publisher,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.Scanner {
	return usecase.NewScanner(
		cfg.Watchlist(),
		quotes,
		indicators,
		sent,
		alerts,
		pub,
		m,
		l,
		cfg.Scan.Interval,
	)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, scanner *usecase.Scanner, pub repository.Publisher, l *applogger.Logger) *server.App {
	return server.New(cfg, scanner, pub, l)
}
