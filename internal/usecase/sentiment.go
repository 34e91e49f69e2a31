package usecase

import (
	"context"
	"fmt"
	"time"

	"QuantScout/internal/domain/models"
	"QuantScout/internal/domain/repository"
	servicemetrics "QuantScout/internal/service/metrics"
	applogger "QuantScout/pkg/logger"
)

// SentimentFetcher pulls one recent headline for a symbol and scores it.
// News providers are tried in order; the provenance string carries which
// backend the headline came from so rows and alerts can show it verbatim.
type SentimentFetcher struct {
	scorer  repository.SentimentScorer
	sources []repository.NewsSource
	metrics repository.Metrics
	logger  *applogger.Logger
}

func NewSentimentFetcher(scorer repository.SentimentScorer, sources []repository.NewsSource, metrics repository.Metrics, logger *applogger.Logger) *SentimentFetcher {
	servicemetrics.Register()
	return &SentimentFetcher{
		scorer:  scorer,
		sources: sources,
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch returns a neutral reading when the scorer is disabled or no provider
// has a headline. The score is always 0 in those cases so the decision policy
// sees "no sentiment evidence" rather than a stale value.
func (f *SentimentFetcher) Fetch(ctx context.Context, symbol string) models.SentimentReading {
	if f.scorer == nil || !f.scorer.Available() {
		return models.SentimentReading{Provenance: "scorer unavailable"}
	}

	for _, src := range f.sources {
		if !src.Available() {
			continue
		}

		start := time.Now()
		title, err := src.LatestHeadline(ctx, symbol)
		servicemetrics.ProviderLatency.WithLabelValues(src.Name(), "news").Observe(time.Since(start).Seconds())

		if err != nil {
			f.metrics.RecordProviderError(src.Name())
			servicemetrics.ProviderFallthroughs.WithLabelValues(src.Name(), "news").Inc()
			f.logger.Debug("news provider fell through",
				applogger.String("provider", src.Name()),
				applogger.String("symbol", symbol),
				applogger.Error(err))
			continue
		}

		return models.SentimentReading{
			Score:      f.scorer.Score(title),
			Headline:   title,
			Provenance: fmt.Sprintf("[%s] %s", src.Name(), title),
		}
	}

	return models.SentimentReading{Provenance: "No Data"}
}
