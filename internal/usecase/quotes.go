package usecase

import (
	"context"
	"time"

	"QuantScout/internal/domain/models"
	"QuantScout/internal/domain/repository"
	servicemetrics "QuantScout/internal/service/metrics"
	applogger "QuantScout/pkg/logger"
)

// QuoteFetcher resolves the latest price for a symbol by walking an ordered
// chain of price providers. Unavailable providers are skipped, failing ones
// logged and fallen through; when the chain is exhausted the symbol simply
// has no price this pass.
type QuoteFetcher struct {
	sources []repository.PriceSource
	metrics repository.Metrics
	logger  *applogger.Logger
}

func NewQuoteFetcher(sources []repository.PriceSource, metrics repository.Metrics, logger *applogger.Logger) *QuoteFetcher {
	servicemetrics.Register()
	return &QuoteFetcher{
		sources: sources,
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch returns nil when no provider yields a usable price.
func (f *QuoteFetcher) Fetch(ctx context.Context, symbol string) *models.Quote {
	for _, src := range f.sources {
		if !src.Available() {
			continue
		}

		start := time.Now()
		price, err := src.LatestPrice(ctx, symbol)
		servicemetrics.ProviderLatency.WithLabelValues(src.Name(), "price").Observe(time.Since(start).Seconds())

		if err != nil {
			f.metrics.RecordProviderError(src.Name())
			servicemetrics.ProviderFallthroughs.WithLabelValues(src.Name(), "price").Inc()
			f.logger.Debug("price provider fell through",
				applogger.String("provider", src.Name()),
				applogger.String("symbol", symbol),
				applogger.Error(err))
			continue
		}

		return &models.Quote{Price: price, Source: src.Name()}
	}
	return nil
}
