package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"QuantScout/internal/domain/models"
	"QuantScout/internal/domain/repository"
	"QuantScout/internal/service/cache"
	servicemetrics "QuantScout/internal/service/metrics"
	applogger "QuantScout/pkg/logger"
)

const (
	// minCloses is the minimum history length for a usable SMA20/RSI pair.
	// Series of 20 closes or fewer are treated the same as a provider failure.
	minCloses = 20

	smaPeriod  = 20
	rsiPeriod  = 14
	cacheScope = "indicators"
)

// IndicatorEngine computes the SMA20/RSI snapshot for a symbol from daily
// closes, walking an ordered chain of bar providers and memoizing results in
// a TTL cache so back-to-back passes do not refetch history.
type IndicatorEngine struct {
	sources []repository.BarSource
	cache   cache.BytesCache
	ttl     time.Duration
	metrics repository.Metrics
	logger  *applogger.Logger
}

func NewIndicatorEngine(sources []repository.BarSource, c cache.BytesCache, ttl time.Duration, metrics repository.Metrics, logger *applogger.Logger) *IndicatorEngine {
	servicemetrics.Register()
	return &IndicatorEngine{
		sources: sources,
		cache:   c,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// Snapshot returns the indicator pair for symbol, from cache when fresh. A
// zero snapshot means no provider produced enough history; callers treat it
// as "indicators unknown", never as a tradable reading.
func (e *IndicatorEngine) Snapshot(ctx context.Context, symbol string) models.IndicatorSnapshot {
	key := fmt.Sprintf("%s:%s", cacheScope, symbol)

	if b, ok, err := e.cache.GetBytes(key); err == nil && ok {
		var snap models.IndicatorSnapshot
		if err := json.Unmarshal(b, &snap); err == nil {
			return snap
		}
	}

	snap := e.compute(ctx, symbol)

	if b, err := json.Marshal(snap); err == nil {
		if err := e.cache.SetBytes(key, b, e.ttl); err != nil {
			e.logger.Warn("indicator cache write failed",
				applogger.String("symbol", symbol),
				applogger.Error(err))
		}
	}
	return snap
}

func (e *IndicatorEngine) compute(ctx context.Context, symbol string) models.IndicatorSnapshot {
	for _, src := range e.sources {
		if !src.Available() {
			continue
		}

		start := time.Now()
		closes, err := src.DailyCloses(ctx, symbol)
		servicemetrics.ProviderLatency.WithLabelValues(src.Name(), "bars").Observe(time.Since(start).Seconds())

		if err != nil {
			e.metrics.RecordProviderError(src.Name())
			servicemetrics.ProviderFallthroughs.WithLabelValues(src.Name(), "bars").Inc()
			e.logger.Debug("bar provider fell through",
				applogger.String("provider", src.Name()),
				applogger.String("symbol", symbol),
				applogger.Error(err))
			continue
		}
		if len(closes) <= minCloses {
			servicemetrics.ProviderFallthroughs.WithLabelValues(src.Name(), "bars").Inc()
			e.logger.Debug("bar provider returned too little history",
				applogger.String("provider", src.Name()),
				applogger.String("symbol", symbol),
				applogger.Int("closes", len(closes)))
			continue
		}

		return models.IndicatorSnapshot{
			SMA20: SMA(closes, smaPeriod),
			RSI:   WilderRSI(closes, rsiPeriod),
		}
	}
	return models.IndicatorSnapshot{}
}

// SMA is the simple moving average of the last period closes. When fewer
// closes than period are given it averages what is there.
func SMA(closes []float64, period int) float64 {
	if len(closes) == 0 {
		return 0
	}
	if len(closes) > period {
		closes = closes[len(closes)-period:]
	}
	var sum float64
	for _, c := range closes {
		sum += c
	}
	return sum / float64(len(closes))
}

// WilderRSI computes the relative strength index over the whole series using
// Wilder's exponential smoothing with alpha = 1/period, seeded from the first
// delta. A series that never lost reads 100, one that never gained reads 0,
// and a perfectly flat series also reads 0 so the value stays JSON-encodable.
func WilderRSI(closes []float64, period int) float64 {
	if len(closes) < 2 {
		return 0
	}

	alpha := 1.0 / float64(period)
	var avgGain, avgLoss float64
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		var gain, loss float64
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		if i == 1 {
			avgGain, avgLoss = gain, loss
			continue
		}
		avgGain = alpha*gain + (1-alpha)*avgGain
		avgLoss = alpha*loss + (1-alpha)*avgLoss
	}

	if avgLoss == 0 {
		if avgGain == 0 {
			return 0
		}
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
