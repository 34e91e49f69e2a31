package usecase

import (
	"context"
	"sync"
	"time"

	"QuantScout/internal/domain/models"
	"QuantScout/internal/domain/repository"
	applogger "QuantScout/pkg/logger"
	"QuantScout/pkg/util"
)

// Scanner drives full passes over the watchlist: price, indicators, sentiment
// and decision per symbol, then a summary, alerts and a snapshot for the API
// layer. One pass runs at a time; symbols are scanned sequentially in
// watchlist order.
type Scanner struct {
	watchlist  []string
	quotes     *QuoteFetcher
	indicators *IndicatorEngine
	sentiment  *SentimentFetcher
	alerts     *AlertDispatcher
	publisher  repository.Publisher
	metrics    repository.Metrics
	logger     *applogger.Logger
	interval   time.Duration

	mu   sync.RWMutex
	last *models.ScanResult
	subs map[chan *models.ScanResult]struct{}
}

func NewScanner(
	watchlist []string,
	quotes *QuoteFetcher,
	indicators *IndicatorEngine,
	sentiment *SentimentFetcher,
	alerts *AlertDispatcher,
	publisher repository.Publisher,
	metrics repository.Metrics,
	logger *applogger.Logger,
	interval time.Duration,
) *Scanner {
	return &Scanner{
		watchlist:  watchlist,
		quotes:     quotes,
		indicators: indicators,
		sentiment:  sentiment,
		alerts:     alerts,
		publisher:  publisher,
		metrics:    metrics,
		logger:     logger,
		interval:   interval,
		subs:       make(map[chan *models.ScanResult]struct{}),
	}
}

// Run scans immediately, then on every tick until ctx is cancelled.
func (s *Scanner) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		res := s.ScanOnce(ctx)
		s.logger.Info("scan complete",
			applogger.Int("scanned", res.Summary.Scanned),
			applogger.Int("buys", res.Summary.Buys),
			applogger.Int("sells", res.Summary.Sells),
			applogger.Float64("avg_rsi", res.Summary.AvgRSI))

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// ScanOnce performs a single pass over the whole watchlist. A failure on one
// symbol drops that symbol's row and moves on; the pass itself never aborts.
func (s *Scanner) ScanOnce(ctx context.Context) *models.ScanResult {
	start := time.Now()

	rows := make([]models.ScanRow, 0, len(s.watchlist))
	var rsis []float64
	var buys, sells int

	for _, symbol := range s.watchlist {
		row, ok := s.scanSymbol(ctx, symbol)
		if !ok {
			continue
		}
		rows = append(rows, row)
		rsis = append(rsis, row.RSI)
		switch row.Decision {
		case models.DecisionBuy:
			buys++
		case models.DecisionSell:
			sells++
		}
	}

	res := &models.ScanResult{
		Timestamp: start,
		Rows:      rows,
		Summary: models.ScanSummary{
			Scanned: len(rows),
			Buys:    buys,
			Sells:   sells,
			AvgRSI:  util.Round1(util.Mean(rsis)),
		},
	}

	s.metrics.RecordScan(time.Since(start).Seconds())
	s.store(res)
	s.broadcast(res)

	if s.publisher != nil {
		if err := s.publisher.PublishScan(ctx, res); err != nil {
			s.logger.Warn("scan publish failed", applogger.Error(err))
		}
	}
	return res
}

func (s *Scanner) scanSymbol(ctx context.Context, symbol string) (row models.ScanRow, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("symbol scan panicked",
				applogger.String("symbol", symbol),
				applogger.Any("panic", r))
			ok = false
		}
	}()

	quote := s.quotes.Fetch(ctx, symbol)
	ind := s.indicators.Snapshot(ctx, symbol)
	sent := s.sentiment.Fetch(ctx, symbol)
	sig := Decide(symbol, quote, ind, sent)

	s.metrics.RecordSignal(string(sig.Decision))
	s.metrics.RecordLastRSI(symbol, ind.RSI)
	if quote != nil {
		s.metrics.RecordLastPrice(symbol, quote.Price)
	}

	s.alerts.Dispatch(ctx, sig, quote, ind, sent)

	headline := sent.Headline
	if headline == "" {
		headline = sent.Provenance
	}
	row = models.ScanRow{
		Symbol:   symbol,
		RSI:      util.Round1(ind.RSI),
		Decision: sig.Decision,
		Headline: headline,
	}
	if quote != nil {
		price := quote.Price
		row.Price = &price
		row.Source = quote.Source
	}
	return row, true
}

// Latest returns the most recent completed scan, or nil before the first one.
func (s *Scanner) Latest() *models.ScanResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Subscribe registers for completed scans. The returned cancel func must be
// called when the subscriber goes away. Slow subscribers miss results rather
// than stalling the scan loop.
func (s *Scanner) Subscribe() (<-chan *models.ScanResult, func()) {
	ch := make(chan *models.ScanResult, 1)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, ch)
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Scanner) store(res *models.ScanResult) {
	s.mu.Lock()
	s.last = res
	s.mu.Unlock()
}

func (s *Scanner) broadcast(res *models.ScanResult) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ch := range s.subs {
		select {
		case ch <- res:
		default:
		}
	}
}
