package repository

import (
	"context"

	"QuantScout/internal/domain/models"
)

// PriceSource yields the latest traded price for a symbol. Sources report
// Available()==false when their credentials are missing; the caller skips
// them silently rather than treating that as an error.
type PriceSource interface {
	Name() string
	Available() bool
	LatestPrice(ctx context.Context, symbol string) (float64, error)
}

// BarSource yields an ordered sequence of daily closing prices, oldest first.
type BarSource interface {
	Name() string
	Available() bool
	DailyCloses(ctx context.Context, symbol string) ([]float64, error)
}

// NewsSource yields the most recent headline mentioning a symbol.
type NewsSource interface {
	Name() string
	Available() bool
	LatestHeadline(ctx context.Context, symbol string) (string, error)
}

// SentimentScorer scores a piece of text with a compound polarity in [-1, 1].
type SentimentScorer interface {
	Available() bool
	Score(text string) float64
}

// AlertSender delivers a rendered alert message, best effort.
type AlertSender interface {
	Available() bool
	Send(ctx context.Context, text string) error
}

// Publisher forwards completed scans to downstream consumers.
type Publisher interface {
	PublishScan(ctx context.Context, res *models.ScanResult) error
	Close() error
}

// Metrics records operational counters for the scanner.
type Metrics interface {
	RecordScan(seconds float64)
	RecordSignal(decision string)
	RecordAlertSent(symbol, decision string)
	RecordAlertSuppressed(reason string)
	RecordProviderError(provider string)
	RecordLastPrice(symbol string, price float64)
	RecordLastRSI(symbol string, rsi float64)
}
