package usecase

import (
	"context"
	"errors"
	"testing"

	"QuantScout/internal/domain/models"
	"QuantScout/internal/domain/repository"
	applogger "QuantScout/pkg/logger"
)

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

type fakePriceSource struct {
	name      string
	available bool
	price     float64
	err       error
	calls     int
}

func (f *fakePriceSource) Name() string    { return f.name }
func (f *fakePriceSource) Available() bool { return f.available }
func (f *fakePriceSource) LatestPrice(context.Context, string) (float64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.price, nil
}

type fakeBarSource struct {
	name      string
	available bool
	closes    []float64
	err       error
	calls     int
}

func (f *fakeBarSource) Name() string    { return f.name }
func (f *fakeBarSource) Available() bool { return f.available }
func (f *fakeBarSource) DailyCloses(context.Context, string) ([]float64, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.closes, nil
}

type fakeNewsSource struct {
	name      string
	available bool
	headline  string
	err       error
}

func (f *fakeNewsSource) Name() string    { return f.name }
func (f *fakeNewsSource) Available() bool { return f.available }
func (f *fakeNewsSource) LatestHeadline(context.Context, string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.headline, nil
}

type fakeScorer struct {
	available bool
	score     float64
}

func (f *fakeScorer) Available() bool      { return f.available }
func (f *fakeScorer) Score(string) float64 { return f.score }

type fakeSender struct {
	available bool
	err       error
	sent      []string
}

func (f *fakeSender) Available() bool { return f.available }
func (f *fakeSender) Send(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, text)
	return nil
}

type fakeMetrics struct {
	scans          int
	signals        map[string]int
	alertsSent     int
	suppressed     map[string]int
	providerErrors int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{signals: make(map[string]int), suppressed: make(map[string]int)}
}

func (m *fakeMetrics) RecordScan(float64)              { m.scans++ }
func (m *fakeMetrics) RecordSignal(d string)           { m.signals[d]++ }
func (m *fakeMetrics) RecordAlertSent(_, _ string)     { m.alertsSent++ }
func (m *fakeMetrics) RecordAlertSuppressed(r string)  { m.suppressed[r]++ }
func (m *fakeMetrics) RecordProviderError(string)      { m.providerErrors++ }
func (m *fakeMetrics) RecordLastPrice(string, float64) {}
func (m *fakeMetrics) RecordLastRSI(string, float64)   {}

type fakePublisher struct {
	published []*models.ScanResult
	err       error
}

func (p *fakePublisher) PublishScan(_ context.Context, res *models.ScanResult) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, res)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

var errProvider = errors.New("provider unavailable")

func priceSources(srcs ...*fakePriceSource) []repository.PriceSource {
	out := make([]repository.PriceSource, len(srcs))
	for i, s := range srcs {
		out[i] = s
	}
	return out
}

func barSources(srcs ...*fakeBarSource) []repository.BarSource {
	out := make([]repository.BarSource, len(srcs))
	for i, s := range srcs {
		out[i] = s
	}
	return out
}

func newsSources(srcs ...*fakeNewsSource) []repository.NewsSource {
	out := make([]repository.NewsSource, len(srcs))
	for i, s := range srcs {
		out[i] = s
	}
	return out
}
