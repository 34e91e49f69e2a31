package usecase

import (
	"context"
	"testing"
	"time"

	"QuantScout/internal/service/cache"
)

func closesRamp(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func TestSMAAveragesLastPeriod(t *testing.T) {
	closes := closesRamp(30, 1, 1) // 1..30
	got := SMA(closes, 20)
	want := 20.5 // mean of 11..30
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSMAShortSeries(t *testing.T) {
	got := SMA([]float64{2, 4}, 20)
	if got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
}

func TestWilderRSIAllGains(t *testing.T) {
	got := WilderRSI(closesRamp(30, 100, 1), 14)
	if got != 100 {
		t.Fatalf("expected 100 for monotone gains, got %v", got)
	}
}

func TestWilderRSIAllLosses(t *testing.T) {
	got := WilderRSI(closesRamp(30, 200, -1), 14)
	if got != 0 {
		t.Fatalf("expected 0 for monotone losses, got %v", got)
	}
}

func TestWilderRSIFlat(t *testing.T) {
	flat := make([]float64, 30)
	for i := range flat {
		flat[i] = 50
	}
	got := WilderRSI(flat, 14)
	if got != 0 {
		t.Fatalf("expected 0 for a flat series, got %v", got)
	}
}

func TestWilderRSIMixedInRange(t *testing.T) {
	closes := []float64{100, 102, 101, 103, 102, 104, 103, 105, 104, 106,
		105, 107, 106, 108, 107, 109, 108, 110, 109, 111, 110, 112}
	got := WilderRSI(closes, 14)
	if got <= 50 || got >= 100 {
		t.Fatalf("expected RSI in (50, 100) for an upward zigzag, got %v", got)
	}
}

func TestSnapshotRequiresHistory(t *testing.T) {
	src := &fakeBarSource{name: "A", available: true, closes: closesRamp(20, 1, 1)}
	e := NewIndicatorEngine(barSources(src), cache.NewTTLCache(), time.Minute, newFakeMetrics(), testLogger(t))

	snap := e.Snapshot(context.Background(), "AAPL")
	if snap.SMA20 != 0 || snap.RSI != 0 {
		t.Fatalf("expected zero snapshot for 20 closes, got %+v", snap)
	}
}

func TestSnapshotFallsThroughToSecondSource(t *testing.T) {
	primary := &fakeBarSource{name: "A", available: true, err: errProvider}
	secondary := &fakeBarSource{name: "B", available: true, closes: closesRamp(30, 100, 1)}
	e := NewIndicatorEngine(barSources(primary, secondary), cache.NewTTLCache(), time.Minute, newFakeMetrics(), testLogger(t))

	snap := e.Snapshot(context.Background(), "AAPL")
	if snap.RSI != 100 {
		t.Fatalf("expected RSI 100 from fallback source, got %v", snap.RSI)
	}
	if primary.calls != 1 || secondary.calls != 1 {
		t.Fatalf("expected one call each, got %d and %d", primary.calls, secondary.calls)
	}
}

func TestSnapshotCacheHitSkipsProviders(t *testing.T) {
	src := &fakeBarSource{name: "A", available: true, closes: closesRamp(30, 100, 1)}
	e := NewIndicatorEngine(barSources(src), cache.NewTTLCache(), time.Minute, newFakeMetrics(), testLogger(t))

	first := e.Snapshot(context.Background(), "AAPL")
	second := e.Snapshot(context.Background(), "AAPL")
	if src.calls != 1 {
		t.Fatalf("expected a single provider call, got %d", src.calls)
	}
	if first != second {
		t.Fatalf("expected identical snapshots, got %+v and %+v", first, second)
	}
}
