package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"QuantScout/internal/domain/models"
)

func easternClock(t *testing.T, hour, min int) func() time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	ts := time.Date(2026, 3, 2, hour, min, 0, 0, loc)
	return func() time.Time { return ts }
}

func buySignal() models.Signal {
	return models.Signal{Symbol: "AAPL", Decision: models.DecisionBuy, Confidence: 0.82}
}

func testDispatcher(t *testing.T, sender *fakeSender, m *fakeMetrics) *AlertDispatcher {
	t.Helper()
	d := NewAlertDispatcher(sender, m, testLogger(t))
	d.SetClock(easternClock(t, 9, 30))
	return d
}

func TestDispatchSendsActionableSignal(t *testing.T) {
	sender := &fakeSender{available: true}
	m := newFakeMetrics()
	d := testDispatcher(t, sender, m)

	q := &models.Quote{Price: 182.5, Source: "Alpaca"}
	ind := models.IndicatorSnapshot{SMA20: 175, RSI: 54.3}
	sent := models.SentimentReading{Score: 0.3, Headline: "strong quarter", Provenance: "[Tiingo] strong quarter"}

	d.Dispatch(context.Background(), buySignal(), q, ind, sent)
	if len(sender.sent) != 1 {
		t.Fatalf("expected one alert, got %d", len(sender.sent))
	}
	msg := sender.sent[0]
	if !strings.Contains(msg, "BUY AAPL") {
		t.Fatalf("missing decision line: %q", msg)
	}
	if !strings.Contains(msg, "$182.50 | RSI: 54.3") {
		t.Fatalf("missing price line: %q", msg)
	}
	if !strings.Contains(msg, "[Tiingo] strong quarter") {
		t.Fatalf("missing headline line: %q", msg)
	}
	if m.alertsSent != 1 {
		t.Fatalf("expected one sent recorded, got %d", m.alertsSent)
	}
}

func TestDispatchIgnoresHold(t *testing.T) {
	sender := &fakeSender{available: true}
	d := testDispatcher(t, sender, newFakeMetrics())

	sig := models.Signal{Symbol: "AAPL", Decision: models.DecisionHold}
	d.Dispatch(context.Background(), sig, nil, models.IndicatorSnapshot{}, models.SentimentReading{})
	if len(sender.sent) != 0 {
		t.Fatalf("HOLD must not alert, got %d", len(sender.sent))
	}
}

func TestDispatchDedupsWithinMinute(t *testing.T) {
	sender := &fakeSender{available: true}
	m := newFakeMetrics()
	d := testDispatcher(t, sender, m)

	d.Dispatch(context.Background(), buySignal(), nil, models.IndicatorSnapshot{}, models.SentimentReading{})
	d.Dispatch(context.Background(), buySignal(), nil, models.IndicatorSnapshot{}, models.SentimentReading{})
	if len(sender.sent) != 1 {
		t.Fatalf("expected one alert, got %d", len(sender.sent))
	}
	if m.suppressed["dedup"] != 1 {
		t.Fatalf("expected one dedup suppression, got %d", m.suppressed["dedup"])
	}
}

func TestDispatchAllowsNewMinute(t *testing.T) {
	sender := &fakeSender{available: true}
	d := testDispatcher(t, sender, newFakeMetrics())

	d.Dispatch(context.Background(), buySignal(), nil, models.IndicatorSnapshot{}, models.SentimentReading{})
	d.SetClock(easternClock(t, 9, 31))
	d.Dispatch(context.Background(), buySignal(), nil, models.IndicatorSnapshot{}, models.SentimentReading{})
	if len(sender.sent) != 2 {
		t.Fatalf("expected two alerts across minutes, got %d", len(sender.sent))
	}
}

func TestDispatchAllowsDifferentDecision(t *testing.T) {
	sender := &fakeSender{available: true}
	d := testDispatcher(t, sender, newFakeMetrics())

	d.Dispatch(context.Background(), buySignal(), nil, models.IndicatorSnapshot{}, models.SentimentReading{})
	sell := models.Signal{Symbol: "AAPL", Decision: models.DecisionSell, Confidence: 0.8}
	d.Dispatch(context.Background(), sell, nil, models.IndicatorSnapshot{}, models.SentimentReading{})
	if len(sender.sent) != 2 {
		t.Fatalf("expected two alerts for distinct decisions, got %d", len(sender.sent))
	}
}

func TestDispatchQuietHours(t *testing.T) {
	for _, tc := range []struct {
		hour, min int
		quiet     bool
	}{
		{23, 30, true},
		{3, 0, true},
		{6, 59, true},
		{7, 0, false},
		{22, 59, false},
	} {
		sender := &fakeSender{available: true}
		m := newFakeMetrics()
		d := NewAlertDispatcher(sender, m, testLogger(t))
		d.SetClock(easternClock(t, tc.hour, tc.min))

		d.Dispatch(context.Background(), buySignal(), nil, models.IndicatorSnapshot{}, models.SentimentReading{})
		if tc.quiet && len(sender.sent) != 0 {
			t.Fatalf("%02d:%02d: expected quiet-hours suppression", tc.hour, tc.min)
		}
		if !tc.quiet && len(sender.sent) != 1 {
			t.Fatalf("%02d:%02d: expected alert to send", tc.hour, tc.min)
		}
		if tc.quiet && m.suppressed["quiet_hours"] != 1 {
			t.Fatalf("%02d:%02d: expected quiet_hours suppression recorded", tc.hour, tc.min)
		}
	}
}

func TestDispatchSenderUnavailable(t *testing.T) {
	sender := &fakeSender{available: false}
	m := newFakeMetrics()
	d := testDispatcher(t, sender, m)

	d.Dispatch(context.Background(), buySignal(), nil, models.IndicatorSnapshot{}, models.SentimentReading{})
	if len(sender.sent) != 0 {
		t.Fatalf("unavailable sender must not receive alerts")
	}
	if m.suppressed["sender_unavailable"] != 1 {
		t.Fatalf("expected sender_unavailable suppression recorded")
	}
}

func TestDispatchSendFailureIsSwallowed(t *testing.T) {
	sender := &fakeSender{available: true, err: errProvider}
	m := newFakeMetrics()
	d := testDispatcher(t, sender, m)

	d.Dispatch(context.Background(), buySignal(), nil, models.IndicatorSnapshot{}, models.SentimentReading{})
	if m.alertsSent != 0 {
		t.Fatalf("failed send must not count as sent")
	}

	// The dedup key was recorded before the failed send; the same minute
	// stays silent.
	sender.err = nil
	d.Dispatch(context.Background(), buySignal(), nil, models.IndicatorSnapshot{}, models.SentimentReading{})
	if len(sender.sent) != 0 {
		t.Fatalf("dedup must hold after a failed send")
	}
}
