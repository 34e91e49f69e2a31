package usecase

import (
	"math"
	"testing"

	"QuantScout/internal/domain/models"
)

func TestDecideTrendBuy(t *testing.T) {
	q := &models.Quote{Price: 110}
	ind := models.IndicatorSnapshot{SMA20: 100, RSI: 50}
	sent := models.SentimentReading{Score: 0.2}

	sig := Decide("AAPL", q, ind, sent)
	if sig.Decision != models.DecisionBuy {
		t.Fatalf("expected BUY, got %s", sig.Decision)
	}
	if math.Abs(sig.Confidence-0.82) > 1e-9 {
		t.Fatalf("expected confidence 0.82, got %v", sig.Confidence)
	}
}

func TestDecideTrendSell(t *testing.T) {
	q := &models.Quote{Price: 90}
	ind := models.IndicatorSnapshot{SMA20: 100, RSI: 40}
	sent := models.SentimentReading{Score: -0.3}

	sig := Decide("AAPL", q, ind, sent)
	if sig.Decision != models.DecisionSell {
		t.Fatalf("expected SELL, got %s", sig.Decision)
	}
	if sig.Confidence != 0.8 {
		t.Fatalf("expected confidence 0.8, got %v", sig.Confidence)
	}
}

func TestDecideOversoldBuy(t *testing.T) {
	q := &models.Quote{Price: 95}
	ind := models.IndicatorSnapshot{SMA20: 100, RSI: 30}
	sent := models.SentimentReading{Score: 0}

	sig := Decide("AAPL", q, ind, sent)
	if sig.Decision != models.DecisionBuy {
		t.Fatalf("expected BUY, got %s", sig.Decision)
	}
	if sig.Confidence != 0.5 {
		t.Fatalf("expected confidence 0.5, got %v", sig.Confidence)
	}
}

func TestDecideTrendBeatsOversold(t *testing.T) {
	// Above trend and oversold at once: the trend rule wins.
	q := &models.Quote{Price: 110}
	ind := models.IndicatorSnapshot{SMA20: 100, RSI: 30}
	sent := models.SentimentReading{Score: 0.2}

	sig := Decide("AAPL", q, ind, sent)
	if sig.Decision != models.DecisionBuy {
		t.Fatalf("expected BUY, got %s", sig.Decision)
	}
	if math.Abs(sig.Confidence-0.82) > 1e-9 {
		t.Fatalf("expected trend confidence 0.82, got %v", sig.Confidence)
	}
}

func TestDecideNoPrice(t *testing.T) {
	ind := models.IndicatorSnapshot{SMA20: 100, RSI: 30}

	sig := Decide("AAPL", nil, ind, models.SentimentReading{})
	if sig.Decision != models.DecisionHold || sig.Confidence != 0 {
		t.Fatalf("expected HOLD with zero confidence, got %s %v", sig.Decision, sig.Confidence)
	}
}

func TestDecideNoIndicators(t *testing.T) {
	q := &models.Quote{Price: 95}

	sig := Decide("AAPL", q, models.IndicatorSnapshot{}, models.SentimentReading{})
	if sig.Decision != models.DecisionHold {
		t.Fatalf("expected HOLD, got %s", sig.Decision)
	}
}

func TestDecideNeutralHold(t *testing.T) {
	q := &models.Quote{Price: 100.5}
	ind := models.IndicatorSnapshot{SMA20: 100, RSI: 55}
	sent := models.SentimentReading{Score: 0.05}

	sig := Decide("AAPL", q, ind, sent)
	if sig.Decision != models.DecisionHold {
		t.Fatalf("expected HOLD, got %s", sig.Decision)
	}
}
