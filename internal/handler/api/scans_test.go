package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"QuantScout/internal/domain/models"
	applogger "QuantScout/pkg/logger"

	"github.com/labstack/echo/v4"
)

type stubScanner struct {
	res *models.ScanResult
}

func (s *stubScanner) Latest() *models.ScanResult { return s.res }

func (s *stubScanner) Subscribe() (<-chan *models.ScanResult, func()) {
	ch := make(chan *models.ScanResult, 1)
	return ch, func() {}
}

func scanFixture() *models.ScanResult {
	price := 150.0
	return &models.ScanResult{
		Timestamp: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		Rows: []models.ScanRow{
			{Symbol: "AAPL", Price: &price, Source: "Alpaca", RSI: 45.2, Decision: models.DecisionBuy, Headline: "good news"},
			{Symbol: "TSLA", RSI: 0, Decision: models.DecisionHold, Headline: "No Data"},
		},
		Summary: models.ScanSummary{Scanned: 2, Buys: 1, Sells: 0, AvgRSI: 22.6},
	}
}

func newTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testHandler(t *testing.T, res *models.ScanResult) *ScansHandler {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewScansHandler(l, &stubScanner{res: res})
}

func TestScanReturnsLatest(t *testing.T) {
	h := testHandler(t, scanFixture())
	c, rec := newTestContext(t, "/api/scan")

	if err := h.Scan(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data models.ScanResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Rows) != 2 || body.Data.Rows[0].Symbol != "AAPL" {
		t.Fatalf("unexpected rows %+v", body.Data.Rows)
	}
}

func envelopeStatus(t *testing.T, rec *httptest.ResponseRecorder) int {
	t.Helper()
	var body struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return body.Status
}

func TestScanBeforeFirstPass(t *testing.T) {
	h := testHandler(t, nil)
	c, rec := newTestContext(t, "/api/scan")

	if err := h.Scan(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if got := envelopeStatus(t, rec); got != http.StatusNotFound {
		t.Fatalf("expected envelope status 404, got %d", got)
	}
}

func TestScanRowFindsSymbol(t *testing.T) {
	h := testHandler(t, scanFixture())
	c, rec := newTestContext(t, "/api/scan/tsla")
	c.SetParamNames("symbol")
	c.SetParamValues("tsla")

	if err := h.ScanRow(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data models.ScanRow `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Symbol != "TSLA" || body.Data.Decision != models.DecisionHold {
		t.Fatalf("unexpected row %+v", body.Data)
	}
}

func TestScanRowUnknownSymbol(t *testing.T) {
	h := testHandler(t, scanFixture())
	c, rec := newTestContext(t, "/api/scan/msft")
	c.SetParamNames("symbol")
	c.SetParamValues("msft")

	if err := h.ScanRow(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if got := envelopeStatus(t, rec); got != http.StatusNotFound {
		t.Fatalf("expected envelope status 404, got %d", got)
	}
}

func TestSummary(t *testing.T) {
	h := testHandler(t, scanFixture())
	c, rec := newTestContext(t, "/api/summary")

	if err := h.Summary(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	var body struct {
		Data models.ScanSummary `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Scanned != 2 || body.Data.Buys != 1 {
		t.Fatalf("unexpected summary %+v", body.Data)
	}
}

func TestHealth(t *testing.T) {
	h := testHandler(t, nil)
	c, rec := newTestContext(t, "/health")

	if err := h.Health(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
