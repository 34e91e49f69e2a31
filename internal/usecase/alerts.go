package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"QuantScout/internal/domain/models"
	"QuantScout/internal/domain/repository"
	applogger "QuantScout/pkg/logger"
)

const (
	quietStartHour = 23
	quietEndHour   = 7
)

// AlertDispatcher turns actionable signals into push messages. It deduplicates
// by symbol, decision and wall-clock minute, suppresses sends during overnight
// quiet hours, and treats delivery as fire-and-forget: a failed send is logged
// and never retried.
type AlertDispatcher struct {
	sender  repository.AlertSender
	metrics repository.Metrics
	logger  *applogger.Logger
	loc     *time.Location
	now     func() time.Time

	mu   sync.Mutex
	seen map[string]struct{}
}

func NewAlertDispatcher(sender repository.AlertSender, metrics repository.Metrics, logger *applogger.Logger) *AlertDispatcher {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		// No tzdata on the host; quiet hours then follow local time.
		loc = time.Local
	}
	return &AlertDispatcher{
		sender:  sender,
		metrics: metrics,
		logger:  logger,
		loc:     loc,
		now:     time.Now,
		seen:    make(map[string]struct{}),
	}
}

// SetClock overrides the dispatcher's clock. Test hook.
func (d *AlertDispatcher) SetClock(now func() time.Time) { d.now = now }

// Dispatch pushes an alert for sig unless it is a HOLD, a duplicate, or falls
// inside quiet hours. The dedup key is recorded before the quiet-hours check
// and before the send, so a suppressed or failed alert still will not fire
// again within the same minute.
func (d *AlertDispatcher) Dispatch(ctx context.Context, sig models.Signal, quote *models.Quote, ind models.IndicatorSnapshot, sent models.SentimentReading) {
	if sig.Decision == models.DecisionHold {
		return
	}

	now := d.now()
	key := fmt.Sprintf("%s_%s_%s", sig.Symbol, sig.Decision, now.In(d.loc).Format("15:04"))

	d.mu.Lock()
	if _, dup := d.seen[key]; dup {
		d.mu.Unlock()
		d.metrics.RecordAlertSuppressed("dedup")
		return
	}
	d.seen[key] = struct{}{}
	d.mu.Unlock()

	if d.quiet(now) {
		d.metrics.RecordAlertSuppressed("quiet_hours")
		return
	}

	if d.sender == nil || !d.sender.Available() {
		d.metrics.RecordAlertSuppressed("sender_unavailable")
		return
	}

	if err := d.sender.Send(ctx, renderAlert(sig, quote, ind, sent)); err != nil {
		d.logger.Warn("alert send failed",
			applogger.String("symbol", sig.Symbol),
			applogger.String("decision", string(sig.Decision)),
			applogger.Error(err))
		return
	}
	d.metrics.RecordAlertSent(sig.Symbol, string(sig.Decision))
}

func (d *AlertDispatcher) quiet(now time.Time) bool {
	h := now.In(d.loc).Hour()
	return h >= quietStartHour || h < quietEndHour
}

func renderAlert(sig models.Signal, quote *models.Quote, ind models.IndicatorSnapshot, sent models.SentimentReading) string {
	var price float64
	if quote != nil {
		price = quote.Price
	}
	headline := sent.Provenance
	if headline == "" {
		headline = sent.Headline
	}
	return fmt.Sprintf("🦅 QUANTSCOUT ALERT\n%s %s\n$%.2f | RSI: %.1f\n%s",
		sig.Decision, sig.Symbol, price, ind.RSI, headline)
}
