package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	scansTotal       prometheus.Counter
	scanDuration     prometheus.Histogram
	signalsTotal     *prometheus.CounterVec
	alertsSent       *prometheus.CounterVec
	alertsSuppressed *prometheus.CounterVec
	providerErrors   *prometheus.CounterVec
	lastPrice        *prometheus.GaugeVec
	lastRSI          *prometheus.GaugeVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		scansTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "quantscout_scans_total",
				Help: "Total number of completed watchlist scans",
			},
		),
		scanDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "quantscout_scan_duration_seconds",
				Help:    "Duration of a full watchlist scan in seconds",
				Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
			},
		),
		signalsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quantscout_signals_total",
				Help: "Signals derived per decision",
			},
			[]string{"decision"},
		),
		alertsSent: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quantscout_alerts_sent_total",
				Help: "Alerts delivered to the messaging endpoint",
			},
			[]string{"symbol", "decision"},
		),
		alertsSuppressed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quantscout_alerts_suppressed_total",
				Help: "Alerts suppressed by dedup or quiet hours",
			},
			[]string{"reason"},
		),
		providerErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quantscout_provider_errors_total",
				Help: "Upstream provider failures by provider name",
			},
			[]string{"provider"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "quantscout_last_price",
				Help: "Last fetched price for a symbol",
			},
			[]string{"symbol"},
		),
		lastRSI: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "quantscout_last_rsi",
				Help: "Last computed RSI for a symbol",
			},
			[]string{"symbol"},
		),
	}
}

// RecordScan records a completed scan and its duration.
func (r *Recorder) RecordScan(seconds float64) {
	r.scansTotal.Inc()
	r.scanDuration.Observe(seconds)
}

// RecordSignal records a derived signal decision.
func (r *Recorder) RecordSignal(decision string) {
	r.signalsTotal.WithLabelValues(decision).Inc()
}

// RecordAlertSent records a delivered alert.
func (r *Recorder) RecordAlertSent(symbol, decision string) {
	r.alertsSent.WithLabelValues(symbol, decision).Inc()
}

// RecordAlertSuppressed records an alert held back by dedup or quiet hours.
func (r *Recorder) RecordAlertSuppressed(reason string) {
	r.alertsSuppressed.WithLabelValues(reason).Inc()
}

// RecordProviderError records an upstream provider failure.
func (r *Recorder) RecordProviderError(provider string) {
	r.providerErrors.WithLabelValues(provider).Inc()
}

// RecordLastPrice records the last price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordLastRSI records the last RSI value for a symbol.
func (r *Recorder) RecordLastRSI(symbol string, rsi float64) {
	r.lastRSI.WithLabelValues(symbol).Set(rsi)
}
