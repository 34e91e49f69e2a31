package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	ProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "quantscout",
			Subsystem: "provider",
			Name:      "latency_seconds",
			Help:      "Latency of upstream provider calls",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"provider", "op"},
	)

	ProviderFallthroughs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quantscout",
			Subsystem: "provider",
			Name:      "fallthroughs_total",
			Help:      "Times a provider yielded nothing and the next backend was tried",
		},
		[]string{"provider", "op"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(ProviderLatency, ProviderFallthroughs)
	})
}
