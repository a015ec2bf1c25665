// Package metrics exposes Prometheus collectors over ledger activity.
// Mounting them behind an HTTP handler is the front-end's job (out of
// scope here); this package only owns the collectors themselves.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements ledger.Recorder with Prometheus gauges and a
// histogram for mining latency.
type Collector struct {
	chainHeight  prometheus.Gauge
	mempoolSize  prometheus.Gauge
	mineDuration prometheus.Histogram
}

// New registers the collectors against reg and returns a Collector
// ready to hand to ledger.NewChain. Passing prometheus.NewRegistry()
// keeps tests isolated from the global default registry.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		chainHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "provenance",
			Name:      "chain_height",
			Help:      "Number of blocks currently in the chain, including genesis.",
		}),
		mempoolSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "provenance",
			Name:      "mempool_size",
			Help:      "Number of transactions currently pending in the mempool.",
		}),
		mineDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "provenance",
			Name:      "mine_duration_seconds",
			Help:      "Wall-clock time spent mining a single block.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	reg.MustRegister(c.chainHeight, c.mempoolSize, c.mineDuration)
	return c
}

func (c *Collector) ObserveChainHeight(height int) { c.chainHeight.Set(float64(height)) }
func (c *Collector) ObserveMempoolSize(size int)   { c.mempoolSize.Set(float64(size)) }
func (c *Collector) ObserveMineDuration(d time.Duration) {
	c.mineDuration.Observe(d.Seconds())
}
