// Package metrics exports the load statistics of a historical store as
// Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tzlist/tzoffset/historical"
)

const namespace = "tzoffset"

// StatsSource is satisfied by *historical.Store.
type StatsSource interface {
	Stats() historical.Stats
}

// Collector reads the store's counters at scrape time.
type Collector struct {
	src StatsSource

	loads    *prometheus.Desc
	failures *prometheus.Desc
	resident *prometheus.Desc
}

// NewCollector returns a collector over src.
func NewCollector(src StatsSource) *Collector {
	return &Collector{
		src: src,
		loads: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "historical", "loads_total"),
			"Historical tables loaded, including failed loads.",
			nil, nil,
		),
		failures: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "historical", "load_failures_total"),
			"Historical tables that failed to decode.",
			nil, nil,
		),
		resident: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "historical", "resident_zones"),
			"Zones whose historical table is resident.",
			nil, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.loads
	ch <- c.failures
	ch <- c.resident
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.loads, prometheus.CounterValue, float64(s.Loads))
	ch <- prometheus.MustNewConstMetric(c.failures, prometheus.CounterValue, float64(s.Failures))
	ch <- prometheus.MustNewConstMetric(c.resident, prometheus.GaugeValue, float64(s.Resident))
}
