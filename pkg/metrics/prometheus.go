// Package metrics bridges registered atomic cells into Prometheus and
// OpenTelemetry. The bridges are read-only: they take one atomic load per
// cell at collection time and never alter cell semantics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/srediag/atomic64/pkg/atomic64"
	"github.com/srediag/atomic64/pkg/registry"
)

// Collector exposes every cell in a registry as one gauge per name.
type Collector struct {
	reg  *registry.Registry
	desc *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a Collector over reg. Register it with a prometheus
// registerer; cells added to reg later show up on the next scrape.
func NewCollector(reg *registry.Registry) *Collector {
	return &Collector{
		reg: reg,
		desc: prometheus.NewDesc(
			"atomic64_cell_value",
			"Current value of a named atomic cell.",
			[]string{"name"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.reg.Range(func(name string, cell *atomic64.Cell) bool {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(cell.Load()), name)
		return true
	})
}
