package monitor

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ternvm/tern/thread"
)

// Collector exports live-thread gauges from a registry snapshot. It
// reads the registry only through Snapshot, so scrapes never hold the
// registry lock across metric construction.
type Collector struct {
	list    *thread.List
	live    *prometheus.Desc
	byState *prometheus.Desc
}

// NewCollector builds a collector over list.
func NewCollector(list *thread.List) *Collector {
	return &Collector{
		list: list,
		live: prometheus.NewDesc(
			"tern_threads_live",
			"Number of registered runtime threads.",
			nil, nil,
		),
		byState: prometheus.NewDesc(
			"tern_threads_by_state",
			"Registered runtime threads by scheduling state.",
			[]string{"state"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.live
	ch <- c.byState
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.list.Snapshot()
	ch <- prometheus.MustNewConstMetric(c.live, prometheus.GaugeValue, float64(len(snap)))

	counts := make(map[thread.State]int)
	for _, t := range snap {
		counts[t.State()]++
	}
	for state, n := range counts {
		ch <- prometheus.MustNewConstMetric(c.byState, prometheus.GaugeValue,
			float64(n), state.String())
	}
}
