// Package monitor exposes a thread registry as prometheus metrics.
//
// Register the collector with any prometheus registry:
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(monitor.NewCollector(list))
package monitor
