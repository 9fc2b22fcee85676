package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry builds the registry served on the metrics endpoint: build info,
// process stats, go runtime GC/memory/scheduler metrics, plus any extra collectors.
func NewRegistry(extraCollectors ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(
				collectors.MetricsGC,
				collectors.MetricsMemory,
				collectors.MetricsScheduler,
			),
		),
	)
	for _, c := range extraCollectors {
		if c != nil {
			promRegistry.MustRegister(c)
		}
	}
	return promRegistry
}
