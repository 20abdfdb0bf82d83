package citysearch

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/citysearch/distance"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    searches *prometheus.CounterVec
//	}
//
//	func (p *PrometheusCollector) RecordSearch(m distance.Metric, matches int, d time.Duration, err error) {
//	    p.searches.WithLabelValues(m.String()).Inc()
//	}
type MetricsCollector interface {
	// RecordLoad is called once after Open. cities is the registry size,
	// err is nil if successful.
	RecordLoad(cities int, duration time.Duration, err error)

	// RecordSearch is called after each search. matches is the size of the
	// radius result, err is nil if successful.
	RecordSearch(metric distance.Metric, matches int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)                    {}
func (NoopMetricsCollector) RecordSearch(distance.Metric, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount        atomic.Int64
	LoadErrors       atomic.Int64
	LoadedCities     atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
	MatchesTotal     atomic.Int64
	searchesByMetric [3]atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(cities int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadedCities.Store(int64(cities))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(metric distance.Metric, matches int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
		return
	}
	b.MatchesTotal.Add(int64(matches))
	if metric.Valid() {
		b.searchesByMetric[metric].Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	byMetric := make(map[distance.Metric]int64, len(distance.Metrics))
	for _, m := range distance.Metrics {
		byMetric[m] = b.searchesByMetric[m].Load()
	}
	return BasicMetricsStats{
		LoadCount:        b.LoadCount.Load(),
		LoadErrors:       b.LoadErrors.Load(),
		LoadedCities:     b.LoadedCities.Load(),
		SearchCount:      b.SearchCount.Load(),
		SearchErrors:     b.SearchErrors.Load(),
		SearchAvgNanos:   b.getAvgSearchNanos(),
		MatchesTotal:     b.MatchesTotal.Load(),
		SearchesByMetric: byMetric,
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount        int64
	LoadErrors       int64
	LoadedCities     int64
	SearchCount      int64
	SearchErrors     int64
	SearchAvgNanos   int64
	MatchesTotal     int64
	SearchesByMetric map[distance.Metric]int64
}
