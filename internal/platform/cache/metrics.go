package cache

import "github.com/prometheus/client_golang/prometheus"

// Collector exports cache statistics as Prometheus metrics.
type Collector struct {
	cache *Cache

	hits          *prometheus.Desc
	misses        *prometheus.Desc
	staleHits     *prometheus.Desc
	coalesced     *prometheus.Desc
	loads         *prometheus.Desc
	loadErrors    *prometheus.Desc
	invalidations *prometheus.Desc
	evictions     *prometheus.Desc
	entries       *prometheus.Desc
}

func NewCollector(c *Cache, namespace string) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "query_cache", name), help, nil, nil)
	}

	return &Collector{
		cache:         c,
		hits:          desc("hits_total", "Reads served from a fresh entry."),
		misses:        desc("misses_total", "Reads that ran a load themselves."),
		staleHits:     desc("stale_hits_total", "Reads served from a stale entry while refreshing in the background."),
		coalesced:     desc("coalesced_total", "Reads that joined a load started by another caller."),
		loads:         desc("loads_total", "Loader executions."),
		loadErrors:    desc("load_errors_total", "Loader executions that returned an error."),
		invalidations: desc("invalidations_total", "Prefix invalidations applied."),
		evictions:     desc("evictions_total", "Entries evicted by the size bound."),
		entries:       desc("entries", "Entries currently cached."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.staleHits
	ch <- c.coalesced
	ch <- c.loads
	ch <- c.loadErrors
	ch <- c.invalidations
	ch <- c.evictions
	ch <- c.entries
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.cache.Stats()

	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses))
	ch <- prometheus.MustNewConstMetric(c.staleHits, prometheus.CounterValue, float64(stats.StaleHits))
	ch <- prometheus.MustNewConstMetric(c.coalesced, prometheus.CounterValue, float64(stats.Coalesced))
	ch <- prometheus.MustNewConstMetric(c.loads, prometheus.CounterValue, float64(stats.Loads))
	ch <- prometheus.MustNewConstMetric(c.loadErrors, prometheus.CounterValue, float64(stats.LoadErrors))
	ch <- prometheus.MustNewConstMetric(c.invalidations, prometheus.CounterValue, float64(stats.Invalidations))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(stats.Evictions))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(stats.Entries))
}
