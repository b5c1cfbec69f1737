// Package metric exposes bucketmap occupancy as Prometheus metrics.
//
// It provides a prometheus.Collector that snapshots a map's bucket
// statistics at scrape time, for monitoring entry counts and key
// distribution across buckets.
//
// Usage:
//
//	m, _ := bucketmap.New[string, int](64)
//	prometheus.MustRegister(metric.NewCollector(m))
//
// Scrapes take one bucket read lock at a time, so a scrape never
// blocks writers for longer than a single bucket count.
package metric
