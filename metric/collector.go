package metric

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	bucketmap "github.com/yndnr/bucketmap-go"
)

// Source is the slice of the map surface the collector reads. Every
// *bucketmap.Map satisfies it.
type Source interface {
	BucketCount() int
	Stats() []bucketmap.BucketStat
}

// Collector exports a map's occupancy as Prometheus gauges. Metrics
// are built fresh on every scrape, so registering a Collector adds no
// bookkeeping to the map's write path.
type Collector struct {
	source Source

	entries       *prometheus.Desc
	buckets       *prometheus.Desc
	bucketEntries *prometheus.Desc
}

// Option configures a Collector.
type Option func(*options)

type options struct {
	namespace   string
	constLabels prometheus.Labels
}

// WithNamespace prefixes every metric name with namespace.
func WithNamespace(namespace string) Option {
	return func(o *options) {
		o.namespace = namespace
	}
}

// WithConstLabels attaches labels to every exported metric, for
// telling several registered maps apart.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(o *options) {
		o.constLabels = labels
	}
}

// NewCollector creates a Collector reading from source.
func NewCollector(source Source, opts ...Option) *Collector {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return &Collector{
		source: source,
		entries: prometheus.NewDesc(
			prometheus.BuildFQName(o.namespace, "bucketmap", "entries"),
			"Total number of entries in the map.",
			nil, o.constLabels,
		),
		buckets: prometheus.NewDesc(
			prometheus.BuildFQName(o.namespace, "bucketmap", "buckets"),
			"Number of buckets in the map.",
			nil, o.constLabels,
		),
		bucketEntries: prometheus.NewDesc(
			prometheus.BuildFQName(o.namespace, "bucketmap", "bucket_entries"),
			"Number of entries in each bucket.",
			[]string{"bucket"}, o.constLabels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.buckets
	ch <- c.bucketEntries
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()

	total := 0
	for _, s := range stats {
		total += s.Count
		ch <- prometheus.MustNewConstMetric(
			c.bucketEntries, prometheus.GaugeValue,
			float64(s.Count), strconv.Itoa(s.Index),
		)
	}

	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(total))
	ch <- prometheus.MustNewConstMetric(c.buckets, prometheus.GaugeValue, float64(c.source.BucketCount()))
}
