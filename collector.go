package typeaccessor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes a Metrics instance as a prometheus.Collector so builds
// can be observed alongside the embedding service's other metrics.
type Collector struct {
	metrics *Metrics

	modulesFetched  *prometheus.Desc
	fetchErrors     *prometheus.Desc
	decodeErrors    *prometheus.Desc
	modulesWalked   *prometheus.Desc
	structsIndexed  *prometheus.Desc
	fieldsIndexed   *prometheus.Desc
	fetchSeconds    *prometheus.Desc
	buildsStarted   *prometheus.Desc
	buildsSucceeded *prometheus.Desc
}

// NewCollector wraps m for registration with a prometheus.Registerer.
func NewCollector(m *Metrics) *Collector {
	return &Collector{
		metrics: m,
		modulesFetched: prometheus.NewDesc(
			"typeaccessor_modules_fetched_total",
			"Modules successfully fetched from the module source.",
			nil, nil),
		fetchErrors: prometheus.NewDesc(
			"typeaccessor_fetch_errors_total",
			"Module fetch attempts that failed.",
			nil, nil),
		decodeErrors: prometheus.NewDesc(
			"typeaccessor_decode_errors_total",
			"Fetched module payloads that failed to decode.",
			nil, nil),
		modulesWalked: prometheus.NewDesc(
			"typeaccessor_modules_walked_total",
			"Modules whose struct fields have been indexed.",
			nil, nil),
		structsIndexed: prometheus.NewDesc(
			"typeaccessor_structs_indexed_total",
			"Struct definitions added to a field-type index.",
			nil, nil),
		fieldsIndexed: prometheus.NewDesc(
			"typeaccessor_fields_indexed_total",
			"Struct fields added to a field-type index.",
			nil, nil),
		fetchSeconds: prometheus.NewDesc(
			"typeaccessor_fetch_seconds_total",
			"Total time spent fetching modules.",
			nil, nil),
		buildsStarted: prometheus.NewDesc(
			"typeaccessor_builds_started_total",
			"Builds started.",
			nil, nil),
		buildsSucceeded: prometheus.NewDesc(
			"typeaccessor_builds_succeeded_total",
			"Builds that produced an index.",
			nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.modulesFetched
	ch <- c.fetchErrors
	ch <- c.decodeErrors
	ch <- c.modulesWalked
	ch <- c.structsIndexed
	ch <- c.fieldsIndexed
	ch <- c.fetchSeconds
	ch <- c.buildsStarted
	ch <- c.buildsSucceeded
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.metrics.Snapshot()
	counter := func(desc *prometheus.Desc, v float64) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, v)
	}
	counter(c.modulesFetched, float64(s.ModulesFetched))
	counter(c.fetchErrors, float64(s.FetchErrors))
	counter(c.decodeErrors, float64(s.DecodeErrors))
	counter(c.modulesWalked, float64(s.ModulesWalked))
	counter(c.structsIndexed, float64(s.StructsIndexed))
	counter(c.fieldsIndexed, float64(s.FieldsIndexed))
	counter(c.fetchSeconds, s.FetchTimeTotal.Seconds())
	counter(c.buildsStarted, float64(s.BuildsStarted))
	counter(c.buildsSucceeded, float64(s.BuildsSucceeded))
}

// Verify interface compliance.
var _ prometheus.Collector = (*Collector)(nil)
