// Package metrics implements the tools StatsClient on top of prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/twitsprout/tools"
)

// Metric names recorded by the service.
const (
	HTTPRequestDuration = "http_request_duration_seconds"
	DBQueryDuration     = "db_query_duration_seconds"
	HostingRequests     = "hosting_requests_total"
)

var _ tools.StatsClient = (*Stats)(nil)

// Stats records the service metrics on a prometheus registry. Metrics are
// declared up front; values recorded under an unknown name are dropped.
type Stats struct {
	reg        *prometheus.Registry
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	histograms map[string]*prometheus.HistogramVec
}

// New registers the service metrics on a fresh registry.
func New(namespace string) *Stats {
	s := &Stats{
		reg:        prometheus.NewRegistry(),
		counters:   map[string]*prometheus.CounterVec{},
		gauges:     map[string]*prometheus.GaugeVec{},
		histograms: map[string]*prometheus.HistogramVec{},
	}
	s.histogram(namespace, HTTPRequestDuration, "Duration of HTTP requests in seconds.", "code", "route")
	s.histogram(namespace, DBQueryDuration, "Duration of database queries in seconds.", "query", "status")
	s.counter(namespace, HostingRequests, "Calls made to the media hosting provider.", "op", "status")
	return s
}

func (s *Stats) histogram(ns, name, help string, labels ...string) {
	h := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: ns,
		Name:      name,
		Help:      help,
		Buckets:   prometheus.DefBuckets,
	}, labels)
	s.reg.MustRegister(h)
	s.histograms[name] = h
}

func (s *Stats) counter(ns, name, help string, labels ...string) {
	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: ns,
		Name:      name,
		Help:      help,
	}, labels)
	s.reg.MustRegister(c)
	s.counters[name] = c
}

// Count increments the named counter.
func (s *Stats) Count(name string, incBy float64, labels []string) {
	c, ok := s.counters[name]
	if !ok {
		return
	}
	if m, err := c.GetMetricWithLabelValues(labels...); err == nil {
		m.Add(incBy)
	}
}

// Gauge sets the named gauge.
func (s *Stats) Gauge(name string, value float64, labels []string) {
	g, ok := s.gauges[name]
	if !ok {
		return
	}
	if m, err := g.GetMetricWithLabelValues(labels...); err == nil {
		m.Set(value)
	}
}

// Histogram observes value on the named histogram.
func (s *Stats) Histogram(name string, value float64, labels []string) {
	h, ok := s.histograms[name]
	if !ok {
		return
	}
	if m, err := h.GetMetricWithLabelValues(labels...); err == nil {
		m.Observe(value)
	}
}

// Handler serves the registry in the prometheus exposition format.
func (s *Stats) Handler() http.Handler {
	return promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (s *Stats) Registry() *prometheus.Registry {
	return s.reg
}
