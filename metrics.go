package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ttpr0/go-pathfind/routing"
)

//**********************************************************
// metrics
//**********************************************************

type Metrics struct {
	registry *prometheus.Registry

	SearchTotal        *prometheus.CounterVec
	SearchEdgesRelaxed prometheus.Histogram
	SearchDuration     prometheus.Histogram
	GraphNodes         prometheus.Gauge
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
	}

	m.SearchTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathfind_search_total",
			Help: "Total number of path searches by outcome",
		},
		[]string{"result"},
	)
	m.SearchEdgesRelaxed = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pathfind_search_edges_relaxed",
			Help:    "Number of edges relaxed per successful search",
			Buckets: []float64{10, 100, 1000, 10000, 100000, 1000000},
		},
	)
	m.SearchDuration = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pathfind_search_duration_seconds",
			Help:    "Path search duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1.0, 5.0},
		},
	)
	m.GraphNodes = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "pathfind_graph_nodes",
			Help: "Number of nodes of the loaded graph",
		},
	)
	return m
}

const (
	SEARCH_FOUND   = "found"
	SEARCH_NO_PATH = "no_path"
	SEARCH_INVALID = "invalid"
)

func (self *Metrics) RecordSearch(res routing.Result, err error, duration time.Duration) {
	switch {
	case err == nil:
		self.SearchTotal.WithLabelValues(SEARCH_FOUND).Inc()
		self.SearchEdgesRelaxed.Observe(float64(res.EdgesRelaxed))
	case errors.Is(err, routing.ErrNoPathFound):
		self.SearchTotal.WithLabelValues(SEARCH_NO_PATH).Inc()
	default:
		self.SearchTotal.WithLabelValues(SEARCH_INVALID).Inc()
	}
	self.SearchDuration.Observe(duration.Seconds())
}

func (self *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(self.registry, promhttp.HandlerOpts{})
}
