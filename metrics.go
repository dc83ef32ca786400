package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry      *prometheus.Registry
	pageViews     *prometheus.CounterVec
	searches      *prometheus.CounterVec
	searchResults prometheus.Histogram
	themeChanges  *prometheus.CounterVec
}

// newMetrics builds a private registry so tests can create as many as they like.
func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		pageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "page_views_total",
			Help:      "Tracked page views by route.",
		}, []string{"route"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "project_searches_total",
			Help:      "Project filter evaluations by category.",
		}, []string{"category"}),
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "portfolio",
			Name:      "project_search_results",
			Help:      "Number of projects returned per filter evaluation.",
			Buckets:   prometheus.LinearBuckets(0, 1, 10),
		}),
		themeChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "theme_changes_total",
			Help:      "Theme preference saves by resulting theme.",
		}, []string{"theme"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.pageViews,
		m.searches,
		m.searchResults,
		m.themeChanges,
	)
	return m
}

func (m *metrics) observeSearch(filter FilterState, results int) {
	m.searches.WithLabelValues(filter.Category).Inc()
	m.searchResults.Observe(float64(results))
}

func (m *metrics) handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
