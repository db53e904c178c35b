// Package monitoring exposes Prometheus metrics for the site: request
// latency, menu saves and publishes, form submissions, and image
// generations.
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects and serves the application metrics.
type Metrics struct {
	registry *prometheus.Registry

	MenuSaves        *prometheus.CounterVec
	FormSubmissions  *prometheus.CounterVec
	ImageGenerations *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
}

// New creates a metrics collector with its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		MenuSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "soupshoppe_menu_saves_total",
			Help: "Menu save operations by outcome (draft, published, rejected).",
		}, []string{"outcome"}),
		FormSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "soupshoppe_form_submissions_total",
			Help: "Lead-capture form submissions by form.",
		}, []string{"form"}),
		ImageGenerations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "soupshoppe_image_generations_total",
			Help: "Image generation attempts by outcome.",
		}, []string{"outcome"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "soupshoppe_http_request_duration_seconds",
			Help:    "HTTP request latency by method, path and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}

	m.registry.MustRegister(m.MenuSaves, m.FormSubmissions, m.ImageGenerations, m.requestDuration)
	return m
}

// Handler serves the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request latency for every route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
