// Package metrics exposes Prometheus instrumentation for installed pages.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the Prometheus metrics.
type Config struct {
	// Namespace is the metrics namespace (default: "clerkmount").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures the metrics.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "clerkmount",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for the page-serving path.
type Metrics struct {
	pagesInstalled prometheus.Counter
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
}

// New creates the metrics and registers them with the configured registry.
func New(opts ...Option) *Metrics {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		pagesInstalled: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "pages_installed_total",
			Help:        "Total number of auth pages installed into the page table",
			ConstLabels: config.ConstLabels,
		}),

		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "page_renders_total",
			Help:        "Total number of page renders by page key and status",
			ConstLabels: config.ConstLabels,
		}, []string{"key", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "page_render_duration_seconds",
			Help:        "Page render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"key"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "page_render_errors_total",
			Help:        "Total number of page render errors by page key",
			ConstLabels: config.ConstLabels,
		}, []string{"key"}),
	}
}

// RecordInstall records a page installation.
func (m *Metrics) RecordInstall() {
	if m == nil {
		return
	}
	m.pagesInstalled.Inc()
}

// RecordRender records a completed render.
func (m *Metrics) RecordRender(key string, seconds float64, err error) {
	if m == nil {
		return
	}
	m.renderDuration.WithLabelValues(key).Observe(seconds)
	status := "success"
	if err != nil {
		status = "error"
		m.renderErrors.WithLabelValues(key).Inc()
	}
	m.rendersTotal.WithLabelValues(key, status).Inc()
}
