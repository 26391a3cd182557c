package app

import (
	"log/slog"
	"net/http"

	"github.com/clerkmount/clerkmount/pkg/assets"
	"github.com/clerkmount/clerkmount/pkg/metrics"
)

// Config is the application configuration.
type Config struct {
	// Title is the document title rendered on every installed page.
	Title string

	// Lang is the document language attribute. Defaults to "en".
	Lang string

	// StyleSheets are stylesheet paths linked into every page head.
	StyleSheets []string

	// Styles are inline CSS blocks added to every page head.
	Styles []string

	// BodyScripts are raw HTML snippets appended to every page body
	// (e.g. the dev reload client).
	BodyScripts []string

	// Assets serves branding files under AssetsPrefix. Optional.
	Assets assets.Source

	// AssetsPrefix is the URL prefix for branding assets.
	// Defaults to "/assets/".
	AssetsPrefix string

	// Pretty enables pretty-printed HTML output. Development only.
	Pretty bool

	// DevMode relaxes caching headers and enables the reload endpoint
	// when a Reload handler is set.
	DevMode bool

	// Reload handles the dev reload WebSocket endpoint. Optional; only
	// mounted in DevMode.
	Reload http.Handler

	// Metrics instruments the page-serving path. If nil, metrics are
	// recorded against the default registry.
	Metrics *metrics.Metrics

	// MetricsHandler serves GET /metrics. If nil, the Prometheus default
	// handler is used.
	MetricsHandler http.Handler

	// Logger is the structured logger for the application.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultConfig returns a configuration with all defaults applied.
func DefaultConfig() Config {
	return Config{
		Lang:         "en",
		AssetsPrefix: "/assets/",
	}
}
