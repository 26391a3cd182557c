// Package app hosts installed auth pages and serves them over HTTP.
//
// The App owns the page table the installers mutate. Its lifecycle is
// configure-then-serve: pages are installed at startup, the table is sealed
// the moment a handler is built, and serving only ever reads it. This makes
// the single-writer assumption explicit instead of conventional.
package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/clerkmount/clerkmount/pkg/assets"
	"github.com/clerkmount/clerkmount/pkg/metrics"
	"github.com/clerkmount/clerkmount/pkg/render"
	"github.com/clerkmount/clerkmount/pkg/routekey"
	"github.com/clerkmount/clerkmount/pkg/vdom"
)

const tracerName = "github.com/clerkmount/clerkmount/pkg/app"

// Default metrics are created once per process: registering the same
// collectors twice in the default Prometheus registry panics.
var (
	defaultMetrics     *metrics.Metrics
	defaultMetricsOnce sync.Once
)

func defaultAppMetrics() *metrics.Metrics {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = metrics.New()
	})
	return defaultMetrics
}

// App is the host application: the page table plus the HTTP surface that
// serves it.
type App struct {
	pages map[string]*vdom.VNode

	config   Config
	logger   *slog.Logger
	renderer *render.Renderer
	metrics  *metrics.Metrics
	tracer   trace.Tracer

	sealed      atomic.Bool
	handlerOnce sync.Once
	handler     http.Handler
}

// New creates a new application with the given configuration.
func New(cfg Config) *App {
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}
	if cfg.AssetsPrefix == "" {
		cfg.AssetsPrefix = "/assets/"
	}
	if !strings.HasSuffix(cfg.AssetsPrefix, "/") {
		cfg.AssetsPrefix += "/"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := cfg.Metrics
	if m == nil {
		m = defaultAppMetrics()
	}

	return &App{
		pages:    make(map[string]*vdom.VNode),
		config:   cfg,
		logger:   logger,
		renderer: render.NewRenderer(render.RendererConfig{Pretty: cfg.Pretty}),
		metrics:  m,
		tracer:   otel.Tracer(tracerName),
	}
}

// =============================================================================
// Page Table
// =============================================================================

// SetPage inserts a page tree into the page table under the given key.
// Existing entries are silently overwritten. Panics once the app is
// sealed: pages must be installed before serving begins.
func (a *App) SetPage(key string, page *vdom.VNode) {
	if a.sealed.Load() {
		panic(fmt.Sprintf("app: page table is sealed, cannot install %q (install pages before serving)", key))
	}
	if _, exists := a.pages[key]; exists {
		a.logger.Debug("overwriting page", "key", key)
	}
	a.pages[key] = page
	a.metrics.RecordInstall()
	a.logger.Debug("page installed", "key", key)
}

// Page returns the page tree stored under key.
func (a *App) Page(key string) (*vdom.VNode, bool) {
	page, ok := a.pages[key]
	return page, ok
}

// Pages returns a copy of the page table.
func (a *App) Pages() map[string]*vdom.VNode {
	out := make(map[string]*vdom.VNode, len(a.pages))
	for k, v := range a.pages {
		out[k] = v
	}
	return out
}

// Len returns the number of installed pages.
func (a *App) Len() int {
	return len(a.pages)
}

// Seal freezes the page table. Further SetPage calls panic. Seal is
// idempotent and is called implicitly by Handler and Run.
func (a *App) Seal() {
	a.sealed.Store(true)
}

// Sealed reports whether the page table is frozen.
func (a *App) Sealed() bool {
	return a.sealed.Load()
}

// Config returns the application configuration.
func (a *App) Config() Config {
	return a.config
}

// =============================================================================
// HTTP Surface
// =============================================================================

// Handler seals the page table and returns the HTTP handler serving the
// installed pages, metrics, and branding assets.
func (a *App) Handler() http.Handler {
	a.handlerOnce.Do(func() {
		a.Seal()
		a.handler = a.buildHandler()
	})
	return a.handler
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.Handler().ServeHTTP(w, r)
}

// Run seals the app and listens on addr.
func (a *App) Run(addr string) error {
	a.logger.Info("serving auth pages", "addr", addr, "pages", len(a.pages))
	return http.ListenAndServe(addr, a.Handler())
}

// buildHandler assembles the chi router.
func (a *App) buildHandler() http.Handler {
	r := chi.NewRouter()

	metricsHandler := a.config.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	if a.config.Assets != nil {
		r.Get(a.config.AssetsPrefix+"*", a.serveAsset)
		r.Head(a.config.AssetsPrefix+"*", a.serveAsset)
	}

	if a.config.DevMode && a.config.Reload != nil {
		r.Handle("/_clerkmount/reload", a.config.Reload)
	}

	// Installed pages match by the catch-all key convention, not by chi
	// patterns, so they hang off the router's fallback.
	r.NotFound(a.servePage)

	return r
}

// servePage resolves the request path against the page table and renders
// the matching page.
func (a *App) servePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	key, page, ok := a.match(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	_, span := a.tracer.Start(r.Context(), "clerkmount.render_page",
		trace.WithAttributes(
			attribute.String("page.key", key),
			attribute.String("http.path", r.URL.Path),
		))
	defer span.End()

	start := time.Now()
	var buf bytes.Buffer
	err := a.renderer.RenderPage(&buf, render.PageData{
		Body:        page,
		Title:       a.config.Title,
		Lang:        a.config.Lang,
		StyleSheets: a.config.StyleSheets,
		Styles:      a.config.Styles,
		BodyScripts: a.config.BodyScripts,
	})
	a.metrics.RecordRender(key, time.Since(start).Seconds(), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		a.logger.Error("page render failed", "key", key, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if a.config.DevMode {
		w.Header().Set("Cache-Control", "no-store")
	}
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		a.logger.Debug("write response", "key", key, "error", err)
	}
}

// match finds the page for a request path. When several catch-all keys
// cover the path, the one with the longest base route wins.
func (a *App) match(path string) (string, *vdom.VNode, bool) {
	keys := make([]string, 0, len(a.pages))
	for key := range a.pages {
		if routekey.Match(key, path) {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return "", nil, false
	}

	sort.Slice(keys, func(i, j int) bool {
		bi, _ := routekey.Base(keys[i])
		bj, _ := routekey.Base(keys[j])
		return len(bi) > len(bj)
	})
	best := keys[0]
	return best, a.pages[best], true
}

// serveAsset streams a branding asset from the configured source.
func (a *App) serveAsset(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, a.config.AssetsPrefix)

	rc, contentType, err := a.config.Assets.Open(r.Context(), name)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		a.logger.Error("asset fetch failed", "name", name, "error", err)
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}
	defer rc.Close()

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, rc); err != nil {
		a.logger.Debug("asset stream interrupted", "name", name, "error", err)
	}
}
