package host

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/loomui/loom/pkg/dom"
	"github.com/loomui/loom/pkg/events"
	"github.com/loomui/loom/pkg/render"
)

// App mounts an application into the given container: it performs the first
// render and wires handlers that re-render on events.
type App func(r *render.Renderer, container *dom.Node)

// Config configures a Server.
type Config struct {
	// Addr is the listen address (default ":3000").
	Addr string

	// Title is the page title.
	Title string

	// Namespace is the Prometheus metrics namespace (default "loom").
	Namespace string

	// ReadTimeout bounds how long a websocket read may idle
	// (default 60s).
	ReadTimeout time.Duration

	// Registry is the Prometheus registry to use. Each server gets its
	// own registry by default so servers never collide on metric names.
	Registry *prometheus.Registry
}

func (c *Config) withDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.Title == "" {
		c.Title = "Loom"
	}
	if c.Namespace == "" {
		c.Namespace = "loom"
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 60 * time.Second
	}
	if c.Registry == nil {
		c.Registry = prometheus.NewRegistry()
	}
}

// Server hosts one live tree and its delegation machinery.
type Server struct {
	config   Config
	log      *slog.Logger
	renderer *render.Renderer
	document *dom.Node
	mux      *chi.Mux
	upgrader websocket.Upgrader

	// mu serializes event dispatch and rendering across websocket
	// connections: the core is single-threaded by design, so the host
	// provides the single thread.
	mu sync.Mutex
}

// New creates a Server, runs the app's first render, and mounts the routes.
func New(config Config, app App) *Server {
	config.withDefaults()

	delegator := events.NewDelegator()
	renderer := render.New(delegator,
		render.WithMetrics(render.NewMetrics(config.Namespace, config.Registry)))

	s := &Server{
		config:   config,
		log:      slog.Default().With("component", "host"),
		renderer: renderer,
		document: dom.NewElement("div"),
		mux:      chi.NewRouter(),
	}
	s.document.SetAttr("id", "loom-root")

	app(renderer, s.document)

	s.mux.Use(RequestMetrics(config.Namespace, config.Registry))
	s.mux.Use(Tracing(config.Namespace))
	s.mux.Get("/", s.handleIndex)
	s.mux.Get("/ws", s.handleWS)
	s.mux.Get("/debug/tree", s.handleTree)
	s.mux.Get("/healthz", s.handleHealth)
	s.mux.Handle("/metrics", promhttp.HandlerFor(config.Registry, promhttp.HandlerOpts{}))

	return s
}

// SetLogger replaces the server's logger.
func (s *Server) SetLogger(logger *slog.Logger) {
	s.log = logger
}

// Handler returns the HTTP handler, for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Document returns the live container the app renders into.
func (s *Server) Document() *dom.Node {
	return s.document
}

// Renderer returns the server's renderer.
func (s *Server) Renderer() *render.Renderer {
	return s.renderer
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.config.Addr,
		Handler: s.mux,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	body := s.document.HTML()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(pageShell(s.config.Title, body)))
}

func (s *Server) handleTree(w http.ResponseWriter, req *http.Request) {
	s.mu.Lock()
	dump := dom.Dump(s.document)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(dump))
}

func (s *Server) handleHealth(w http.ResponseWriter, req *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
