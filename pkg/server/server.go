// Package server exposes the badge catalog and renderer over HTTP.
//
// Routes:
//
//	GET  /healthz                      liveness check
//	GET  /v1/icons                     catalog names
//	GET  /v1/icons/{name}              resolved style and geometry
//	GET  /v1/icons/{name}.{format}     rendered badge (svg, png, pdf, json)
//	POST /v1/render                    render an ad-hoc badge
//	GET  /v1/sheet.{format}            contact sheet of the whole catalog
//
// Rendering endpoints accept ?size= and ?scheme=light|dark. Errors are
// returned as JSON {"code": ..., "message": ...} with status 400 for invalid
// input, 404 for unknown icons, and 500 otherwise.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/badgeicon/pkg/catalog"
	"github.com/matzehuels/badgeicon/pkg/pipeline"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 10 * time.Second

// maxBodyBytes limits POST /v1/render request bodies.
const maxBodyBytes = 1 << 20

// Options configures a Server.
type Options struct {
	// Catalog serves /v1/icons. Nil means catalog.Default().
	Catalog *catalog.Catalog
	// Runner renders artifacts. Nil means an uncached runner.
	Runner *pipeline.Runner
	// Defaults apply when a request leaves size or scheme unset.
	Defaults pipeline.Options
	Logger   *log.Logger
}

// Server is an http.Handler serving badge icons.
type Server struct {
	catalog  *catalog.Catalog
	runner   *pipeline.Runner
	defaults pipeline.Options
	logger   *log.Logger
	router   chi.Router
}

// New creates a Server and registers its routes.
func New(opts Options) *Server {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Runner == nil {
		opts.Runner = pipeline.NewRunner(nil, nil, opts.Logger)
	}
	opts.Defaults.SetDefaults()
	if opts.Defaults.Scheme != pipeline.SchemeDark {
		// Each response carries one variant.
		opts.Defaults.Scheme = pipeline.SchemeLight
	}

	s := &Server{
		catalog:  opts.Catalog,
		runner:   opts.Runner,
		defaults: opts.Defaults,
		logger:   opts.Logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/icons", s.handleListIcons)
		r.Get("/icons/{ref}", s.handleIcon)
		r.Post("/render", s.handleRender)
		r.Get("/sheet.{format}", s.handleSheet)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Code: "NOT_FOUND", Message: "no route for " + r.URL.Path})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Code: "METHOD_NOT_ALLOWED", Message: r.Method + " not allowed"})
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves h on addr until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, readTimeout, writeTimeout time.Duration, logger *log.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return Serve(ctx, ln, h, readTimeout, writeTimeout, logger)
}

// Serve is ListenAndServe on an existing listener.
func Serve(ctx context.Context, ln net.Listener, h http.Handler, readTimeout, writeTimeout time.Duration, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	srv := &http.Server{
		Handler:      h,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
