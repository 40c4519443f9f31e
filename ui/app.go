// Package ui serves the generated library reference over HTTP.
package ui

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"statlib/internal"
	"statlib/internal/config"
	"statlib/internal/docgen"
	"statlib/internal/errors"
)

// App is the docs viewer application.
type App struct {
	router   *chi.Mux
	logger   *internal.Logger
	addr     string
	markdown string
	page     []byte
}

// NewApp extracts the reference from the configured source directories and
// wires the router. Extraction happens once; the rendered page is served
// from memory.
func NewApp(cfg *config.Config, dirs []string) (*App, error) {
	pkgs, err := docgen.ExtractDirs(dirs)
	if err != nil {
		return nil, errors.Wrap(err, "extracting reference docs")
	}
	if len(pkgs) == 0 {
		return nil, errors.InvalidInput("no exported functions found under configured sources")
	}

	md := docgen.Markdown(cfg.Docs.Title, pkgs)

	app := &App{
		router:   chi.NewRouter(),
		logger:   internal.DefaultLogger,
		addr:     cfg.Server.Addr,
		markdown: md,
		page:     docgen.RenderHTML(cfg.Docs.Title, md),
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware.
func (a *App) setupMiddleware() {
	a.router.Use(requestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes.
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/reference.md", a.handleMarkdown)
	a.router.Get("/healthz", a.handleHealth)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(a.page)
}

func (a *App) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(a.markdown))
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    a.addr,
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("docs viewer listening on %s", a.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Handler exposes the router for tests.
func (a *App) Handler() http.Handler {
	return a.router
}
