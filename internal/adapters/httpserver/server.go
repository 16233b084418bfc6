// Package httpserver serves a site root for previewing, running the render
// hook on every HTML page.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.trai.ch/lessco/internal/adapters/document"
	"go.trai.ch/lessco/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	indexFile       = "index.html"
	requestTimeout  = 60 * time.Second
	shutdownTimeout = 5 * time.Second
)

// RenderFunc runs the render hook on a page before it is sent.
type RenderFunc func(ctx context.Context, doc ports.Document) error

// Server serves files below root.
type Server struct {
	root   string
	render RenderFunc
	logger ports.Logger
	router *chi.Mux
}

// New creates a server for root.
func New(root string, render RenderFunc, logger ports.Logger) *Server {
	s := &Server{
		root:   root,
		render: render,
		logger: logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	static := http.FileServer(http.Dir(s.root))
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		file, ok := s.page(r.URL.Path)
		if !ok {
			static.ServeHTTP(w, r)
			return
		}
		s.handlePage(w, r, file)
	})

	s.router = r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.logger.Info(fmt.Sprintf("serving %s on %s", s.root, addr))
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "server failed"), "addr", addr)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return zerr.Wrap(err, "server shutdown failed")
	}
	return nil
}

// page maps a URL path to an HTML file below root.
func (s *Server) page(urlPath string) (string, bool) {
	file := filepath.Join(s.root, filepath.FromSlash(path.Clean("/"+urlPath)))
	if info, err := os.Stat(file); err == nil && info.IsDir() {
		file = filepath.Join(file, indexFile)
	}
	if document.TypeFromPath(file) != document.TypeHTML {
		return "", false
	}
	info, err := os.Stat(file)
	return file, err == nil && !info.IsDir()
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request, file string) {
	page, err := document.ReadPage(file)
	if err != nil {
		s.logger.Warn(err.Error())
		http.Error(w, "page not readable", http.StatusInternalServerError)
		return
	}

	if err := s.render(r.Context(), page); err != nil {
		s.logger.Warn(fmt.Sprintf("render %s: %v", r.URL.Path, err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := page.WriteTo(w); err != nil {
		s.logger.Debug(fmt.Sprintf("write %s: %v", r.URL.Path, err))
	}
}
