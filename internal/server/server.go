// Package server assembles the router, middleware stack and HTTP listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/emptycheck-api/internal/config"
	"github.com/janisto/emptycheck-api/internal/http/v1/root"
	"github.com/janisto/emptycheck-api/internal/http/v1/routes"
	applog "github.com/janisto/emptycheck-api/internal/platform/logging"
	appmiddleware "github.com/janisto/emptycheck-api/internal/platform/middleware"
	"github.com/janisto/emptycheck-api/internal/platform/respond"
)

const (
	apiTitle        = "Emptiness Check API"
	shutdownTimeout = 10 * time.Second
)

// Server owns the router and the underlying http.Server.
type Server struct {
	cfg    config.Config
	router chi.Router
	http   *http.Server
}

// New builds a server for cfg whose GET / route reports check("abc").
func New(cfg config.Config, check root.EmptinessCheck, version string) *Server {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For; only deploy behind a trusted proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20),
		chimiddleware.GetHead,
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	api := humachi.New(router, apiConfig(version))
	routes.Register(api, check)

	return &Server{
		cfg:    cfg,
		router: router,
		http: &http.Server{
			Handler:           router,
			ReadTimeout:       5 * time.Second,
			ReadHeaderTimeout: 2 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    64 << 10,
		},
	}
}

// apiConfig disables the generated OpenAPI, docs and schema routes along with
// the $schema body field, so GET / is the only route and its body stays minimal.
func apiConfig(version string) huma.Config {
	cfg := huma.DefaultConfig(apiTitle, version)
	cfg.OpenAPIPath = ""
	cfg.DocsPath = ""
	cfg.SchemasPath = ""
	cfg.CreateHooks = nil
	return cfg
}

// Handler returns the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen binds the configured port and logs the port actually bound, which
// differs from the configured one when it is 0. The log goes to ctx's logger.
func (s *Server) Listen(ctx context.Context) (net.Listener, error) {
	addr := s.cfg.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	port := s.cfg.Port
	if tcpAddr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = tcpAddr.Port
	}
	applog.LogInfo(ctx, fmt.Sprintf("server running on port %d", port),
		zap.Int("port", port),
		zap.String("addr", ln.Addr().String()),
	)
	return ln, nil
}

// Serve accepts connections on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.http.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	applog.LogInfo(ctx, "shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	applog.LogInfo(ctx, "server exited")
	return nil
}
