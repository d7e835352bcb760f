package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/gce-reservation-helper/internal/infra/shutdown"
)

// Server serves the reservation status page.
type Server struct {
	logger     *slog.Logger
	progress   progressReader
	host       string
	port       string
	server     *http.Server
	listener   net.Listener
	ready      chan struct{}
	inShutdown atomic.Bool
}

// New creates a new status HTTP server instance
func New(logger *slog.Logger, progress progressReader, host, port string) *Server {
	if host == "" {
		host = defaultHost
	}

	if port == "" {
		port = defaultPort
	}

	return &Server{
		logger:   logger,
		progress: progress,
		host:     host,
		port:     port,
		ready:    make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*Server)(nil)

// Name returns the name of the server component
func (s *Server) Name() string {
	return "status-server"
}

// Ping returns nil when the server is ready to serve.
func (s *Server) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		return nil
	default:
		return fmt.Errorf("status server is not ready")
	}
}

// Handler returns the router serving the status page.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.GetHead)
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(s.logger.Handler(), slog.LevelDebug),
		NoColor: true,
	}))
	router.Use(middleware.Recoverer)

	router.Get("/", s.handleStatus)
	router.Get("/*", s.handleStatus)

	return router
}

// Start binds the listener and serves in a goroutine. A bind failure is returned.
func (s *Server) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "status server is shutting down, skipping start")

		return nil
	}

	addr := net.JoinHostPort(s.host, s.port)
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}

	lc := &net.ListenConfig{
		KeepAliveConfig: net.KeepAliveConfig{
			Enable: true,
		},
	}

	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen status tcp: %w", err)
	}

	s.listener = listener

	s.logger.InfoContext(ctx, "server started", "url", "http://"+listener.Addr().String())

	go func() {
		close(s.ready)

		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.ErrorContext(ctx, "status server error", "error", err)
		}
	}()

	return nil
}

// Ready returns a channel that is closed when the server is ready to serve requests
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// Shutdown stops accepting connections and waits for in-flight requests
//
//nolint:dupl // mirrors MetricsServer.Shutdown for same lifecycle; dedup would abstract over *http.Server
func (s *Server) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "status server is already shutting down, skipping shutdown")

		return nil // Already shutting down
	}

	defer func() {
		s.logger.InfoContext(ctx, "status server shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down status server")

	if s.server == nil {
		return nil
	}

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.ErrorContext(ctx, "error shutting down status server", "error", err)

		return fmt.Errorf("status server shutdown: %w", err)
	}

	s.logger.InfoContext(ctx, "server stopped")

	return nil
}
