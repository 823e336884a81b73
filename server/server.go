// Package server provides the HTTP server for the school activities service.
//
// The server exposes a REST API over the in-memory activity registry,
// letting students view activities and sign up for or unregister from them.
//
// # Endpoints
//
//   - GET / - Redirects to the static landing page
//   - GET /health - Simple health check, returns "ok"
//   - GET /activities - Returns all activities keyed by name
//   - POST /activities/{activity}/signup?email=E - Signs a student up
//   - DELETE /activities/{activity}/unregister?email=E - Removes a student
//   - GET /api/status - Server build info and registry totals
//   - GET /metrics - Prometheus metrics
//
// # Example
//
//	cfg, err := config.LoadConfig("/etc/activities/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv, err := server.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/nomis52/activities/buildinfo"
	"github.com/nomis52/activities/logging"
	"github.com/nomis52/activities/metrics"
	"github.com/nomis52/activities/registry"
	"github.com/nomis52/activities/server/config"
	"github.com/nomis52/activities/server/cron"
	"github.com/nomis52/activities/server/handlers"
	"github.com/nomis52/activities/server/types"
)

//go:embed static
var staticFiles embed.FS

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultShutdownTimeout = 5 * time.Second

	jobName = "activities"
)

// Server is the HTTP server for the activities service.
type Server struct {
	addr            string
	logger          *slog.Logger
	registry        *registry.Registry
	collectors      *metrics.Collectors
	snapshotTrigger *cron.Trigger
	httpServer      *http.Server
	props           types.ServerProperties
}

// Option configures a Server.
type Option func(*Server) error

// WithListenAddr overrides the address the server listens on.
func WithListenAddr(addr string) Option {
	return func(s *Server) error {
		s.addr = addr
		return nil
	}
}

// New creates a Server from the given configuration.
// It initializes the logger, seeds the registry, and wires the metrics
// snapshot trigger when a remote write URL is configured.
func New(cfg *config.ServerConfig, opts ...Option) (*Server, error) {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	roster, err := loadRoster(cfg.SeedFile)
	if err != nil {
		return nil, err
	}

	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("failed to get hostname: %w", err)
	}

	reg := registry.New(roster)

	s := &Server{
		addr:       cfg.Listener.Addr,
		logger:     logger.Logger,
		registry:   reg,
		collectors: metrics.NewCollectors(cfg.Monitoring.MetricsPrefix),
		props: types.ServerProperties{
			Build:     buildinfo.Get(),
			StartedAt: time.Now().UTC(),
			Hostname:  hostname,
		},
	}

	if cfg.Monitoring.VictoriaMetricsURL != "" {
		pusher := metrics.NewPusher(metrics.PushConfig{
			URL:      cfg.Monitoring.VictoriaMetricsURL,
			Prefix:   cfg.Monitoring.MetricsPrefix,
			Job:      jobName,
			Instance: hostname,
		})
		snapshotter := metrics.NewSnapshotter(reg, pusher, s.logger)
		trigger, err := cron.New(cfg.Monitoring.SnapshotSchedule, snapshotter, s.logger)
		if err != nil {
			return nil, fmt.Errorf("creating snapshot trigger: %w", err)
		}
		s.snapshotTrigger = trigger
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.logger.Info("registry seeded",
		"activities", reg.Len(),
		"participants", reg.ParticipantCount(),
		"seed_file", cfg.SeedFile,
	)

	return s, nil
}

func loadRoster(seedFile string) (map[string]registry.Activity, error) {
	if seedFile != "" {
		return registry.LoadFile(seedFile)
	}
	return registry.LoadDefault()
}

// Logger returns the server's logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// Registry returns the activity registry.
func (s *Server) Registry() *registry.Registry {
	return s.registry
}

// Properties returns metadata about the running server instance.
func (s *Server) Properties() types.ServerProperties {
	return s.props
}

// Run starts the HTTP server and blocks until the context is cancelled.
// It performs a graceful shutdown when the context is done.
// If a snapshot trigger is configured, it will be started automatically.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      s.withRequestLog(mux),
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	}

	if s.snapshotTrigger != nil {
		s.logger.Info("starting snapshot trigger",
			"next_run", s.snapshotTrigger.NextRun(),
		)
		s.snapshotTrigger.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	activitiesHandler := handlers.NewActivitiesHandler(s.registry)
	signupHandler := handlers.NewSignupHandler(s.registry, s.collectors)
	unregisterHandler := handlers.NewUnregisterHandler(s.registry, s.collectors)
	statusHandler := handlers.NewStatusHandler(s, s.registry)

	// API endpoints
	mux.HandleFunc("GET /health", handlers.HandleHealth)
	mux.Handle("GET /activities", activitiesHandler)
	mux.Handle("POST /activities/{activity}/signup", signupHandler)
	mux.Handle("DELETE /activities/{activity}/unregister", unregisterHandler)
	mux.Handle("GET /api/status", statusHandler)
	mux.Handle("GET /metrics", s.collectors.Handler())

	// Static landing page
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		s.logger.Error("failed to create static file system", "error", err)
		return
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})
}
