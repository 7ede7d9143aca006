package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"cosmossdk.io/log"
	gogogateway "github.com/cosmos/gogogateway"
	gogogrpc "github.com/cosmos/gogoproto/grpc"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

const shutdownTimeout = 10 * time.Second

// Server is the agentpay REST gateway.
type Server struct {
	cfg     Config
	logger  log.Logger
	checker NodeChecker

	registry *prometheus.Registry
	metrics  *metrics
	upstream *upstreamMetrics
	limiter  *RateLimiter

	tracer        trace.Tracer
	traceShutdown func(context.Context) error

	router *mux.Router
}

// NewServer wires the routes. conn serves the agentpay query service behind
// /agentpay/v1 and checker backs /health/ready.
func NewServer(ctx context.Context, cfg Config, logger log.Logger, conn gogogrpc.ClientConn, checker NodeChecker) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gateway config: %w", err)
	}

	tracer, shutdown, err := newTracer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	upstream, err := newUpstreamMetrics(registry)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:           cfg,
		logger:        logger.With("server", "gateway"),
		checker:       checker,
		registry:      registry,
		metrics:       newMetrics(registry),
		upstream:      upstream,
		tracer:        tracer,
		traceShutdown: shutdown,
		router:        mux.NewRouter(),
	}

	// gogoproto messages with non-nullable fields need the gogo marshaler
	gwmux := runtime.NewServeMux(
		runtime.WithMarshalerOption(runtime.MIMEWildcard, &gogogateway.JSONPb{
			EmitDefaults: true,
			OrigName:     true,
		}),
	)
	if err := types.RegisterQueryHandlerClient(ctx, gwmux, types.NewQueryClient(upstream.wrap(conn))); err != nil {
		return nil, fmt.Errorf("failed to register query routes: %w", err)
	}

	s.router.Use(requestIDMiddleware, s.instrument)
	if cfg.RateLimit > 0 {
		s.limiter = NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
		s.router.Use(rateLimitMiddleware(s.limiter, s.metrics, s.logger))
	}

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/health/ready", s.handleReady).Methods(http.MethodGet)
	s.router.PathPrefix("/agentpay/").Handler(gwmux)
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	})

	return s, nil
}

// Handler returns the full handler chain with CORS and panic recovery.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{s.logger}),
		handlers.PrintRecoveryStack(false),
	)
	return c.Handler(recovery(s.router))
}

// MetricsHandler serves the gateway's Prometheus registry.
func (s *Server) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	api := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	servers := []*http.Server{api}
	if s.cfg.MetricsAddr != "" {
		m := http.NewServeMux()
		m.Handle("/metrics", s.MetricsHandler())
		servers = append(servers, &http.Server{
			Addr:              s.cfg.MetricsAddr,
			Handler:           m,
			ReadHeaderTimeout: 5 * time.Second,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			s.logger.Info("listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server on %s failed: %w", srv.Addr, err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			errs = append(errs, srv.Shutdown(shutdownCtx))
		}
		errs = append(errs, s.traceShutdown(shutdownCtx), s.upstream.provider.Shutdown(shutdownCtx))
		return errors.Join(errs...)
	})
	return g.Wait()
}

type recoveryLogger struct{ logger log.Logger }

func (l recoveryLogger) Println(v ...any) {
	l.logger.Error("panic serving request", "panic", fmt.Sprint(v...))
}
