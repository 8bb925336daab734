// Package main is the entry point for the outlet onboarding API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/app"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/config"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/handler"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/handler/gen"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/metrics"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/middleware"
	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Metrics ----------------------------------------------------------
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// --- Board ------------------------------------------------------------
	// Opening the board loads the snapshot (or seeds it) and, for postgres,
	// applies pending migrations first.
	board, err := app.Open(context.Background(), cfg, logger, m)
	if err != nil {
		slog.Error("failed to open board", "error", err)
		os.Exit(1)
	}
	defer board.Close()

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit → metrics.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewMetrics(m))

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	// The board service backs every API group.
	srv := handler.NewServer(board.Service, board.Service, board.Service, board.Service)
	gen.HandlerWithOptions(
		gen.NewStrictHandlerWithOptions(srv, nil, handler.StrictOptions(logger)),
		gen.ChiServerOptions{BaseRouter: r, ErrorHandlerFunc: handler.ParamErrorHandler},
	)

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-stop:
	case err := <-serveErr:
		slog.Error("server error", "error", err)
		board.Close()
		os.Exit(1)
	}
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	// Drain mirror replication before the deferred Close releases backends.
	board.Close()
	slog.Info("server stopped")
}
