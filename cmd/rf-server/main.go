package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/signalsfoundry/radar-workbench/internal/config"
	"github.com/signalsfoundry/radar-workbench/internal/httpapi"
	"github.com/signalsfoundry/radar-workbench/internal/logging"
	"github.com/signalsfoundry/radar-workbench/internal/observability"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Exporter:    cfg.Tracing.Exporter,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	}, log)
	if err != nil {
		log.Error(ctx, "tracing init failed", logging.Err(err))
		os.Exit(1)
	}

	metrics, err := observability.NewCollector(nil)
	if err != nil {
		log.Error(ctx, "metrics init failed", logging.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	apiCfg := huma.DefaultConfig("Radar Workbench API", httpapi.Version)
	api := humachi.New(router, apiCfg)

	handler := httpapi.NewCalculatorHandler(log, metrics, cfg.Pattern.MaxSamples)
	httpapi.RegisterRoutes(api, handler)

	router.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		log.Info(ctx, "rf-server listening", logging.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "server failed", logging.Err(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "forced shutdown", logging.Err(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn(ctx, "tracing shutdown failed", logging.Err(err))
	}
	log.Info(ctx, "server exited")
}
