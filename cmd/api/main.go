package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkin-tracker/internal/adapters/location/httpgeo"
	"checkin-tracker/internal/adapters/publish/kafka"
	pg "checkin-tracker/internal/adapters/storage/postgres"
	"checkin-tracker/internal/config"
	"checkin-tracker/internal/domain/checkins"
	"checkin-tracker/internal/platform/logger"
	"checkin-tracker/internal/router"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title Checkin Tracker API
// @version 1.0
// @description Ingesta y normalización de check-ins manuales y por tag NFC.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config load failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
		log.Info("using postgres store", nil)
	} else {
		log.Info("using in-memory store", nil)
	}

	opts := router.Options{
		DB:      db,
		Logger:  log,
		Scan:    cfg.ScanConfig(),
		FixWait: cfg.LocationFixWait,
		Handler: checkins.HandlerOptions{
			StrictEmptyName: cfg.StrictEmptyName,
			MapTimeLayout:   cfg.MapTimeLayout,
		},
	}

	if cfg.GeoURL != "" {
		geo, err := httpgeo.New(cfg.GeoURL, cfg.GeoTimeout, log)
		if err != nil {
			log.Error("geo provider init failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer geo.Wait()
		opts.Location, opts.LocationUpdater = geo, geo
		log.Info("location from http endpoint", map[string]any{"url": cfg.GeoURL})
	}

	if pub := kafka.NewPublisher(cfg.KafkaBrokersList(), cfg.KafkaTopic, log); pub != nil {
		defer func() {
			if err := pub.Close(); err != nil {
				log.Warn("kafka publisher close failed", map[string]any{"error": err.Error()})
			}
		}()
		opts.Observers = append(opts.Observers, pub)
		log.Info("publishing check-ins to kafka", map[string]any{"topic": cfg.KafkaTopic})
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	opts.Registry = reg

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		// Un scan puede esperar hasta SCAN_TIMEOUT.
		WriteTimeout: cfg.ScanTimeout + 10*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.HTTPAddr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
		return
	}
	log.Info("server stopped", nil)
}
