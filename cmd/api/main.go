package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	blobmem "animal-rescue/internal/adapters/blob/memory"
	blobs3 "animal-rescue/internal/adapters/blob/s3"
	notifymem "animal-rescue/internal/adapters/notify/memory"
	"animal-rescue/internal/adapters/notify/smtp"
	"animal-rescue/internal/adapters/notify/webhook"
	"animal-rescue/internal/adapters/storage/postgres"
	"animal-rescue/internal/adapters/storage/sqlite"
	"animal-rescue/internal/adapters/storage/sqlstore"
	"animal-rescue/internal/platform/config"
	"animal-rescue/internal/platform/logger"
	"animal-rescue/internal/platform/metrics"
	"animal-rescue/internal/ports/blob"
	"animal-rescue/internal/ports/notify"
	"animal-rescue/internal/router"
	"animal-rescue/internal/scheduler"
)

// @title Animal Rescue API
// @version 1.0
// @description Reportes de animales en situación de riesgo y notificaciones a organizaciones de rescate.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	if err := run(log); err != nil {
		log.Error("server stopped with error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(log logger.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, dialect, err := openDB(cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	images, err := openBlobStore(ctx, cfg)
	if err != nil {
		return err
	}

	sink, err := openSink(cfg, log)
	if err != nil {
		return err
	}

	m := metrics.New()
	app, err := router.New(router.Options{
		DB:      db,
		Dialect: dialect,
		Images:  images,
		Sink:    sink,
		Sender:  cfg.NotifyFrom,
		Metrics: m,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	gauge := scheduler.NewStatusGauge(app.Reports, m, cfg.StatusGaugeCron, log.With(map[string]any{"component": "scheduler"}))
	if err := gauge.Start(ctx); err != nil {
		return err
	}
	defer gauge.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      app.Handler,
		ReadTimeout:  15 * time.Second, // subida de imágenes
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":   srv.Addr,
			"db":     cfg.DBDriver,
			"blob":   cfg.BlobDriver,
			"notify": cfg.NotifyDriver,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openDB(cfg config.Config) (*sql.DB, sqlstore.Dialect, error) {
	switch cfg.DBDriver {
	case "postgres":
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			return nil, 0, fmt.Errorf("open postgres: %w", err)
		}
		return db, postgres.Dialect, nil
	case "sqlite":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, 0, err
		}
		return db, sqlite.Dialect, nil
	default:
		return nil, 0, nil
	}
}

func openBlobStore(ctx context.Context, cfg config.Config) (blob.Store, error) {
	if cfg.BlobDriver != "s3" {
		return blobmem.NewStore(), nil
	}
	store, err := blobs3.New(ctx, blobs3.Config{
		Region:    cfg.BlobS3Region,
		Bucket:    cfg.BlobS3Bucket,
		Endpoint:  cfg.BlobS3Endpoint,
		PathStyle: cfg.BlobS3PathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("open s3 blob store: %w", err)
	}
	return store, nil
}

func openSink(cfg config.Config, log logger.Logger) (notify.Sink, error) {
	switch cfg.NotifyDriver {
	case "smtp":
		return smtp.New(smtp.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			Timeout:  cfg.NotifyTimeout,
		})
	case "webhook":
		return webhook.New(webhook.Config{
			URL:     cfg.NotifyWebhookURL,
			Token:   cfg.NotifyWebhookToken,
			Timeout: cfg.NotifyTimeout,
		})
	default:
		return notifymem.NewSink(log.With(map[string]any{"component": "notify"})), nil
	}
}
