package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"weathercompare/internal/climate"
	"weathercompare/internal/config"
	db "weathercompare/internal/db"
	httpapi "weathercompare/internal/httpapi"
	"weathercompare/internal/metrics"
	"weathercompare/internal/migrate"
	comparison "weathercompare/internal/modules/comparison"
	"weathercompare/internal/modules/comparison/repository"
	comparisonviews "weathercompare/internal/modules/comparison/views"
)

const shutdownTimeout = 10 * time.Second

func Run(ctx context.Context, cfg config.Config) error {
	slog.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"httpAddr", cfg.HTTPAddr,
		"publicBaseURL", cfg.PublicBaseURL,
		"datasetSource", cfg.DatasetSource,
		"dbDriver", cfg.Driver,
		"sqlitePath", cfg.Path,
		"dbMaxOpenConns", cfg.MaxOpenConns,
		"dbMaxIdleConns", cfg.MaxIdleConns,
		"dbConnMaxLifetime", cfg.ConnMaxLifetime,
		"dbLogSQL", cfg.LogSQL,
	)
	dbConn, err := db.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := db.Close(dbConn)
		if closeErr != nil {
			slog.Error("db close", "error", closeErr)
		}
	}()

	if err := migrate.Run(ctx, dbConn); err != nil {
		return err
	}
	slog.Info("database ready")

	dataset, err := loadDataset(ctx, cfg, dbConn)
	if err != nil {
		return err
	}
	slog.Info("dataset loaded", "source", cfg.DatasetSource, "cities", dataset.Len())

	if err := comparisonviews.LoadTemplates(); err != nil {
		return err
	}

	m := metrics.New()
	mux := httpapi.NewMux(dbConn, m, comparisonviews.StaticFS())
	comparison.RegisterFeature(mux, dataset, m, cfg.PublicBaseURL)

	srv := httpapi.NewServer(cfg, mux, m)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("http shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err = <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}

// loadDataset reads the catalog from the database, or uses the compiled-in
// copy when DATASET_SOURCE=builtin.
func loadDataset(ctx context.Context, cfg config.Config, dbConn *sql.DB) (*climate.Dataset, error) {
	if cfg.DatasetSource == "builtin" {
		return climate.Builtin(), nil
	}
	dataset, err := repository.NewRepository(dbConn).LoadDataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return dataset, nil
}
