package db

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
	"modernc.org/sqlite"

	"weathercompare/internal/config"
)

// Driver names registered by the two SQLite backends.
const (
	DriverCGO    = "sqlite3"
	DriverPureGo = "sqlite"
)

// memoryName is the shared-cache database used when SQLITE_PATH is ":memory:".
const memoryName = "weathercompare"

func Open(cfg config.Config) (*sql.DB, error) {
	dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, err
	}

	var db *sql.DB
	if cfg.LogSQL {
		connector, err := NewLoggingConnector(cfg.Driver, dsn, slog.Default())
		if err != nil {
			return nil, fmt.Errorf("db open: %w", err)
		}
		db = sql.OpenDB(connector)
	} else {
		db, err = sql.Open(cfg.Driver, dsn)
		if err != nil {
			return nil, fmt.Errorf("db open: %w", err)
		}
	}

	// Pooling (SQLite is typically best with low concurrency; tune if needed)
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns >= 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// Validate connectivity early
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return db, nil
}

func Close(db *sql.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}

// newDriver returns the driver implementation behind a registered name.
func newDriver(name string) (driver.Driver, error) {
	switch name {
	case DriverCGO:
		return &sqlite3.SQLiteDriver{}, nil
	case DriverPureGo:
		return &sqlite.Driver{}, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q (allowed: %s, %s)", name, DriverCGO, DriverPureGo)
	}
}

func buildDSN(cfg config.Config) (string, error) {
	if cfg.DSN != "" {
		return cfg.DSN, nil
	}

	path := cfg.Path
	memory := path == ":memory:"
	if memory {
		path = "file:" + memoryName + "?mode=memory&cache=shared"
	} else if !strings.HasPrefix(path, "file:") {
		// Ensure directory exists for file-backed sqlite db
		dir := filepath.Dir(path)
		if dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	params := dsnParams(cfg.Driver, memory)

	// If caller provided something like "file:/data/app.db?x=y" as Path, don’t double-wrap
	if strings.HasPrefix(path, "file:") {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + strings.Join(params, "&"), nil
	}

	return fmt.Sprintf("file:%s?%s", path, strings.Join(params, "&")), nil
}

// dsnParams spells foreign keys, busy timeout and WAL the way each driver
// expects. WAL is skipped for in-memory databases.
func dsnParams(driverName string, memory bool) []string {
	if driverName == DriverPureGo {
		params := []string{"_pragma=foreign_keys(1)", "_pragma=busy_timeout(5000)"}
		if !memory {
			params = append(params, "_pragma=journal_mode(WAL)")
		}
		return params
	}
	params := []string{"_foreign_keys=on", "_busy_timeout=5000"}
	if !memory {
		params = append(params, "_journal_mode=WAL")
	}
	return params
}
