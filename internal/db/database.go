package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// Dialect names the SQL engine behind a connection string.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// DriverName returns the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	if d == SQLite {
		return "sqlite3"
	}
	return "postgres"
}

type Database struct {
	*sql.DB
	Dialect Dialect
}

// ParseURL resolves the dialect and the driver DSN from DATABASE_URL.
//
//	postgres://... or postgresql://...  -> lib/pq, DSN unchanged
//	sqlite://path/to.db                 -> go-sqlite3, DSN "file:path/to.db?..."
//	file:...                            -> go-sqlite3, DSN unchanged
func ParseURL(databaseURL string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return Postgres, databaseURL, nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite url %q has no path", databaseURL)
		}
		return SQLite, sqliteDSN("file:" + path), nil
	case strings.HasPrefix(databaseURL, "file:"):
		return SQLite, sqliteDSN(databaseURL), nil
	default:
		return "", "", fmt.Errorf("unsupported database url %q", databaseURL)
	}
}

func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on&_busy_timeout=5000"
}

func New(ctx context.Context, databaseURL string) (*Database, error) {
	dialect, dsn, err := ParseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if dialect == SQLite {
		// one writer at a time; sqlite serializes anyway
		db.SetMaxOpenConns(1)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Str("dialect", string(dialect)).Msg("Successfully connected to database")
	return &Database{DB: db, Dialect: dialect}, nil
}

func (db *Database) Close() error {
	return db.DB.Close()
}
