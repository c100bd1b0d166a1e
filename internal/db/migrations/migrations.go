// internal/db/migrations/migrations.go
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"moodvenue/internal/db"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrationFS embed.FS

type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

var migrationsTableDDL = map[db.Dialect]string{
	db.Postgres: `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)`,
	db.SQLite: `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
}

// RunMigrations applies every embedded migration for the dialect that is not yet recorded
// in schema_migrations, in version order.
func RunMigrations(ctx context.Context, conn *sql.DB, dialect db.Dialect) error {
	if err := createMigrationsTable(ctx, conn, dialect); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := getAppliedMigrations(ctx, conn)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	files, err := Load(dialect)
	if err != nil {
		return fmt.Errorf("failed to get migration files: %w", err)
	}

	for _, file := range files {
		if applied[file.Version] {
			continue
		}
		if err := applyMigration(ctx, conn, file); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file.Name, err)
		}
		log.Info().Int("version", file.Version).Str("name", file.Name).Msg("Applied migration")
	}

	return nil
}

func createMigrationsTable(ctx context.Context, conn *sql.DB, dialect db.Dialect) error {
	ddl, ok := migrationsTableDDL[dialect]
	if !ok {
		return fmt.Errorf("unsupported dialect %q", dialect)
	}
	_, err := conn.ExecContext(ctx, ddl)
	return err
}

func getAppliedMigrations(ctx context.Context, conn *sql.DB) (map[int]bool, error) {
	rows, err := conn.QueryContext(ctx, "SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// Load returns the embedded migrations for a dialect sorted by version.
func Load(dialect db.Dialect) ([]Migration, error) {
	dir := string(dialect)
	files, err := fs.Glob(migrationFS, path.Join(dir, "*.up.sql"))
	if err != nil {
		return nil, err
	}

	var migrations []Migration
	for _, file := range files {
		version, name, err := parseMigrationFilename(path.Base(file))
		if err != nil {
			return nil, err
		}

		up, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return nil, err
		}

		var down []byte
		downFile := path.Join(dir, fmt.Sprintf("%04d_%s.down.sql", version, name))
		if content, err := fs.ReadFile(migrationFS, downFile); err == nil {
			down = content
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    name,
			Up:      string(up),
			Down:    string(down),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

func parseMigrationFilename(filename string) (int, string, error) {
	// Expected format: 0001_name.up.sql
	parts := strings.SplitN(filename, "_", 2)
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("invalid migration filename format: %s", filename)
	}

	version, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", fmt.Errorf("invalid version in filename %s: %w", filename, err)
	}

	name := strings.TrimSuffix(parts[1], ".up.sql")
	name = strings.TrimSuffix(name, ".down.sql")

	return version, name, nil
}

func applyMigration(ctx context.Context, conn *sql.DB, migration Migration) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, migration.Up); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, name) VALUES ($1, $2) ON CONFLICT (version) DO NOTHING",
		migration.Version,
		migration.Name,
	); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	return tx.Commit()
}
