package migrations

import (
	"context"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"moodvenue/internal/db"
)

func TestLoadReturnsOrderedMigrationsPerDialect(t *testing.T) {
	for _, dialect := range []db.Dialect{db.Postgres, db.SQLite} {
		files, err := Load(dialect)
		if err != nil {
			t.Fatalf("Load(%s): %v", dialect, err)
		}
		if len(files) != 2 {
			t.Fatalf("%s: expected 2 migrations got %d", dialect, len(files))
		}
		if files[0].Version != 1 || files[0].Name != "create_venues" {
			t.Fatalf("%s: unexpected first migration %+v", dialect, files[0])
		}
		if files[1].Version != 2 || files[1].Name != "create_plans" {
			t.Fatalf("%s: unexpected second migration %+v", dialect, files[1])
		}
		if !strings.Contains(files[0].Up, "positive_song_url") || !strings.Contains(files[0].Down, "DROP TABLE") {
			t.Fatalf("%s: venue migration content missing", dialect)
		}
	}
}

func TestParseMigrationFilename(t *testing.T) {
	version, name, err := parseMigrationFilename("0007_add_index.up.sql")
	if err != nil || version != 7 || name != "add_index" {
		t.Fatalf("got %d %q %v", version, name, err)
	}
	if _, _, err := parseMigrationFilename("noversion.up.sql"); err == nil {
		t.Fatalf("expected error for missing separator")
	}
	if _, _, err := parseMigrationFilename("abc_name.up.sql"); err == nil {
		t.Fatalf("expected error for non-numeric version")
	}
}

func TestRunMigrationsSkipsApplied(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT version FROM schema_migrations`).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS plans`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO schema_migrations`).
		WithArgs(2, "create_plans").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := RunMigrations(context.Background(), conn, db.Postgres); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRunMigrationsRejectsUnknownDialect(t *testing.T) {
	conn, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer conn.Close()

	if err := RunMigrations(context.Background(), conn, db.Dialect("oracle")); err == nil {
		t.Fatalf("expected error for unknown dialect")
	}
}
