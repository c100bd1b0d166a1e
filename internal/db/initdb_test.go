package db

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		dialect Dialect
		dsn     string
		wantErr bool
	}{
		{name: "postgres", url: "postgres://u:p@h:5432/venues", dialect: Postgres, dsn: "postgres://u:p@h:5432/venues"},
		{name: "postgresql", url: "postgresql://h/venues", dialect: Postgres, dsn: "postgresql://h/venues"},
		{name: "sqlite path", url: "sqlite://data/venues.db", dialect: SQLite, dsn: "file:data/venues.db?_foreign_keys=on&_busy_timeout=5000"},
		{name: "file dsn with query", url: "file::memory:?cache=shared", dialect: SQLite, dsn: "file::memory:?cache=shared&_foreign_keys=on&_busy_timeout=5000"},
		{name: "empty sqlite path", url: "sqlite://", wantErr: true},
		{name: "mysql", url: "mysql://h/venues", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			dialect, dsn, err := ParseURL(tc.url)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseURL: %v", err)
			}
			if dialect != tc.dialect || dsn != tc.dsn {
				t.Fatalf("got %s %q, want %s %q", dialect, dsn, tc.dialect, tc.dsn)
			}
		})
	}
}

func TestExtractAndReplaceDBName(t *testing.T) {
	name, err := extractDBName("postgres://u:p@h:5432/venues?sslmode=disable")
	if err != nil || name != "venues" {
		t.Fatalf("extract url: %q %v", name, err)
	}
	name, err = extractDBName("host=h user=u dbname=venues sslmode=disable")
	if err != nil || name != "venues" {
		t.Fatalf("extract kv: %q %v", name, err)
	}
	if _, err := extractDBName("host=h user=u"); err == nil {
		t.Fatalf("expected error without dbname")
	}

	root, err := replaceDBName("postgres://u:p@h:5432/venues?sslmode=disable", "postgres")
	if err != nil || root != "postgres://u:p@h:5432/postgres?sslmode=disable" {
		t.Fatalf("replace url: %q %v", root, err)
	}
	root, err = replaceDBName("host=h dbname=venues", "postgres")
	if err != nil || root != "host=h dbname=postgres" {
		t.Fatalf("replace kv: %q %v", root, err)
	}
}

func TestEnsureDatabaseCreatesMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT true FROM pg_database WHERE datname = \$1`).
		WithArgs("venues").
		WillReturnRows(sqlmock.NewRows([]string{"bool"}))
	mock.ExpectExec(`CREATE DATABASE "venues"`).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := ensureDatabase(context.Background(), db, "venues"); err != nil {
		t.Fatalf("ensureDatabase: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEnsureDatabaseSkipsExisting(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT true FROM pg_database`).
		WithArgs("venues").
		WillReturnRows(sqlmock.NewRows([]string{"bool"}).AddRow(true))

	if err := ensureDatabase(context.Background(), db, "venues"); err != nil {
		t.Fatalf("ensureDatabase: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateDatabaseIfNotExistsIgnoresSQLite(t *testing.T) {
	if err := CreateDatabaseIfNotExists(context.Background(), "sqlite://venues.db"); err != nil {
		t.Fatalf("expected no-op for sqlite, got %v", err)
	}
}
