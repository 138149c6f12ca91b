package migrations_test

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/repl/internal/store/migrations"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad(t *testing.T) {
	all, err := migrations.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(all) < 2 {
		t.Fatalf("expected at least 2 migrations, got %d", len(all))
	}

	for i := 1; i < len(all); i++ {
		if all[i].Version <= all[i-1].Version {
			t.Errorf("migration %d (v%d) not after %d (v%d)",
				i, all[i].Version, i-1, all[i-1].Version)
		}
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := map[string]fstest.MapFS{
		"no description": {"01.sql": {Data: []byte("SELECT 1;")}},
		"bad version":    {"xx_history.sql": {Data: []byte("SELECT 1;")}},
		"duplicate": {
			"01_a.sql": {Data: []byte("SELECT 1;")},
			"01_b.sql": {Data: []byte("SELECT 1;")},
		},
	}

	for name, fsys := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := migrations.LoadFrom(fsys); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadFrom_IgnoresOtherFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"02_second.sql": {Data: []byte("SELECT 2;")},
		"01_first.sql":  {Data: []byte("SELECT 1;")},
		"README.md":     {Data: []byte("notes")},
	}

	all, err := migrations.LoadFrom(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(all) != 2 || all[0].Description != "first" || all[1].Description != "second" {
		t.Fatalf("unexpected migrations: %+v", all)
	}
}

func TestRunIdempotent(t *testing.T) {
	db := openMemory(t)

	if err := migrations.Run(db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	v1, err := migrations.CurrentVersion(db)
	if err != nil {
		t.Fatalf("get version: %v", err)
	}

	if err := migrations.Run(db); err != nil {
		t.Fatalf("second run: %v", err)
	}
	v2, err := migrations.CurrentVersion(db)
	if err != nil {
		t.Fatalf("get version: %v", err)
	}

	if v1 != v2 {
		t.Errorf("version changed: %d -> %d", v1, v2)
	}
}

func TestApply_FailureRollsBack(t *testing.T) {
	db := openMemory(t)

	bad := []migrations.Migration{
		{Version: 1, Description: "ok", SQL: "CREATE TABLE a (id INTEGER);"},
		{Version: 2, Description: "broken", SQL: "CREATE TABLE;"},
	}
	if err := migrations.Apply(db, bad); err == nil {
		t.Fatal("expected error")
	}

	v, err := migrations.CurrentVersion(db)
	if err != nil {
		t.Fatalf("get version: %v", err)
	}
	if v != 1 {
		t.Errorf("expected version 1, got %d", v)
	}
}

func TestTablesCreated(t *testing.T) {
	db := openMemory(t)

	if err := migrations.Run(db); err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, table := range []string{"schema_migrations", "history"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err == sql.ErrNoRows {
			t.Errorf("table %s not created", table)
		} else if err != nil {
			t.Errorf("check %s: %v", table, err)
		}
	}
}
