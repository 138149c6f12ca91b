// Package testutil holds helpers shared by package tests.
package testutil

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/repl/internal/domain"
	"github.com/footprint-tools/repl/internal/store"
	"github.com/footprint-tools/repl/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", store.MemoryPath)
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestStore wraps NewTestDB in a history store.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedHistory appends one ok entry per line for sessionID.
func SeedHistory(t *testing.T, s domain.HistoryStore, sessionID string, lines ...string) {
	t.Helper()

	base := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	for i, line := range lines {
		err := s.Append(domain.HistoryEntry{
			SessionID: sessionID,
			Line:      line,
			Outcome:   domain.OutcomeOK,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err, "failed to seed line %q", line)
	}
}
