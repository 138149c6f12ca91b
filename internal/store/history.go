package store

import (
	"fmt"
	"time"

	"github.com/footprint-tools/repl/internal/domain"
)

// Append records one executed line.
func (s *Store) Append(entry domain.HistoryEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO history (session_id, line, command, outcome, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.Line,
		entry.Command,
		string(entry.Outcome),
		entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

// Recent returns the newest limit entries, oldest first. A limit of zero or
// less returns everything.
func (s *Store) Recent(limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, line, command, outcome, created_at
		 FROM history
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var (
			e         domain.HistoryEntry
			outcome   string
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Line, &e.Command, &outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.Outcome = domain.Outcome(outcome)
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Lines returns the raw text of the newest limit entries, oldest first.
func (s *Store) Lines(limit int) ([]string, error) {
	entries, err := s.Recent(limit)
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Line
	}
	return lines, nil
}

// Prune deletes all but the newest keep entries and returns how many rows
// were removed.
func (s *Store) Prune(keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := s.db.Exec(
		`DELETE FROM history
		 WHERE id NOT IN (SELECT id FROM history ORDER BY id DESC LIMIT ?)`,
		keep,
	)
	if err != nil {
		return 0, fmt.Errorf("prune history: %w", err)
	}
	return res.RowsAffected()
}

// Verify Store implements domain.HistoryStore
var _ domain.HistoryStore = (*Store)(nil)
