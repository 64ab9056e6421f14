// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides session history persistence for gauntlet.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// SESSION RECORD TYPE
// =============================================================================

// SessionRecord is one finished writing session. The text itself is never
// stored; only counts and timer settings are kept.
type SessionRecord struct {
	// Identity
	ID        string
	StartedAt time.Time
	EndedAt   time.Time

	// Timer settings the session ran with
	DurationSecs int
	TimeoutSecs  int

	// Outcome
	Completed  bool // countdown reached zero (vs. ended early)
	WordCount  int
	CharCount  int
	EraseCount int
}

// Stats aggregates the whole history for the stats command.
type Stats struct {
	TotalSessions     int
	CompletedSessions int
	TotalWords        int
	TotalChars        int
	TotalErases       int
	// TotalWritingSecs is the wall-clock sum of session lengths.
	TotalWritingSecs int
	BestWordCount    int
}

// =============================================================================
// HISTORY STORE
// =============================================================================

// Schema is the session history database schema.
const Schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id            TEXT PRIMARY KEY,
	started_at    INTEGER NOT NULL,
	ended_at      INTEGER NOT NULL,
	duration_secs INTEGER NOT NULL,
	timeout_secs  INTEGER NOT NULL,
	completed     INTEGER NOT NULL,
	word_count    INTEGER NOT NULL,
	char_count    INTEGER NOT NULL,
	erase_count   INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at);
`

// HistoryStore records finished sessions in a local SQLite database.
type HistoryStore struct {
	db *sql.DB
}

// Open opens (or creates) the history database at the given path.
func Open(path string) (*HistoryStore, error) {
	// Create database directory if needed
	dbDir := filepath.Dir(path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool for SQLite
	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &HistoryStore{db: db}, nil
}

// Close closes the store and releases resources.
func (s *HistoryStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// =============================================================================
// SAVE OPERATIONS
// =============================================================================

// Record persists a finished session.
func (s *HistoryStore) Record(rec *SessionRecord) error {
	if rec.ID == "" {
		return &HistoryError{Message: "session record has no id"}
	}

	_, err := s.db.Exec(`
		INSERT INTO sessions
			(id, started_at, ended_at, duration_secs, timeout_secs,
			 completed, word_count, char_count, erase_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.StartedAt.Unix(),
		rec.EndedAt.Unix(),
		rec.DurationSecs,
		rec.TimeoutSecs,
		boolToInt(rec.Completed),
		rec.WordCount,
		rec.CharCount,
		rec.EraseCount,
	)
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	return nil
}

// =============================================================================
// LOAD OPERATIONS
// =============================================================================

// Get retrieves a session record by ID.
func (s *HistoryStore) Get(id string) (*SessionRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, started_at, ended_at, duration_secs, timeout_secs,
		       completed, word_count, char_count, erase_count
		FROM sessions WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns session records, most recent first. A limit of 0 returns all.
func (s *HistoryStore) List(limit int) ([]SessionRecord, error) {
	query := `
		SELECT id, started_at, ended_at, duration_secs, timeout_secs,
		       completed, word_count, char_count, erase_count
		FROM sessions ORDER BY started_at DESC
	`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var recs []SessionRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}

// Stats aggregates the stored history.
func (s *HistoryStore) Stats() (*Stats, error) {
	row := s.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(completed), 0),
			COALESCE(SUM(word_count), 0),
			COALESCE(SUM(char_count), 0),
			COALESCE(SUM(erase_count), 0),
			COALESCE(SUM(ended_at - started_at), 0),
			COALESCE(MAX(word_count), 0)
		FROM sessions
	`)

	var st Stats
	err := row.Scan(
		&st.TotalSessions,
		&st.CompletedSessions,
		&st.TotalWords,
		&st.TotalChars,
		&st.TotalErases,
		&st.TotalWritingSecs,
		&st.BestWordCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}
	return &st, nil
}

// =============================================================================
// DELETE OPERATIONS
// =============================================================================

// Delete removes a session record by ID.
func (s *HistoryStore) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// Clear removes all session records.
func (s *HistoryStore) Clear() error {
	_, err := s.db.Exec("DELETE FROM sessions")
	return err
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(sc scanner) (*SessionRecord, error) {
	var rec SessionRecord
	var startedAt, endedAt int64
	var completed int

	err := sc.Scan(
		&rec.ID,
		&startedAt,
		&endedAt,
		&rec.DurationSecs,
		&rec.TimeoutSecs,
		&completed,
		&rec.WordCount,
		&rec.CharCount,
		&rec.EraseCount,
	)
	if err != nil {
		return nil, err
	}

	rec.StartedAt = time.Unix(startedAt, 0).UTC()
	rec.EndedAt = time.Unix(endedAt, 0).UTC()
	rec.Completed = completed != 0
	return &rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrSessionNotFound is returned when a session record doesn't exist.
// Use errors.Is(err, ErrSessionNotFound) to check for this error.
var ErrSessionNotFound = &HistoryError{Message: "session not found"}

// HistoryError represents a history-related error.
// It implements the error interface and can be compared using errors.Is.
type HistoryError struct {
	Message string
}

// Error implements the error interface.
func (e *HistoryError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing history errors.
func (e *HistoryError) Is(target error) bool {
	t, ok := target.(*HistoryError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}
