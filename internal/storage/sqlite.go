// Package storage keeps the run history of the current process in an
// in-memory SQLite database. Nothing is written to disk.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN is a private in-memory database. It lives as long as its
// single connection.
const memoryDSN = ":memory:"

// Store holds the session's finished runs.
type Store struct {
	db *sql.DB
}

// Run is one finished GNU Dash run.
type Run struct {
	ID          int64
	Seed        int64
	Preset      string
	Freedom     int
	Distance    int
	Ticks       int
	ShieldsLost int
	CreatedAt   time.Time
}

// Stats aggregates all runs of the session.
type Stats struct {
	Runs        int
	BestFreedom int
	AvgFreedom  float64
	MaxDistance int
	LastPlayed  time.Time
}

// Open creates an empty in-memory store.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every new connection would see its own empty database.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			preset TEXT NOT NULL DEFAULT '',
			freedom INTEGER NOT NULL,
			distance INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			shields_lost INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(freedom DESC, distance DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database. All runs are gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (seed, preset, freedom, distance, ticks, shields_lost)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Seed, r.Preset, r.Freedom, r.Distance, r.Ticks, r.ShieldsLost,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns returns the best runs by freedom, then distance.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, preset, freedom, distance, ticks, shields_lost, created_at
		 FROM runs
		 ORDER BY freedom DESC, distance DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Seed, &r.Preset, &r.Freedom, &r.Distance, &r.Ticks, &r.ShieldsLost, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// BestFreedom returns the highest freedom of the session, or 0 without runs.
func (s *Store) BestFreedom() (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(freedom) FROM runs").Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query best freedom: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// RunCount returns the number of recorded runs.
func (s *Store) RunCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// Stats returns aggregated statistics over all runs.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(freedom), 0), COALESCE(AVG(freedom), 0), COALESCE(MAX(distance), 0)
		 FROM runs`,
	).Scan(&st.Runs, &st.BestFreedom, &st.AvgFreedom, &st.MaxDistance)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var last any
	err = s.db.QueryRow(`SELECT created_at FROM runs ORDER BY id DESC LIMIT 1`).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Stats{}, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		st.LastPlayed = parseTime(last)
	}
	return st, nil
}

// Clear deletes all runs.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both driver time values and SQLite text timestamps.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
