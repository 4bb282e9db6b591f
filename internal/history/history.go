package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// History records every encode and decode to a SQLite database.
type History struct {
	db *sql.DB
}

// Entry is one recorded operation.
type Entry struct {
	ID        int64
	TS        string
	Op        string
	Input     string
	Output    string
	Corrected int
	OK        bool
}

// New opens (or creates) the SQLite database at dbPath and ensures the
// codec_history table exists.
func New(dbPath string) (*History, error) {
	dsn := "file:" + dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("history: open db: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS codec_history (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		ts        TEXT    NOT NULL,
		op        TEXT    NOT NULL,
		input     TEXT    NOT NULL,
		output    TEXT    NOT NULL,
		corrected INTEGER NOT NULL,
		ok        INTEGER NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create table: %w", err)
	}
	return &History{db: db}, nil
}

// Record inserts one row. It is safe to call concurrently.
func (h *History) Record(op, input, output string, corrected int, ok bool) error {
	ts := time.Now().UTC().Format(time.RFC3339)
	_, err := h.db.Exec(
		`INSERT INTO codec_history (ts, op, input, output, corrected, ok) VALUES (?, ?, ?, ?, ?, ?)`,
		ts, op, input, output, corrected, ok,
	)
	return err
}

// Recent returns the n most recent entries, newest first.
func (h *History) Recent(n int) ([]Entry, error) {
	rows, err := h.db.Query(
		`SELECT id, ts, op, input, output, corrected, ok FROM codec_history ORDER BY id DESC LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.TS, &e.Op, &e.Input, &e.Output, &e.Corrected, &e.OK); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database connection.
func (h *History) Close() error {
	return h.db.Close()
}
