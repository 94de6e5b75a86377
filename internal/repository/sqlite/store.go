// Package sqlite stores tracker records in a local SQLite file.
//
// Every record kind gets its own table holding the JSON document plus a
// sort key (a date or creation time) used for ordering and range filters.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/JonnyWalker81/habithub/backend/internal/repository"
	_ "github.com/mattn/go-sqlite3"
)

var tables = []string{
	"goals",
	"todo_lists",
	"transactions",
	"budgets",
	"bills",
	"savings_goals",
	"accounts",
}

// Store owns the SQLite connection shared by the repositories
type Store struct {
	db *sql.DB
}

// Open creates the database file if needed, enables WAL and applies the
// schema
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_sync=NORMAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) migrate() error {
	for _, table := range tables {
		schema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %[1]s (
			id TEXT PRIMARY KEY,
			sort_key TEXT NOT NULL DEFAULT '',
			body TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_%[1]s_sort_key ON %[1]s(sort_key);
		`, table)

		if _, err := s.db.Exec(schema); err != nil {
			return fmt.Errorf("%s: %w", table, err)
		}
	}
	return nil
}

// put inserts or replaces the document stored under id
func put[T any](ctx context.Context, db *sql.DB, table, id, sortKey string, record *T) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", table, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, sort_key, body, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			sort_key = excluded.sort_key,
			body = excluded.body,
			updated_at = excluded.updated_at`, table)

	if _, err := db.ExecContext(ctx, query, id, sortKey, string(body)); err != nil {
		return fmt.Errorf("failed to write %s: %w", table, err)
	}
	return nil
}

// get loads the document stored under id
func get[T any](ctx context.Context, db *sql.DB, table, id string) (*T, error) {
	var body string
	err := db.QueryRowContext(ctx, fmt.Sprintf("SELECT body FROM %s WHERE id = ?", table), id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", table, id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}

	var record T
	if err := json.Unmarshal([]byte(body), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", table, err)
	}
	return &record, nil
}

// list loads documents ordered by sort key, optionally bounded to
// [from, to]. Empty bounds are open.
func list[T any](ctx context.Context, db *sql.DB, table, from, to string) ([]T, error) {
	query := fmt.Sprintf("SELECT body FROM %s WHERE 1=1", table)
	var args []any
	if from != "" {
		query += " AND sort_key >= ?"
		args = append(args, from)
	}
	if to != "" {
		query += " AND sort_key <= ?"
		args = append(args, to)
	}
	query += " ORDER BY sort_key ASC, id ASC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		var record T
		if err := json.Unmarshal([]byte(body), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", table, err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// remove deletes the document stored under id
func remove(ctx context.Context, db *sql.DB, table, id string) error {
	res, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", table, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", table, id, repository.ErrNotFound)
	}
	return nil
}
