package datastore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	_ "modernc.org/sqlite"

	"github.com/neuralarc/site/contact"
)

const timeLayout = time.RFC3339Nano

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func checkTable(name string) error {
	if !tableName.MatchString(name) {
		return fmt.Errorf("datastore: invalid table name %q", name)
	}
	return nil
}

// SQLite stores submissions in a local database file.
type SQLite struct {
	db      *sql.DB
	table   string
	timeout time.Duration
}

// NewSQLite opens (or creates) the database at cfg.Path and ensures the
// table exists.
func NewSQLite(cfg Config) (*SQLite, error) {
	cfg.setDefaults()
	if err := checkTable(cfg.Table); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &SQLite{db: db, table: cfg.Table, timeout: cfg.Timeout}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS ` + s.table + ` (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    interest TEXT NOT NULL,
    message TEXT NOT NULL,
    created_at TEXT NOT NULL
);
`)
	return err
}

// Insert writes one row.
func (s *SQLite) Insert(ctx context.Context, sub contact.Submission) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO `+s.table+` (id, name, email, interest, message, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Name, sub.Email, sub.Interest, sub.Message, sub.CreatedAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("sqlite insert: %w", err)
	}
	return nil
}

// Count returns the number of stored submissions.
func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+s.table).Scan(&n)
	return n, err
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
