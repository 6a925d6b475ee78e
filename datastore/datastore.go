// Package datastore provides the contact.Inserter implementations: a hosted
// Supabase table over its REST API, a direct Postgres connection and a local
// SQLite file.
package datastore

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/neuralarc/site/contact"
)

// Driver names accepted by Open.
const (
	DriverSupabase = "supabase"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DefaultTable is the table contact submissions are written to.
const DefaultTable = "contact"

// DefaultTimeout bounds a single insert.
const DefaultTimeout = 10 * time.Second

// Config selects and configures a driver.
type Config struct {
	Driver string

	// Supabase project URL and anonymous key.
	URL string
	Key string

	// Postgres connection string.
	DSN string

	// SQLite database file.
	Path string

	Table   string
	Timeout time.Duration
}

func (c *Config) setDefaults() {
	if c.Driver == "" {
		c.Driver = DriverSQLite
	}
	if c.Table == "" {
		c.Table = DefaultTable
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Driver == DriverSQLite && c.Path == "" {
		c.Path = "data/contact.db"
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Open returns the inserter for cfg.Driver and a Closer releasing its
// resources.
func Open(ctx context.Context, cfg Config) (contact.Inserter, io.Closer, error) {
	cfg.setDefaults()
	switch cfg.Driver {
	case DriverSupabase:
		s, err := NewSupabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		return s, closerFunc(func() error { return nil }), nil
	case DriverPostgres:
		p, err := NewPostgres(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return p, p, nil
	case DriverSQLite:
		s, err := NewSQLite(cfg)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("datastore: unknown driver %q", cfg.Driver)
	}
}
