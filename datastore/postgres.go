package datastore

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neuralarc/site/contact"
)

// Postgres writes submissions with a pgx connection pool.
type Postgres struct {
	pool    *pgxpool.Pool
	table   string
	timeout time.Duration
}

// NewPostgres connects to cfg.DSN and verifies the connection.
func NewPostgres(ctx context.Context, cfg Config) (*Postgres, error) {
	cfg.setDefaults()
	if err := checkTable(cfg.Table); err != nil {
		return nil, err
	}
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	poolConfig.MaxConns = 4

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Postgres{pool: pool, table: cfg.Table, timeout: cfg.Timeout}, nil
}

// Insert writes one row.
func (p *Postgres) Insert(ctx context.Context, sub contact.Submission) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	_, err := p.pool.Exec(ctx,
		`INSERT INTO `+p.table+` (id, name, email, interest, message, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		sub.ID, sub.Name, sub.Email, sub.Interest, sub.Message, sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres insert: %w", err)
	}
	return nil
}

// Close releases the pool.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
