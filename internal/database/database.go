// Cageography - Nicolas Cage Filmography Analytics
// Copyright 2026 Felix Amado (felixamado)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/felixamado/cageography

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/felixamado/cageography/internal/config"
	"github.com/felixamado/cageography/internal/logging"
	"github.com/felixamado/cageography/internal/metrics"
)

// defaultQueryTimeout bounds queries whose caller passed a context without
// a deadline.
const defaultQueryTimeout = 30 * time.Second

// DB wraps the DuckDB connection and provides all data access methods.
// The movies table is replaced wholesale on each ingest; everything else
// is read-only aggregation, so no prepared-statement or row-lock machinery
// is needed.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// New opens (or creates) the DuckDB database and initializes the schema.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	// Ensure the parent directory exists for file-backed databases.
	if cfg.Path != ":memory:" && cfg.Path != "" {
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}

	preserveOrder := "true"
	if !cfg.PreserveInsertionOrder {
		preserveOrder = "false"
	}

	// Auto-install/auto-load stays off: no extensions are needed and the
	// installer hangs in restricted network environments.
	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&preserve_insertion_order=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		cfg.Path, numThreads, cfg.MaxMemory, preserveOrder)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, cfg: cfg}

	// DuckDB connections are not independent sessions the way a client/server
	// database's are; a small pool is plenty for a read-mostly workload.
	conn.SetMaxOpenConns(numThreads)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(0)

	if err := db.createTables(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Int("threads", numThreads).
		Str("max_memory", cfg.MaxMemory).
		Msg("Database opened")

	return db, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// Ping verifies the database connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return errors.New("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// ensureContext attaches the default timeout when the caller's context has
// no deadline, so a stuck query cannot hold a connection forever.
func ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// queryAndScan executes a query and scans all rows using the provided
// scanner function.
func (db *DB) queryAndScan(ctx context.Context, operation, query string, args []interface{}, scanner func(*sql.Rows) error) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery(operation, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("query %s: %w", operation, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scanner(rows); err != nil {
			return fmt.Errorf("scan %s row: %w", operation, err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%s rows iteration: %w", operation, err)
	}

	return nil
}

// queryRow executes a single-row query and scans into dest. sql.ErrNoRows
// is passed through so callers can map it to a domain error.
func (db *DB) queryRow(ctx context.Context, operation, query string, args []interface{}, dest ...interface{}) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	err := db.conn.QueryRowContext(ctx, query, args...).Scan(dest...)
	metrics.RecordDBQuery(operation, time.Since(start), err)
	return err
}

// closeQuietly closes a resource, logging failures instead of returning them.
func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close resource")
	}
}
