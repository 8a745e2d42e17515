// internal/catalog/conn.go
//
// Database connection management for the catalog.
// Responsibilities:
//   - Opening SQLite with safe defaults (WAL, busy timeout, foreign keys).
//   - Creating the items schema on first open (idempotent).
//   - Connector: an explicitly owned, lazily-initialized connection
//     singleton. The first caller dials; concurrent callers wait on the
//     same in-flight attempt; a failed attempt is cleared so a later call
//     can retry; a successful handle is cached for the process lifetime.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	image_url  TEXT NOT NULL,
	hints      TEXT NOT NULL DEFAULT '[]',
	difficulty TEXT NOT NULL DEFAULT 'medium',
	position   TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);`

// openDB opens (and creates if missing) the SQLite database file, applies
// pragmas, and ensures the schema exists.
func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	// Ensure directory exists for ./data/feetdle.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return db, nil
}

// attempt is one in-flight connection attempt shared by all waiters.
type attempt struct {
	done chan struct{}
	db   *sql.DB
	err  error
}

// Connector lazily opens the database at most once concurrently.
type Connector struct {
	open func(context.Context) (*sql.DB, error)

	mu       sync.Mutex
	db       *sql.DB
	inflight *attempt
}

// NewConnector builds a Connector for the given SQLite path. Nothing is
// opened until the first DB call.
func NewConnector(dsn string) *Connector {
	return &Connector{open: func(ctx context.Context) (*sql.DB, error) {
		return openDB(ctx, dsn)
	}}
}

// DB returns the cached handle, joining an in-flight open when one exists.
// A failed open is not cached; the next caller retries.
func (c *Connector) DB(ctx context.Context) (*sql.DB, error) {
	c.mu.Lock()
	if c.db != nil {
		db := c.db
		c.mu.Unlock()
		return db, nil
	}
	if at := c.inflight; at != nil {
		c.mu.Unlock()
		select {
		case <-at.done:
			return at.db, at.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	at := &attempt{done: make(chan struct{})}
	c.inflight = at
	c.mu.Unlock()

	at.db, at.err = c.open(ctx)

	c.mu.Lock()
	if at.err == nil {
		c.db = at.db
	}
	c.inflight = nil
	c.mu.Unlock()
	close(at.done)

	return at.db, at.err
}

// Close releases the cached handle, if any.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}
