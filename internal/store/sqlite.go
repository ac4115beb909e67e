// Package store persists grants, the record of a viewer receiving a catalog
// item, in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// timestamps are stored fixed-width so MAX() orders them correctly.
const tsLayout = "2006-01-02T15:04:05.000000000Z"

// Grant is one delivery of an item to a viewer.
type Grant struct {
	Viewer uuid.UUID
	Name   string
	Item   string
	At     time.Time
}

// Tally summarises the grants of one item to one viewer.
type Tally struct {
	Item  string
	Count int
	Last  time.Time
}

// SQLiteStore is the grant ledger.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens the ledger at path. An empty path keeps everything in memory.
func Open(path string) (*SQLiteStore, error) {
	dsn := ":memory:"
	if strings.TrimSpace(path) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create ledger directory: %w", err)
		}
		dsn = path
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS grants (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			viewer_id TEXT NOT NULL,
			viewer_name TEXT NOT NULL DEFAULT '',
			item_id TEXT NOT NULL,
			granted_ts TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS grants_viewer_item ON grants(viewer_id, item_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// RecordGrant stores g and returns the updated tally for its viewer and item.
func (s *SQLiteStore) RecordGrant(ctx context.Context, g Grant) (Tally, error) {
	if g.Viewer == uuid.Nil || strings.TrimSpace(g.Item) == "" {
		return Tally{}, fmt.Errorf("record grant: viewer and item are required")
	}
	if g.At.IsZero() {
		g.At = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO grants(viewer_id, viewer_name, item_id, granted_ts) VALUES(?, ?, ?, ?)`,
		g.Viewer.String(), g.Name, g.Item, g.At.UTC().Format(tsLayout))
	if err != nil {
		return Tally{}, fmt.Errorf("record grant: %w", err)
	}
	tallies, err := s.query(ctx, `WHERE viewer_id = ? AND item_id = ?`, g.Viewer.String(), g.Item)
	if err != nil {
		return Tally{}, err
	}
	return tallies[g.Item], nil
}

// Tallies returns every item tally for viewer, keyed by item.
func (s *SQLiteStore) Tallies(ctx context.Context, viewer uuid.UUID) (map[string]Tally, error) {
	return s.query(ctx, `WHERE viewer_id = ?`, viewer.String())
}

// Totals returns the tally of every item across all viewers.
func (s *SQLiteStore) Totals(ctx context.Context) (map[string]Tally, error) {
	return s.query(ctx, "")
}

func (s *SQLiteStore) query(ctx context.Context, where string, args ...interface{}) (map[string]Tally, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT item_id, COUNT(*), MAX(granted_ts) FROM grants `+where+` GROUP BY item_id`, args...)
	if err != nil {
		return nil, fmt.Errorf("query tallies: %w", err)
	}
	defer rows.Close()
	out := make(map[string]Tally)
	for rows.Next() {
		var (
			t    Tally
			last string
		)
		if err := rows.Scan(&t.Item, &t.Count, &last); err != nil {
			return nil, fmt.Errorf("scan tally: %w", err)
		}
		if ts, err := time.Parse(tsLayout, last); err == nil {
			t.Last = ts
		}
		out[t.Item] = t
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
