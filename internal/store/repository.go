package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// Repository is the single namespaced key-value slot store behind Store.
// Each slot holds one JSON-serialized document and is overwritten in full
// on every write.
type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS state (
  slot TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// CheckWritable verifies the database accepts writes before the UI starts.
func (r *Repository) CheckWritable(ctx context.Context) error {
	const probe = "__probe__"
	if _, err := r.db.ExecContext(ctx, `
INSERT INTO state (slot, value) VALUES (?, '{}')
ON CONFLICT(slot) DO UPDATE SET value=excluded.value
`, probe); err != nil {
		return fmt.Errorf("write probe: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM state WHERE slot = ?`, probe); err != nil {
		return fmt.Errorf("delete probe: %w", err)
	}
	return nil
}

// LoadSlot unmarshals a slot into out. Returns false when the slot has never
// been written.
func (r *Repository) LoadSlot(ctx context.Context, slot string, out any) (bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM state WHERE slot = ?`, slot).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query slot %q: %w", slot, err)
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		return false, fmt.Errorf("decode slot %q: %w", slot, err)
	}
	return true, nil
}

// SaveSlot overwrites a slot with the JSON encoding of v.
func (r *Repository) SaveSlot(ctx context.Context, slot string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", slot, err)
	}
	if _, err := r.db.ExecContext(ctx, `
INSERT INTO state (slot, value) VALUES (?, ?)
ON CONFLICT(slot) DO UPDATE SET value=excluded.value
`, slot, string(value)); err != nil {
		return fmt.Errorf("save slot %q: %w", slot, err)
	}
	return nil
}
