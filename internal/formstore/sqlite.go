package formstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/iwvelando/lease-fees/pkg/fees"
)

const schema = `
CREATE TABLE IF NOT EXISTS form_state (
	calculator TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLiteStore persists form state in a single SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures the
// schema exists.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite store path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// EnsureSchema creates the form_state table if it is missing.
func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create form store schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, kind fees.Kind) (FormState, error) {
	if err := checkKind(kind); err != nil {
		return FormState{}, err
	}

	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM form_state WHERE calculator = ?`, string(kind),
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return FormState{}, ErrNotFound
	}
	if err != nil {
		return FormState{}, fmt.Errorf("failed to load form state: %w", err)
	}
	return decode([]byte(payload))
}

func (s *SQLiteStore) Save(ctx context.Context, state FormState) (FormState, error) {
	state, payload, err := prepare(state, now())
	if err != nil {
		return FormState{}, err
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO form_state (calculator, payload, updated_at) VALUES (?, ?, ?)
ON CONFLICT(calculator) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		string(state.Calculator), string(payload), state.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return FormState{}, fmt.Errorf("failed to save form state: %w", err)
	}
	return state, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, kind fees.Kind) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM form_state WHERE calculator = ?`, string(kind)); err != nil {
		return fmt.Errorf("failed to delete form state: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
