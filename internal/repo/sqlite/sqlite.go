// Package sqlite is the default durable ResultStore: a single-row table in
// a local SQLite file, so the last verdict survives process restarts.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/isawsback/isawsback/internal/domain"
	"github.com/isawsback/isawsback/internal/repo"
)

var _ repo.ResultStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS last_result (
    key     TEXT PRIMARY KEY,
    payload TEXT NOT NULL
);`

type Store struct {
	db *sql.DB
}

// New opens (and creates if needed) the database at path with WAL mode.
// A single connection is enough: there is exactly one record.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
	return s.db.Close()
}

func (s *Store) Save(ctx context.Context, r *domain.Result) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO last_result (key, payload) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET payload = excluded.payload`,
		repo.ResultKey, string(payload),
	)
	if err != nil {
		return fmt.Errorf("upsert result: %w", err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context) (*domain.Result, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM last_result WHERE key = ?`, repo.ResultKey,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select result: %w", err)
	}
	var r domain.Result
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		// corrupt record reads as "no prior result"
		return nil, nil
	}
	return &r, nil
}
