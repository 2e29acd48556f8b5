// Package localcache is the client side mirror of the last known workout
// history, kept in a small sqlite key/value table.
package localcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/2beens/workoutlog/internal/workouts"
	"github.com/2beens/workoutlog/pkg"

	_ "modernc.org/sqlite"
)

// HistoryKey is the entry holding the serialized history array.
const HistoryKey = "workoutHistory"

var ErrCorruptCache = errors.New("local cache content is corrupt")

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// DefaultPath is the cache file under the user cache dir.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "workoutlog", "cache.db")
}

// Open opens (and creates when needed) the cache at path. Use ":memory:"
// for a throwaway cache.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := pkg.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}

	// Wait up to 5 seconds when the database is locked instead of failing immediately
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	db.SetMaxOpenConns(1)

	store, err := newStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func newStore(db *sql.DB) (*Store, error) {
	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migrating: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value under key; ok is false when there is none.
func (s *Store) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set replaces the value under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// LoadHistory returns the mirrored history. A missing entry yields nil
// records and no error; unparsable content yields ErrCorruptCache.
func (s *Store) LoadHistory(ctx context.Context) ([]workouts.Record, error) {
	raw, ok, err := s.Get(ctx, HistoryKey)
	if err != nil || !ok {
		return nil, err
	}

	var records []workouts.Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorruptCache, err)
	}
	return records, nil
}

// SaveHistory overwrites the mirrored history with records.
func (s *Store) SaveHistory(ctx context.Context, records []workouts.Record) error {
	if records == nil {
		records = []workouts.Record{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return s.Set(ctx, HistoryKey, string(raw))
}
