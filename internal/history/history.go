// Package history manages the local watch history in a sqlite database,
// keyed by backend record ID. Positions feed the --continue resume flow.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"shorts/internal/media"
)

const schema = `
CREATE TABLE IF NOT EXISTS watched (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	video_url  TEXT NOT NULL,
	position   REAL NOT NULL DEFAULT 0,
	duration   REAL NOT NULL DEFAULT 0,
	watched_at TIMESTAMP NOT NULL
);`

// Store is a handle to the watch history database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts or updates the entry for its record ID.
func (s *Store) Save(e media.WatchEntry) error {
	if e.WatchedAt.IsZero() {
		e.WatchedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT INTO watched (id, name, video_url, position, duration, watched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			video_url = excluded.video_url,
			position = excluded.position,
			duration = excluded.duration,
			watched_at = excluded.watched_at`,
		e.ID, e.Name, e.VideoURL, e.Position, e.Duration, e.WatchedAt)
	if err != nil {
		return fmt.Errorf("saving history entry: %w", err)
	}
	return nil
}

// Load returns all entries, most recently watched first.
func (s *Store) Load() ([]media.WatchEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, name, video_url, position, duration, watched_at
		FROM watched ORDER BY watched_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []media.WatchEntry
	for rows.Next() {
		var e media.WatchEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.VideoURL, &e.Position, &e.Duration, &e.WatchedAt); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	return entries, nil
}

// Find returns the entry for a record ID, or nil when none exists.
func (s *Store) Find(id string) (*media.WatchEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, name, video_url, position, duration, watched_at
		FROM watched WHERE id = ?`, id)

	var e media.WatchEntry
	err := row.Scan(&e.ID, &e.Name, &e.VideoURL, &e.Position, &e.Duration, &e.WatchedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("looking up history entry: %w", err)
	}
	return &e, nil
}

// Remove deletes the entry for a record ID.
func (s *Store) Remove(id string) error {
	if _, err := s.db.Exec(`DELETE FROM watched WHERE id = ?`, id); err != nil {
		return fmt.Errorf("removing history entry: %w", err)
	}
	return nil
}

// FormatForDisplay creates display strings for selection from history entries.
func FormatForDisplay(entries []media.WatchEntry) []string {
	var items []string
	for _, e := range entries {
		display := e.Name
		if display == "" {
			display = media.UntitledName
		}
		if e.Position > 0 && e.Duration > 0 {
			display += fmt.Sprintf(" [%.0f%%]", e.Position/e.Duration*100)
		}
		items = append(items, display)
	}
	return items
}
