// Package sqlite provides SQLite-based persistent storage for TaskHero.
// Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS heroes (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			level       INTEGER NOT NULL DEFAULT 1,
			xp          INTEGER NOT NULL DEFAULT 0,
			gold        INTEGER NOT NULL DEFAULT 0,
			created_at  INTEGER NOT NULL,
			last_active INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS hero_stats (
			hero_id TEXT NOT NULL REFERENCES heroes(id) ON DELETE CASCADE,
			key     TEXT NOT NULL,
			value   INTEGER NOT NULL,
			PRIMARY KEY (hero_id, key)
		)`,
		`CREATE TABLE IF NOT EXISTS hero_achievements (
			hero_id        TEXT NOT NULL REFERENCES heroes(id) ON DELETE CASCADE,
			achievement_id TEXT NOT NULL,
			unlocked_at    INTEGER NOT NULL,
			position       INTEGER NOT NULL,
			PRIMARY KEY (hero_id, achievement_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_achievements_position
			ON hero_achievements(hero_id, position)`,
		`CREATE TABLE IF NOT EXISTS hero_streaks (
			hero_id     TEXT NOT NULL REFERENCES heroes(id) ON DELETE CASCADE,
			kind        TEXT NOT NULL,
			current     INTEGER NOT NULL DEFAULT 0,
			longest     INTEGER NOT NULL DEFAULT 0,
			last_active INTEGER NOT NULL DEFAULT 0,
			history     TEXT NOT NULL DEFAULT '[]',
			PRIMARY KEY (hero_id, kind)
		)`,
	}

	for i, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
