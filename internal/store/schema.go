package store

import (
	"database/sql"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			user_id TEXT NOT NULL,
			display_name TEXT
		);

		CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			audio_quality TEXT NOT NULL DEFAULT 'high',
			gapless INTEGER NOT NULL DEFAULT 1,
			normalization INTEGER NOT NULL DEFAULT 0,
			theme TEXT NOT NULL DEFAULT 'default',
			notifications INTEGER NOT NULL DEFAULT 1
		);

		CREATE TABLE IF NOT EXISTS queue_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			current_index INTEGER NOT NULL DEFAULT -1,
			repeat_mode TEXT NOT NULL DEFAULT 'none',
			shuffle INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS queue_songs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			position INTEGER NOT NULL,
			song_id TEXT NOT NULL,
			title TEXT NOT NULL,
			artist TEXT,
			album TEXT,
			duration_ms INTEGER,
			UNIQUE(position)
		);

		CREATE INDEX IF NOT EXISTS idx_queue_songs_position ON queue_songs(position);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migration: add notifications column if missing
	_, _ = db.Exec(`ALTER TABLE settings ADD COLUMN notifications INTEGER NOT NULL DEFAULT 1`)

	return nil
}
