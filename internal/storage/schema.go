package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS progress (
			key TEXT PRIMARY KEY,
			score INTEGER DEFAULT 0,
			xp INTEGER DEFAULT 0,
			streak INTEGER DEFAULT 0,
			last_play_at DATETIME,
			reminder_freq TEXT DEFAULT 'none',
			reminder_next_at DATETIME,
			notifs TEXT DEFAULT 'default'
		);`,
		// One row per completed choice; the played set and XP audit both
		// derive from here.
		`CREATE TABLE IF NOT EXISTS plays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario_id TEXT NOT NULL,
			delta INTEGER NOT NULL,
			xp_awarded INTEGER NOT NULL,
			played_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS badge_unlocks (
			badge_id TEXT PRIMARY KEY,
			unlocked_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS posts (
			id TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			topic TEXT NOT NULL,
			location TEXT NOT NULL,
			author TEXT,
			created_at DATETIME NOT NULL,
			remote_id TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS topics (
			name TEXT PRIMARY KEY
		);`,
		`CREATE TABLE IF NOT EXISTS symptoms (
			id TEXT PRIMARY KEY,
			entry_date DATETIME NOT NULL,
			name TEXT NOT NULL,
			severity INTEGER NOT NULL,
			heart_rate INTEGER,
			bp_sys INTEGER,
			bp_dia INTEGER,
			notes TEXT,
			created_at DATETIME NOT NULL,
			remote_id TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_plays_scenario_id ON plays(scenario_id);`,
		`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_symptoms_entry_date ON symptoms(entry_date);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
