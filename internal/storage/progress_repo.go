package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const MainUserKey = "main_user"

type ProgressRepo struct {
	db *sql.DB
}

func NewProgressRepo(db *sql.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

func (r *ProgressRepo) Get(ctx context.Context, key string) (*ProgressRow, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, score, xp, streak, last_play_at, reminder_freq, reminder_next_at, notifs
		FROM progress WHERE key = ?
	`, key)

	var (
		p          ProgressRow
		lastPlay   sql.NullTime
		nextRemind sql.NullTime
	)
	if err := row.Scan(&p.Key, &p.Score, &p.XP, &p.Streak, &lastPlay, &p.ReminderFreq, &nextRemind, &p.Notifs); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("progress get: %w", err)
	}
	if lastPlay.Valid {
		t := lastPlay.Time
		p.LastPlayAt = &t
	}
	if nextRemind.Valid {
		t := nextRemind.Time
		p.ReminderNextAt = &t
	}
	return &p, nil
}

func (r *ProgressRepo) GetOrCreateMain(ctx context.Context) (*ProgressRow, error) {
	p, err := r.Get(ctx, MainUserKey)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO progress (key) VALUES (?)`, MainUserKey); err != nil {
		return nil, fmt.Errorf("progress insert: %w", err)
	}
	return r.Get(ctx, MainUserKey)
}

func (r *ProgressRepo) Update(ctx context.Context, p *ProgressRow) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE progress
		SET score = ?, xp = ?, streak = ?, last_play_at = ?, reminder_freq = ?, reminder_next_at = ?, notifs = ?
		WHERE key = ?
	`, p.Score, p.XP, p.Streak, p.LastPlayAt, p.ReminderFreq, p.ReminderNextAt, p.Notifs, p.Key)
	if err != nil {
		return fmt.Errorf("progress update: %w", err)
	}
	return nil
}

// ListBadgeIDs returns unlocked badge ids in unlock order.
func (r *ProgressRepo) ListBadgeIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT badge_id FROM badge_unlocks ORDER BY unlocked_at ASC, badge_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("badge list: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("badge scan: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("badge rows: %w", err)
	}
	return out, nil
}

func (r *ProgressRepo) AddBadge(ctx context.Context, badgeID string, unlockedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO badge_unlocks (badge_id, unlocked_at) VALUES (?, ?)
		ON CONFLICT(badge_id) DO NOTHING
	`, badgeID, unlockedAt)
	if err != nil {
		return fmt.Errorf("badge insert: %w", err)
	}
	return nil
}

// ResetMain wipes the play history and badge unlocks and writes the fresh
// record in one transaction, so a failed reset leaves everything intact.
func (r *ProgressRepo) ResetMain(ctx context.Context, p *ProgressRow) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM plays`); err != nil {
			return fmt.Errorf("plays clear: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM badge_unlocks`); err != nil {
			return fmt.Errorf("badge clear: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE progress
			SET score = ?, xp = ?, streak = ?, last_play_at = ?, reminder_freq = ?, reminder_next_at = ?, notifs = ?
			WHERE key = ?
		`, p.Score, p.XP, p.Streak, p.LastPlayAt, p.ReminderFreq, p.ReminderNextAt, p.Notifs, p.Key); err != nil {
			return fmt.Errorf("progress reset: %w", err)
		}
		return nil
	})
}
