package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type PlayRepo struct {
	db *sql.DB
}

func NewPlayRepo(db *sql.DB) *PlayRepo {
	return &PlayRepo{db: db}
}

func (r *PlayRepo) Insert(ctx context.Context, scenarioID string, delta int, xpAwarded int, playedAt time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO plays (scenario_id, delta, xp_awarded, played_at)
		VALUES (?, ?, ?, ?)
	`, scenarioID, delta, xpAwarded, playedAt)
	if err != nil {
		return 0, fmt.Errorf("play insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("play last insert id: %w", err)
	}
	return id, nil
}

// ListScenarioIDs returns the distinct scenarios ever completed, in first-play
// order. This is the persisted form of the played set.
func (r *PlayRepo) ListScenarioIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT scenario_id FROM plays GROUP BY scenario_id ORDER BY MIN(id) ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("play list scenarios: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("play scan: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("play rows: %w", err)
	}
	return out, nil
}

func (r *PlayRepo) ListAll(ctx context.Context) ([]Play, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, scenario_id, delta, xp_awarded, played_at FROM plays ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("play list: %w", err)
	}
	defer rows.Close()

	var out []Play
	for rows.Next() {
		var p Play
		if err := rows.Scan(&p.ID, &p.ScenarioID, &p.Delta, &p.XPAwarded, &p.PlayedAt); err != nil {
			return nil, fmt.Errorf("play scan: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("play rows: %w", err)
	}
	return out, nil
}
