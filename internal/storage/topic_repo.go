package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// DefaultTopics seeds the topics table on first run.
var DefaultTopics = []string{
	"Advocacy", "Diagnosis", "Cardio", "Pain", "Mental Health",
	"Medication", "Reproductive Health", "Research", "Insurance", "Support",
}

type TopicRepo struct {
	db *sql.DB
}

func NewTopicRepo(db *sql.DB) *TopicRepo {
	return &TopicRepo{db: db}
}

// EnsureDefaults inserts the default topic list; existing rows are left alone.
func (r *TopicRepo) EnsureDefaults(ctx context.Context) error {
	for _, t := range DefaultTopics {
		if err := r.Ensure(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (r *TopicRepo) Ensure(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO topics (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, name)
	if err != nil {
		return fmt.Errorf("topic ensure: %w", err)
	}
	return nil
}

func (r *TopicRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM topics ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("topic list: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("topic scan: %w", err)
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("topic rows: %w", err)
	}
	return out, nil
}
