package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type PostRepo struct {
	db *sql.DB
}

func NewPostRepo(db *sql.DB) *PostRepo {
	return &PostRepo{db: db}
}

func (r *PostRepo) Insert(ctx context.Context, p Post) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO posts (id, body, topic, location, author, created_at, remote_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Body, p.Topic, p.Location, p.Author, p.CreatedAt, p.RemoteID)
	if err != nil {
		return fmt.Errorf("post insert: %w", err)
	}
	return nil
}

// PostFilter narrows List to the given topics and locations. Empty slices
// mean "match everything" for that dimension.
type PostFilter struct {
	Topics    []string
	Locations []string
}

// List returns posts newest first, optionally filtered.
func (r *PostRepo) List(ctx context.Context, f PostFilter) ([]Post, error) {
	query := `SELECT id, body, topic, location, author, created_at, remote_id FROM posts`
	var (
		clauses []string
		args    []any
	)
	if len(f.Topics) > 0 {
		clauses = append(clauses, `topic IN (`+placeholders(len(f.Topics))+`)`)
		for _, t := range f.Topics {
			args = append(args, t)
		}
	}
	if len(f.Locations) > 0 {
		clauses = append(clauses, `location IN (`+placeholders(len(f.Locations))+`)`)
		for _, l := range f.Locations {
			args = append(args, l)
		}
	}
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("post list: %w", err)
	}
	defer rows.Close()

	var out []Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("post rows: %w", err)
	}
	return out, nil
}

// ListUnsynced returns posts not yet pushed to the remote backend.
func (r *PostRepo) ListUnsynced(ctx context.Context) ([]Post, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, body, topic, location, author, created_at, remote_id
		FROM posts WHERE remote_id IS NULL ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("post list unsynced: %w", err)
	}
	defer rows.Close()

	var out []Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("post rows: %w", err)
	}
	return out, nil
}

func (r *PostRepo) SetRemoteID(ctx context.Context, id string, remoteID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE posts SET remote_id = ? WHERE id = ?`, remoteID, id)
	if err != nil {
		return fmt.Errorf("post set remote id: %w", err)
	}
	return nil
}

func (r *PostRepo) HasRemoteID(ctx context.Context, remoteID string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT 1 FROM posts WHERE remote_id = ? LIMIT 1`, remoteID)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("post has remote id: %w", err)
	}
	return true, nil
}

func scanPost(rows *sql.Rows) (*Post, error) {
	var (
		p        Post
		author   sql.NullString
		remoteID sql.NullString
	)
	if err := rows.Scan(&p.ID, &p.Body, &p.Topic, &p.Location, &author, &p.CreatedAt, &remoteID); err != nil {
		return nil, fmt.Errorf("post scan: %w", err)
	}
	if author.Valid {
		v := author.String
		p.Author = &v
	}
	if remoteID.Valid {
		v := remoteID.String
		p.RemoteID = &v
	}
	return &p, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
