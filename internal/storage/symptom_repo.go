package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type SymptomRepo struct {
	db *sql.DB
}

func NewSymptomRepo(db *sql.DB) *SymptomRepo {
	return &SymptomRepo{db: db}
}

func (r *SymptomRepo) Insert(ctx context.Context, s Symptom) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO symptoms (id, entry_date, name, severity, heart_rate, bp_sys, bp_dia, notes, created_at, remote_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.EntryDate, s.Name, s.Severity, s.HeartRate, s.BPSys, s.BPDia, s.Notes, s.CreatedAt, s.RemoteID)
	if err != nil {
		return fmt.Errorf("symptom insert: %w", err)
	}
	return nil
}

// ListRange returns entries newest first. Zero bounds leave that side open.
func (r *SymptomRepo) ListRange(ctx context.Context, from, to time.Time) ([]Symptom, error) {
	query := `SELECT id, entry_date, name, severity, heart_rate, bp_sys, bp_dia, notes, created_at, remote_id FROM symptoms`
	var (
		clauses []string
		args    []any
	)
	if !from.IsZero() {
		clauses = append(clauses, `entry_date >= ?`)
		args = append(args, from)
	}
	if !to.IsZero() {
		clauses = append(clauses, `entry_date <= ?`)
		args = append(args, to)
	}
	for i, c := range clauses {
		if i == 0 {
			query += ` WHERE ` + c
		} else {
			query += ` AND ` + c
		}
	}
	query += ` ORDER BY entry_date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("symptom list: %w", err)
	}
	defer rows.Close()

	var out []Symptom
	for rows.Next() {
		s, err := scanSymptom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("symptom rows: %w", err)
	}
	return out, nil
}

func (r *SymptomRepo) ListUnsynced(ctx context.Context) ([]Symptom, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, entry_date, name, severity, heart_rate, bp_sys, bp_dia, notes, created_at, remote_id
		FROM symptoms WHERE remote_id IS NULL ORDER BY entry_date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("symptom list unsynced: %w", err)
	}
	defer rows.Close()

	var out []Symptom
	for rows.Next() {
		s, err := scanSymptom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("symptom rows: %w", err)
	}
	return out, nil
}

func (r *SymptomRepo) SetRemoteID(ctx context.Context, id string, remoteID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE symptoms SET remote_id = ? WHERE id = ?`, remoteID, id)
	if err != nil {
		return fmt.Errorf("symptom set remote id: %w", err)
	}
	return nil
}

func (r *SymptomRepo) HasRemoteID(ctx context.Context, remoteID string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT 1 FROM symptoms WHERE remote_id = ? LIMIT 1`, remoteID)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("symptom has remote id: %w", err)
	}
	return true, nil
}

func scanSymptom(rows *sql.Rows) (*Symptom, error) {
	var (
		s         Symptom
		heartRate sql.NullInt64
		bpSys     sql.NullInt64
		bpDia     sql.NullInt64
		notes     sql.NullString
		remoteID  sql.NullString
	)
	if err := rows.Scan(&s.ID, &s.EntryDate, &s.Name, &s.Severity, &heartRate, &bpSys, &bpDia, &notes, &s.CreatedAt, &remoteID); err != nil {
		return nil, fmt.Errorf("symptom scan: %w", err)
	}
	if heartRate.Valid {
		v := int(heartRate.Int64)
		s.HeartRate = &v
	}
	if bpSys.Valid {
		v := int(bpSys.Int64)
		s.BPSys = &v
	}
	if bpDia.Valid {
		v := int(bpDia.Int64)
		s.BPDia = &v
	}
	if notes.Valid {
		s.Notes = notes.String
	}
	if remoteID.Valid {
		v := remoteID.String
		s.RemoteID = &v
	}
	return &s, nil
}
