package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/its-serah/SheRages/internal/storage"
)

const (
	MinSeverity = 1
	MaxSeverity = 10
)

type AddSymptomInput struct {
	Date      time.Time
	Name      string
	Severity  int
	HeartRate *int
	BPSys     *int
	BPDia     *int
	Notes     string
}

// AddSymptom stores a symptom log entry. Severity is clamped to 1..10; the
// entry date is truncated to its calendar day.
func (s *Service) AddSymptom(ctx context.Context, in AddSymptomInput) (*storage.Symptom, error) {
	name, err := normalizeRequired(in.Name, "symptom name")
	if err != nil {
		return nil, err
	}

	severity := in.Severity
	if severity < MinSeverity {
		severity = MinSeverity
	}
	if severity > MaxSeverity {
		severity = MaxSeverity
	}

	date := in.Date
	if date.IsZero() {
		date = s.now()
	}
	date = date.UTC().Truncate(24 * time.Hour)

	entry := storage.Symptom{
		ID:        uuid.NewString(),
		EntryDate: date,
		Name:      name,
		Severity:  severity,
		HeartRate: in.HeartRate,
		BPSys:     in.BPSys,
		BPDia:     in.BPDia,
		Notes:     in.Notes,
		CreatedAt: s.now().UTC(),
	}
	if err := s.symptoms.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListSymptoms returns entries newest first within the (optional) date range.
func (s *Service) ListSymptoms(ctx context.Context, from, to time.Time) ([]storage.Symptom, error) {
	// Make the upper bound inclusive of its whole day.
	if !to.IsZero() {
		to = to.UTC().Truncate(24 * time.Hour).Add(24*time.Hour - time.Nanosecond)
	}
	if !from.IsZero() {
		from = from.UTC().Truncate(24 * time.Hour)
	}
	return s.symptoms.ListRange(ctx, from, to)
}
