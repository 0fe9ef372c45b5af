package engine

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/its-serah/SheRages/internal/storage"
)

// Service orchestrates the progression engine over the SQLite repos. The
// engine functions themselves are pure; the service loads the record, applies
// an operation, and persists the result.
type Service struct {
	db       *sql.DB
	progress *storage.ProgressRepo
	plays    *storage.PlayRepo
	posts    *storage.PostRepo
	symptoms *storage.SymptomRepo
	topics   *storage.TopicRepo

	rng *rand.Rand
	now func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:       db,
		progress: storage.NewProgressRepo(db),
		plays:    storage.NewPlayRepo(db),
		posts:    storage.NewPostRepo(db),
		symptoms: storage.NewSymptomRepo(db),
		topics:   storage.NewTopicRepo(db),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

func (s *Service) ProgressRepo() *storage.ProgressRepo { return s.progress }
func (s *Service) PlayRepo() *storage.PlayRepo         { return s.plays }
func (s *Service) PostRepo() *storage.PostRepo         { return s.posts }
func (s *Service) SymptomRepo() *storage.SymptomRepo   { return s.symptoms }
func (s *Service) TopicRepo() *storage.TopicRepo       { return s.topics }

// SetClock overrides the service clock. Tests use this to play across
// calendar days.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// SetRand overrides the scenario-draw randomness source.
func (s *Service) SetRand(rng *rand.Rand) { s.rng = rng }

// Progress assembles the full in-memory record from the progress row, the
// play history and the badge unlocks.
func (s *Service) Progress(ctx context.Context) (Progress, error) {
	row, err := s.progress.GetOrCreateMain(ctx)
	if err != nil {
		return Progress{}, err
	}

	rec := NewProgress()
	rec.Score = row.Score
	rec.XP = row.XP
	rec.Level = LevelForXP(row.XP)
	rec.Streak = row.Streak
	rec.LastPlayAt = row.LastPlayAt

	freq, err := ParseReminderFrequency(row.ReminderFreq)
	if err != nil {
		freq = ReminderNone
	}
	rec.Reminders.Freq = freq
	if row.ReminderNextAt != nil {
		rec.Reminders.NextAt = *row.ReminderNextAt
	}
	if n := NotifPermission(row.Notifs); n.IsValid() {
		rec.Reminders.Notifs = n
	}

	played, err := s.plays.ListScenarioIDs(ctx)
	if err != nil {
		return Progress{}, err
	}
	for _, id := range played {
		rec.Played = append(rec.Played, ScenarioID(id))
	}

	badgeIDs, err := s.progress.ListBadgeIDs(ctx)
	if err != nil {
		return Progress{}, err
	}
	for _, id := range badgeIDs {
		rec.Badges = append(rec.Badges, BadgeID(id))
	}

	return rec, nil
}

func (s *Service) saveProgressRow(ctx context.Context, rec Progress) error {
	row := &storage.ProgressRow{
		Key:          storage.MainUserKey,
		Score:        rec.Score,
		XP:           rec.XP,
		Streak:       rec.Streak,
		LastPlayAt:   rec.LastPlayAt,
		ReminderFreq: string(rec.Reminders.Freq),
		Notifs:       string(rec.Reminders.Notifs),
	}
	if !rec.Reminders.NextAt.IsZero() {
		t := rec.Reminders.NextAt
		row.ReminderNextAt = &t
	}
	return s.progress.Update(ctx, row)
}

// ResetProgress replaces the record with a fresh default one, wiping the play
// history and badge unlocks while keeping the reminder configuration.
func (s *Service) ResetProgress(ctx context.Context) error {
	rec, err := s.Progress(ctx)
	if err != nil {
		return err
	}
	fresh := Reset(rec)
	row := &storage.ProgressRow{
		Key:          storage.MainUserKey,
		Score:        fresh.Score,
		XP:           fresh.XP,
		Streak:       fresh.Streak,
		LastPlayAt:   fresh.LastPlayAt,
		ReminderFreq: string(fresh.Reminders.Freq),
		Notifs:       string(fresh.Reminders.Notifs),
	}
	if !fresh.Reminders.NextAt.IsZero() {
		t := fresh.Reminders.NextAt
		row.ReminderNextAt = &t
	}
	return s.progress.ResetMain(ctx, row)
}

// SetReminderFrequency updates and persists the reminder schedule.
func (s *Service) SetReminderFrequency(ctx context.Context, freq ReminderFrequency) (Progress, error) {
	rec, err := s.Progress(ctx)
	if err != nil {
		return Progress{}, err
	}
	rec = ScheduleReminder(rec, freq, s.now().UTC())
	if err := s.saveProgressRow(ctx, rec); err != nil {
		return Progress{}, err
	}
	return rec, nil
}

// CheckDueReminder reports whether a reminder fired and persists the advanced
// schedule when it did.
func (s *Service) CheckDueReminder(ctx context.Context) (bool, Progress, error) {
	rec, err := s.Progress(ctx)
	if err != nil {
		return false, Progress{}, err
	}
	due, rec := CheckDue(rec, s.now().UTC())
	if due {
		if err := s.saveProgressRow(ctx, rec); err != nil {
			return false, Progress{}, err
		}
	}
	return due, rec, nil
}

// SnoozeReminder pushes the next reminder a day out and persists it.
func (s *Service) SnoozeReminder(ctx context.Context) (Progress, error) {
	rec, err := s.Progress(ctx)
	if err != nil {
		return Progress{}, err
	}
	rec = Snooze(rec, s.now().UTC())
	if err := s.saveProgressRow(ctx, rec); err != nil {
		return Progress{}, err
	}
	return rec, nil
}

// SetNotifPermission stores the notification permission state.
func (s *Service) SetNotifPermission(ctx context.Context, n NotifPermission) error {
	if !n.IsValid() {
		return errors.New("invalid notification permission")
	}
	rec, err := s.Progress(ctx)
	if err != nil {
		return err
	}
	rec.Reminders.Notifs = n
	return s.saveProgressRow(ctx, rec)
}

func normalizeRequired(value, field string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", errors.New(field + " is required")
	}
	return v, nil
}
