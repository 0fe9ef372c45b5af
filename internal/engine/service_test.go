package engine

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/its-serah/SheRages/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	svc := NewService(db)
	svc.SetRand(rand.New(rand.NewSource(42)))
	return svc
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCompleteScenarioPersists(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	svc.SetClock(fixedClock(day(0)))

	res, err := svc.CompleteScenario(ctx, "s1", 0)
	if err != nil {
		t.Fatalf("CompleteScenario: %v", err)
	}
	if res.XPAwarded != 20 {
		t.Fatalf("xp awarded=%d, want 20", res.XPAwarded)
	}

	rec, err := svc.Progress(ctx)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if rec.XP != 20 || rec.Score != 2 || rec.Streak != 1 {
		t.Fatalf("persisted record = xp:%d score:%d streak:%d", rec.XP, rec.Score, rec.Streak)
	}
	if len(rec.Played) != 1 || rec.Played[0] != "s1" {
		t.Fatalf("persisted played=%v", rec.Played)
	}
	if !rec.HasBadge("first_steps") {
		t.Fatalf("first_steps not persisted")
	}

	plays, err := svc.PlayRepo().ListAll(ctx)
	if err != nil {
		t.Fatalf("list plays: %v", err)
	}
	if len(plays) != 1 || plays[0].ScenarioID != "s1" || plays[0].XPAwarded != 20 {
		t.Fatalf("audit rows=%v", plays)
	}
}

func TestCompleteScenarioBadChoiceIndex(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.CompleteScenario(context.Background(), "s1", 3); err == nil {
		t.Fatalf("expected error for out-of-range choice index")
	}
}

func TestReplayDoesNotDuplicatePlayedSet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	svc.SetClock(fixedClock(day(0)))

	if _, err := svc.CompleteScenario(ctx, "s1", 0); err != nil {
		t.Fatalf("first play: %v", err)
	}
	if _, err := svc.CompleteScenario(ctx, "s1", 1); err != nil {
		t.Fatalf("replay: %v", err)
	}

	rec, _ := svc.Progress(ctx)
	if len(rec.Played) != 1 {
		t.Fatalf("played=%v, want one entry", rec.Played)
	}
	if rec.Streak != 1 {
		t.Fatalf("same-day replay advanced streak to %d", rec.Streak)
	}

	plays, _ := svc.PlayRepo().ListAll(ctx)
	if len(plays) != 2 {
		t.Fatalf("audit rows=%d, want 2", len(plays))
	}
}

func TestStreakAcrossSessions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.SetClock(fixedClock(day(0)))
	if _, err := svc.CompleteScenario(ctx, "s1", 0); err != nil {
		t.Fatalf("day 1: %v", err)
	}
	svc.SetClock(fixedClock(day(1)))
	if _, err := svc.CompleteScenario(ctx, "s2", 0); err != nil {
		t.Fatalf("day 2: %v", err)
	}
	svc.SetClock(fixedClock(day(3)))
	if _, err := svc.CompleteScenario(ctx, "s3", 0); err != nil {
		t.Fatalf("day 4: %v", err)
	}

	rec, _ := svc.Progress(ctx)
	if rec.Streak != 1 {
		t.Fatalf("streak=%d after a skipped day, want 1", rec.Streak)
	}
}

func TestDrawScenarioExcludesPlayed(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	svc.SetClock(fixedClock(day(0)))

	played := map[ScenarioID]bool{}
	for i := 0; i < ScenarioCount(); i++ {
		sc, err := svc.DrawScenario(ctx)
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		if played[sc.ID] {
			t.Fatalf("drew %s twice", sc.ID)
		}
		played[sc.ID] = true
		if _, err := svc.CompleteScenario(ctx, sc.ID, 0); err != nil {
			t.Fatalf("complete %s: %v", sc.ID, err)
		}
	}

	if _, err := svc.DrawScenario(ctx); err != ErrCatalogExhausted {
		t.Fatalf("expected exhausted catalog, got %v", err)
	}
}

func TestResetProgressKeepsReminderConfig(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	svc.SetClock(fixedClock(day(0)))

	if _, err := svc.CompleteScenario(ctx, "s1", 0); err != nil {
		t.Fatalf("play: %v", err)
	}
	if _, err := svc.SetReminderFrequency(ctx, ReminderDaily); err != nil {
		t.Fatalf("set reminder: %v", err)
	}

	if err := svc.ResetProgress(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	rec, _ := svc.Progress(ctx)
	if rec.XP != 0 || rec.Score != 0 || rec.Streak != 0 || len(rec.Played) != 0 || len(rec.Badges) != 0 {
		t.Fatalf("reset record not fresh: %+v", rec)
	}
	if rec.Reminders.Freq != ReminderDaily {
		t.Fatalf("reset dropped reminder freq: %v", rec.Reminders.Freq)
	}
}

func TestSetNotifPermissionRoundTrips(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.SetNotifPermission(ctx, NotifGranted); err != nil {
		t.Fatalf("set notif permission: %v", err)
	}
	if err := svc.SetNotifPermission(ctx, "sometimes"); err == nil {
		t.Fatalf("expected error for invalid permission")
	}

	rec, _ := svc.Progress(ctx)
	if rec.Reminders.Notifs != NotifGranted {
		t.Fatalf("notifs=%v, want granted", rec.Reminders.Notifs)
	}
}

func TestCheckDueReminderPersistsReschedule(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.SetClock(fixedClock(day(0)))
	if _, err := svc.SetReminderFrequency(ctx, ReminderDaily); err != nil {
		t.Fatalf("set reminder: %v", err)
	}

	svc.SetClock(fixedClock(day(2)))
	due, _, err := svc.CheckDueReminder(ctx)
	if err != nil {
		t.Fatalf("check due: %v", err)
	}
	if !due {
		t.Fatalf("expected due")
	}

	due, _, err = svc.CheckDueReminder(ctx)
	if err != nil {
		t.Fatalf("second check: %v", err)
	}
	if due {
		t.Fatalf("due fired twice for the same check time")
	}
}
