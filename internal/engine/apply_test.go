package engine

import (
	"errors"
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestXPForChoiceFloor(t *testing.T) {
	cases := []struct {
		delta int
		want  int
	}{
		{-1, 5},
		{0, 10},
		{1, 15},
		{2, 20},
	}
	for _, c := range cases {
		if got := XPForChoice(c.delta); got != c.want {
			t.Fatalf("XPForChoice(%d)=%d, want %d", c.delta, got, c.want)
		}
		if XPForChoice(c.delta) < MinChoiceXP {
			t.Fatalf("XPForChoice(%d) below minimum", c.delta)
		}
	}
}

func TestLevelForXPBoundaries(t *testing.T) {
	if got := LevelForXP(0); got != 1 {
		t.Fatalf("LevelForXP(0)=%d, want 1", got)
	}
	if got := LevelForXP(99); got != 1 {
		t.Fatalf("LevelForXP(99)=%d, want 1", got)
	}
	if got := LevelForXP(100); got != 2 {
		t.Fatalf("LevelForXP(100)=%d, want 2", got)
	}
	if got := LevelForXP(350); got != 4 {
		t.Fatalf("LevelForXP(350)=%d, want 4", got)
	}
}

func TestApplyChoiceUnknownScenario(t *testing.T) {
	rec := NewProgress()
	_, _, err := ApplyChoice(rec, "nope", 2, day(0))
	if !errors.Is(err, ErrUnknownScenario) {
		t.Fatalf("expected ErrUnknownScenario, got %v", err)
	}
}

func TestApplyChoiceWalkthrough(t *testing.T) {
	rec := NewProgress()

	rec, _, err := ApplyChoice(rec, "s1", 2, day(0))
	if err != nil {
		t.Fatalf("apply day 1: %v", err)
	}
	if rec.XP != 20 || rec.Score != 2 || rec.Level != 1 || rec.Streak != 1 {
		t.Fatalf("day 1 record = xp:%d score:%d level:%d streak:%d", rec.XP, rec.Score, rec.Level, rec.Streak)
	}
	if len(rec.Played) != 1 || rec.Played[0] != "s1" {
		t.Fatalf("day 1 played = %v", rec.Played)
	}

	rec, _, err = ApplyChoice(rec, "s2", 2, day(1))
	if err != nil {
		t.Fatalf("apply day 2: %v", err)
	}
	if rec.XP != 40 || rec.Score != 4 || rec.Streak != 2 {
		t.Fatalf("day 2 record = xp:%d score:%d streak:%d", rec.XP, rec.Score, rec.Streak)
	}
}

func TestLevelAlwaysDerivedFromXP(t *testing.T) {
	rec := NewProgress()
	ids := []ScenarioID{"s1", "s2", "s3", "s4", "s5", "s6"}
	for i, id := range ids {
		var err error
		rec, _, err = ApplyChoice(rec, id, 2, day(i))
		if err != nil {
			t.Fatalf("apply %s: %v", id, err)
		}
		if rec.Level != LevelForXP(rec.XP) {
			t.Fatalf("level %d diverged from xp %d after %s", rec.Level, rec.XP, id)
		}
	}
}

func TestStreakSameDayNoOp(t *testing.T) {
	rec := NewProgress()
	rec, _, _ = ApplyChoice(rec, "s1", 2, day(0))
	first := *rec.LastPlayAt

	later := day(0).Add(3 * time.Hour)
	rec, _, _ = ApplyChoice(rec, "s2", 1, later)
	if rec.Streak != 1 {
		t.Fatalf("same-day streak=%d, want 1", rec.Streak)
	}
	if !rec.LastPlayAt.Equal(first) {
		t.Fatalf("same-day play moved LastPlayAt")
	}
}

func TestStreakSequenceWithGap(t *testing.T) {
	rec := NewProgress()
	plays := []struct {
		id   ScenarioID
		on   time.Time
		want int
	}{
		{"s1", day(0), 1},
		{"s2", day(1), 2},
		{"s3", day(3), 1}, // skipped a day
	}
	for _, p := range plays {
		var err error
		rec, _, err = ApplyChoice(rec, p.id, 0, p.on)
		if err != nil {
			t.Fatalf("apply %s: %v", p.id, err)
		}
		if rec.Streak != p.want {
			t.Fatalf("streak after %s = %d, want %d", p.id, rec.Streak, p.want)
		}
	}
}

func TestStreakMidnightBoundary(t *testing.T) {
	rec := NewProgress()
	lateNight := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	justAfter := time.Date(2025, 6, 2, 0, 1, 0, 0, time.UTC)

	rec, _, _ = ApplyChoice(rec, "s1", 2, lateNight)
	rec, _, _ = ApplyChoice(rec, "s2", 2, justAfter)
	if rec.Streak != 2 {
		t.Fatalf("midnight-straddling plays streak=%d, want 2", rec.Streak)
	}
}

func TestStreakClockSkewResets(t *testing.T) {
	rec := NewProgress()
	rec, _, _ = ApplyChoice(rec, "s1", 2, day(5))
	rec.Streak = 4

	// "now" is before the last play: treat as a broken streak, not a crash.
	rec, _, _ = ApplyChoice(rec, "s2", 2, day(2))
	if rec.Streak != 1 {
		t.Fatalf("clock-skew streak=%d, want 1", rec.Streak)
	}
}

func TestPlayedSetIdempotent(t *testing.T) {
	rec := NewProgress()
	rec, _, _ = ApplyChoice(rec, "s1", 2, day(0))
	rec, _, _ = ApplyChoice(rec, "s1", 2, day(0))
	if len(rec.Played) != 1 {
		t.Fatalf("played=%v, want single entry", rec.Played)
	}
}

func TestFirstStepsUnlocksExactlyOnce(t *testing.T) {
	rec := NewProgress()

	rec, events, _ := ApplyChoice(rec, "s1", 2, day(0))
	found := false
	for _, e := range events {
		if e.Kind == EventBadgeUnlocked && e.Detail == "👶 First Steps" {
			found = true
		}
	}
	if !found {
		t.Fatalf("first_steps not unlocked on first play: %v", events)
	}
	if !rec.HasBadge("first_steps") {
		t.Fatalf("badge missing from record")
	}

	_, events, _ = ApplyChoice(rec, "s2", 2, day(1))
	for _, e := range events {
		if e.Kind == EventBadgeUnlocked && e.Detail == "👶 First Steps" {
			t.Fatalf("first_steps re-fired")
		}
	}
}

func TestMasterBadgeRequiresFullCatalog(t *testing.T) {
	rec := NewProgress()
	ids := []ScenarioID{"s1", "s2", "s3", "s4", "s5", "s6"}
	for i, id := range ids {
		var events []Event
		rec, events, _ = ApplyChoice(rec, id, 0, day(i))
		unlocked := rec.HasBadge("master")
		if i < len(ids)-1 && unlocked {
			t.Fatalf("master unlocked after %d scenarios", i+1)
		}
		if i == len(ids)-1 && !unlocked {
			t.Fatalf("master not unlocked after full catalog: %v", events)
		}
	}
}

func TestLevelUpEvent(t *testing.T) {
	rec := NewProgress()
	rec.XP = 95

	rec, events, _ := ApplyChoice(rec, "s1", 2, day(0))
	if rec.Level != 2 {
		t.Fatalf("level=%d, want 2", rec.Level)
	}
	found := false
	for _, e := range events {
		if e.Kind == EventLevelUp {
			found = true
		}
	}
	if !found {
		t.Fatalf("no level_up event: %v", events)
	}
}

func TestResetKeepsReminders(t *testing.T) {
	rec := NewProgress()
	rec, _, _ = ApplyChoice(rec, "s1", 2, day(0))
	rec = ScheduleReminder(rec, ReminderWeekly, day(0))
	rec.Reminders.Notifs = NotifGranted

	fresh := Reset(rec)
	if fresh.Score != 0 || fresh.XP != 0 || fresh.Level != 1 || fresh.Streak != 0 {
		t.Fatalf("reset record not zeroed: %+v", fresh)
	}
	if len(fresh.Played) != 0 || len(fresh.Badges) != 0 || fresh.LastPlayAt != nil {
		t.Fatalf("reset kept history: %+v", fresh)
	}
	if fresh.Reminders.Freq != ReminderWeekly || fresh.Reminders.Notifs != NotifGranted {
		t.Fatalf("reset dropped reminder config: %+v", fresh.Reminders)
	}
	if !fresh.Reminders.NextAt.Equal(rec.Reminders.NextAt) {
		t.Fatalf("reset moved NextAt")
	}
}
