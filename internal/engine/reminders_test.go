package engine

import (
	"testing"
	"time"
)

func TestScheduleReminderPeriods(t *testing.T) {
	now := day(0)
	rec := NewProgress()

	rec = ScheduleReminder(rec, ReminderDaily, now)
	if !rec.Reminders.NextAt.Equal(now.Add(24 * time.Hour)) {
		t.Fatalf("daily NextAt=%v", rec.Reminders.NextAt)
	}

	rec = ScheduleReminder(rec, ReminderWeekly, now)
	if !rec.Reminders.NextAt.Equal(now.Add(7 * 24 * time.Hour)) {
		t.Fatalf("weekly NextAt=%v", rec.Reminders.NextAt)
	}

	rec = ScheduleReminder(rec, ReminderNone, now)
	if !rec.Reminders.NextAt.IsZero() {
		t.Fatalf("none NextAt=%v, want zero", rec.Reminders.NextAt)
	}
}

func TestScheduleReminderIdempotent(t *testing.T) {
	now := day(0)
	a := ScheduleReminder(NewProgress(), ReminderDaily, now)
	b := ScheduleReminder(a, ReminderDaily, now)
	if !a.Reminders.NextAt.Equal(b.Reminders.NextAt) {
		t.Fatalf("same freq+now produced different NextAt: %v vs %v", a.Reminders.NextAt, b.Reminders.NextAt)
	}
}

func TestCheckDueFiresOnce(t *testing.T) {
	rec := ScheduleReminder(NewProgress(), ReminderDaily, day(0))
	later := day(2)

	due, rec := CheckDue(rec, later)
	if !due {
		t.Fatalf("expected due after two days")
	}
	if !rec.Reminders.NextAt.Equal(later.Add(24 * time.Hour)) {
		t.Fatalf("rescheduled NextAt=%v, want one period past check time", rec.Reminders.NextAt)
	}

	due, _ = CheckDue(rec, later)
	if due {
		t.Fatalf("second check with unchanged now reported due again")
	}
}

func TestCheckDueNoBacklog(t *testing.T) {
	rec := ScheduleReminder(NewProgress(), ReminderDaily, day(0))

	// Ten days late: a single fire, rescheduled from the check time.
	late := day(10)
	due, rec := CheckDue(rec, late)
	if !due {
		t.Fatalf("expected due")
	}
	if !rec.Reminders.NextAt.Equal(late.Add(24 * time.Hour)) {
		t.Fatalf("NextAt=%v, want %v", rec.Reminders.NextAt, late.Add(24*time.Hour))
	}
}

func TestCheckDueDisabled(t *testing.T) {
	rec := NewProgress()
	if due, _ := CheckDue(rec, day(100)); due {
		t.Fatalf("unscheduled reminder reported due")
	}
}

func TestSnooze(t *testing.T) {
	rec := ScheduleReminder(NewProgress(), ReminderWeekly, day(0))
	now := day(0).Add(time.Hour)
	rec = Snooze(rec, now)
	if !rec.Reminders.NextAt.Equal(now.Add(24 * time.Hour)) {
		t.Fatalf("snoozed NextAt=%v", rec.Reminders.NextAt)
	}
	if rec.Reminders.Freq != ReminderWeekly {
		t.Fatalf("snooze changed frequency")
	}
}

func TestParseReminderFrequency(t *testing.T) {
	if _, err := ParseReminderFrequency("hourly"); err == nil {
		t.Fatalf("expected error for unknown frequency")
	}
	f, err := ParseReminderFrequency(" Daily ")
	if err != nil || f != ReminderDaily {
		t.Fatalf("ParseReminderFrequency(Daily)=%v,%v", f, err)
	}
}
