package engine

import "time"

// ReminderPeriod returns the interval between reminders for a frequency.
// The zero duration for ReminderNone means "nothing scheduled".
func ReminderPeriod(freq ReminderFrequency) time.Duration {
	switch freq {
	case ReminderDaily:
		return 24 * time.Hour
	case ReminderWeekly:
		return 7 * 24 * time.Hour
	default:
		return 0
	}
}

// ScheduleReminder sets the reminder frequency and computes the next firing
// time from now. Calling twice with the same freq and now is idempotent.
func ScheduleReminder(rec Progress, freq ReminderFrequency, now time.Time) Progress {
	rec.Reminders.Freq = freq
	if freq == ReminderNone {
		rec.Reminders.NextAt = time.Time{}
		return rec
	}
	rec.Reminders.NextAt = now.Add(ReminderPeriod(freq))
	return rec
}

// CheckDue reports whether a reminder is due at now and, if so, reschedules
// exactly one period ahead of now. Rescheduling from the check time rather
// than the missed slot keeps repeated late checks from building a backlog.
func CheckDue(rec Progress, now time.Time) (bool, Progress) {
	r := rec.Reminders
	if r.Freq == ReminderNone || r.NextAt.IsZero() || now.Before(r.NextAt) {
		return false, rec
	}
	rec.Reminders.NextAt = now.Add(ReminderPeriod(r.Freq))
	return true, rec
}

// Snooze pushes the next reminder one day out regardless of frequency.
func Snooze(rec Progress, now time.Time) Progress {
	rec.Reminders.NextAt = now.Add(24 * time.Hour)
	return rec
}
