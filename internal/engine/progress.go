package engine

import "time"

// Reminders is the reminder configuration carried inside a progress record.
// A zero NextAt means nothing is scheduled.
type Reminders struct {
	Freq   ReminderFrequency `json:"freq"`
	NextAt time.Time         `json:"nextAt"`
	Notifs NotifPermission   `json:"notifs"`
}

// Progress is the complete gamification state for one user. Level is always
// derived from XP; callers must never set it independently.
type Progress struct {
	Score      int          `json:"score"`
	XP         int          `json:"xp"`
	Level      int          `json:"level"`
	Streak     int          `json:"streak"`
	LastPlayAt *time.Time   `json:"lastPlayDate"`
	Played     []ScenarioID `json:"played"`
	Badges     []BadgeID    `json:"badges"`
	Reminders  Reminders    `json:"reminders"`
}

// NewProgress returns the default record for a fresh user.
func NewProgress() Progress {
	return Progress{
		Level:     1,
		Reminders: Reminders{Freq: ReminderNone, Notifs: NotifDefault},
	}
}

// Reset returns a zeroed record, carrying only the reminder configuration
// forward from the old one.
func Reset(rec Progress) Progress {
	fresh := NewProgress()
	fresh.Reminders = rec.Reminders
	return fresh
}

func (p Progress) HasPlayed(id ScenarioID) bool {
	for _, s := range p.Played {
		if s == id {
			return true
		}
	}
	return false
}

func (p Progress) HasBadge(id BadgeID) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// epochDay maps an instant to a UTC calendar day number. Streak transitions
// compare days-since-epoch in a fixed calendar so that 23:59 followed by
// 00:01 counts as consecutive days, while two plays 20 hours apart on the
// same date count as one day.
func epochDay(t time.Time) int64 {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).Unix() / 86400
}
