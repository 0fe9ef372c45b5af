package engine

import (
	"fmt"
	"strings"
)

// ScenarioID identifies a scenario in the static catalog.
type ScenarioID string

// BadgeID identifies a badge in the static catalog.
type BadgeID string

type ReminderFrequency string

const (
	ReminderNone   ReminderFrequency = "none"
	ReminderDaily  ReminderFrequency = "daily"
	ReminderWeekly ReminderFrequency = "weekly"
)

func (f ReminderFrequency) IsValid() bool {
	switch f {
	case ReminderNone, ReminderDaily, ReminderWeekly:
		return true
	default:
		return false
	}
}

func ParseReminderFrequency(input string) (ReminderFrequency, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	f := ReminderFrequency(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid reminder frequency: %q", input)
	}
	return f, nil
}

// NotifPermission mirrors the stored notification permission state. The CLI
// never talks to an OS notification service itself; the field round-trips so
// a richer client syncing the same record keeps whatever it decided.
type NotifPermission string

const (
	NotifDefault NotifPermission = "default"
	NotifGranted NotifPermission = "granted"
	NotifDenied  NotifPermission = "denied"
)

func (n NotifPermission) IsValid() bool {
	switch n {
	case NotifDefault, NotifGranted, NotifDenied:
		return true
	default:
		return false
	}
}
