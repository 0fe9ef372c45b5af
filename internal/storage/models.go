package storage

import "time"

type ProgressRow struct {
	Key            string
	Score          int
	XP             int
	Streak         int
	LastPlayAt     *time.Time
	ReminderFreq   string
	ReminderNextAt *time.Time
	Notifs         string
}

type Play struct {
	ID         int64
	ScenarioID string
	Delta      int
	XPAwarded  int
	PlayedAt   time.Time
}

type BadgeUnlock struct {
	BadgeID    string
	UnlockedAt time.Time
}

type Post struct {
	ID        string
	Body      string
	Topic     string
	Location  string
	Author    *string
	CreatedAt time.Time
	RemoteID  *string
}

type Symptom struct {
	ID        string
	EntryDate time.Time
	Name      string
	Severity  int
	HeartRate *int
	BPSys     *int
	BPDia     *int
	Notes     string
	CreatedAt time.Time
	RemoteID  *string
}
