package engine

import (
	"fmt"
	"time"
)

type EventKind string

const (
	EventLevelUp       EventKind = "level_up"
	EventBadgeUnlocked EventKind = "badge_unlocked"
)

// Event is a notification the presentation layer should render transiently.
// The engine returns events instead of calling into any UI.
type Event struct {
	Kind   EventKind
	Title  string
	Detail string
}

// ApplyChoice records the completion of one scenario choice: score and XP
// move, the streak transitions by UTC calendar day, the played set grows, and
// any newly satisfied badges unlock. The input record is not mutated; callers
// persist the returned one.
func ApplyChoice(rec Progress, scenarioID ScenarioID, delta int, now time.Time) (Progress, []Event, error) {
	if _, err := ScenarioByID(scenarioID); err != nil {
		return rec, nil, err
	}

	var events []Event

	rec.Score += delta

	levelBefore := LevelForXP(rec.XP)
	rec.XP += XPForChoice(delta)
	rec.Level = LevelForXP(rec.XP)
	if rec.Level > levelBefore {
		events = append(events, Event{
			Kind:   EventLevelUp,
			Title:  "Level Up!",
			Detail: fmt.Sprintf("Welcome to Level %d!", rec.Level),
		})
	}

	rec = advanceStreak(rec, now)

	if !rec.HasPlayed(scenarioID) {
		rec.Played = append(rec.Played, scenarioID)
	}

	for _, b := range newBadges(rec) {
		rec.Badges = append(rec.Badges, b.ID)
		events = append(events, Event{
			Kind:   EventBadgeUnlocked,
			Title:  "Badge Earned!",
			Detail: fmt.Sprintf("%s %s", b.Icon, b.Name),
		})
	}

	return rec, events, nil
}

// advanceStreak applies the calendar-day streak transition:
//   - never played: streak becomes 1
//   - already played today: no-op, LastPlayAt untouched
//   - last play exactly yesterday: streak increments
//   - any other gap (including clock skew into the future): streak resets to 1
func advanceStreak(rec Progress, now time.Time) Progress {
	today := epochDay(now)

	if rec.LastPlayAt == nil {
		rec.Streak = 1
		t := now
		rec.LastPlayAt = &t
		return rec
	}

	last := epochDay(*rec.LastPlayAt)
	if last == today {
		return rec
	}
	if last == today-1 {
		rec.Streak++
	} else {
		rec.Streak = 1
	}
	t := now
	rec.LastPlayAt = &t
	return rec
}
