package engine

import (
	"context"
	"fmt"
)

// PlayResult is what one completed choice produced, for the CLI/TUI to render.
type PlayResult struct {
	Scenario    *Scenario
	Choice      Choice
	Record      Progress
	Events      []Event
	XPAwarded   int
	LevelBefore int
	LevelAfter  int
	// StreakExtended is true when this play was the first of its calendar
	// day, i.e. the streak moved (started, incremented, or reset to 1).
	StreakExtended bool
}

// DrawScenario picks a random unplayed scenario, or ErrCatalogExhausted when
// the play-through is complete.
func (s *Service) DrawScenario(ctx context.Context) (*Scenario, error) {
	rec, err := s.Progress(ctx)
	if err != nil {
		return nil, err
	}
	return NextScenario(rec.Played, s.rng)
}

// CompleteScenario applies the chosen response of a scenario and persists the
// updated record plus a play audit row. choiceIndex is zero-based.
func (s *Service) CompleteScenario(ctx context.Context, scenarioID ScenarioID, choiceIndex int) (*PlayResult, error) {
	scenario, err := ScenarioByID(scenarioID)
	if err != nil {
		return nil, err
	}
	if choiceIndex < 0 || choiceIndex >= len(scenario.Choices) {
		return nil, fmt.Errorf("scenario %s has no choice %d", scenarioID, choiceIndex+1)
	}
	choice := scenario.Choices[choiceIndex]

	rec, err := s.Progress(ctx)
	if err != nil {
		return nil, err
	}
	levelBefore := rec.Level
	lastDayBefore := int64(-1)
	if rec.LastPlayAt != nil {
		lastDayBefore = epochDay(*rec.LastPlayAt)
	}

	now := s.now().UTC()
	next, events, err := ApplyChoice(rec, scenarioID, choice.Delta, now)
	if err != nil {
		return nil, err
	}

	if err := s.saveProgressRow(ctx, next); err != nil {
		return nil, err
	}
	if _, err := s.plays.Insert(ctx, string(scenarioID), choice.Delta, XPForChoice(choice.Delta), now); err != nil {
		return nil, err
	}
	for _, id := range next.Badges {
		if rec.HasBadge(id) {
			continue
		}
		if err := s.progress.AddBadge(ctx, string(id), now); err != nil {
			return nil, err
		}
	}

	return &PlayResult{
		Scenario:       scenario,
		Choice:         choice,
		Record:         next,
		Events:         events,
		XPAwarded:      XPForChoice(choice.Delta),
		LevelBefore:    levelBefore,
		LevelAfter:     next.Level,
		StreakExtended: epochDay(now) != lastDayBefore,
	}, nil
}
