package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestCatalogShape(t *testing.T) {
	all := AllScenarios()
	if len(all) != 6 {
		t.Fatalf("catalog size=%d, want 6", len(all))
	}
	for _, sc := range all {
		if len(sc.Choices) != 3 {
			t.Fatalf("scenario %s has %d choices", sc.ID, len(sc.Choices))
		}
		for i, c := range sc.Choices {
			if c.Delta < -1 || c.Delta > 2 {
				t.Fatalf("scenario %s choice %d delta=%d out of range", sc.ID, i, c.Delta)
			}
			if c.Feedback == "" {
				t.Fatalf("scenario %s choice %d missing feedback", sc.ID, i)
			}
		}
	}
}

func TestNextScenarioSkipsPlayed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	played := []ScenarioID{"s1", "s2", "s3"}
	for i := 0; i < 50; i++ {
		sc, err := NextScenario(played, rng)
		if err != nil {
			t.Fatalf("NextScenario: %v", err)
		}
		for _, p := range played {
			if sc.ID == p {
				t.Fatalf("drew already-played scenario %s", sc.ID)
			}
		}
	}
}

func TestNextScenarioExhausted(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var played []ScenarioID
	for _, sc := range AllScenarios() {
		played = append(played, sc.ID)
	}
	if _, err := NextScenario(played, rng); !errors.Is(err, ErrCatalogExhausted) {
		t.Fatalf("expected ErrCatalogExhausted, got %v", err)
	}
}

func TestScenarioByIDUnknown(t *testing.T) {
	if _, err := ScenarioByID("s99"); !errors.Is(err, ErrUnknownScenario) {
		t.Fatalf("expected ErrUnknownScenario, got %v", err)
	}
}

func TestBadgeCatalogConsistency(t *testing.T) {
	seen := map[BadgeID]bool{}
	for _, b := range AllBadges() {
		if seen[b.ID] {
			t.Fatalf("duplicate badge id %s", b.ID)
		}
		seen[b.ID] = true
		if BadgeByID(b.ID) == nil {
			t.Fatalf("BadgeByID(%s) missing", b.ID)
		}
	}
	if BadgeByID("nope") != nil {
		t.Fatalf("BadgeByID returned a badge for an unknown id")
	}
}
