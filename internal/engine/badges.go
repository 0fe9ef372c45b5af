package engine

// BadgeRequirement is the kind of threshold a badge checks.
type BadgeRequirement string

const (
	RequireScenarios    BadgeRequirement = "scenarios"
	RequireScore        BadgeRequirement = "score"
	RequireStreak       BadgeRequirement = "streak"
	RequireLevel        BadgeRequirement = "level"
	RequireAllScenarios BadgeRequirement = "all_scenarios"
)

// Badge is an achievement unlocked permanently once its threshold is met.
type Badge struct {
	ID          BadgeID
	Name        string
	Description string
	Icon        string
	Requirement BadgeRequirement
	Count       int
}

var badges = []Badge{
	{ID: "first_steps", Name: "First Steps", Description: "Complete your first scenario", Icon: "👶", Requirement: RequireScenarios, Count: 1},
	{ID: "getting_stronger", Name: "Getting Stronger", Description: "Complete 5 scenarios", Icon: "💪", Requirement: RequireScenarios, Count: 5},
	{ID: "advocate", Name: "Advocate", Description: "Score 20+ points", Icon: "⚡", Requirement: RequireScore, Count: 20},
	{ID: "unstoppable", Name: "Unstoppable", Description: "Get a 3-day streak", Icon: "🔥", Requirement: RequireStreak, Count: 3},
	{ID: "warrior", Name: "Warrior", Description: "Reach level 5", Icon: "⚔️", Requirement: RequireLevel, Count: 5},
	{ID: "master", Name: "Master", Description: "Complete all scenarios", Icon: "👑", Requirement: RequireAllScenarios, Count: 6},
}

// AllBadges returns the badge catalog in unlock-evaluation order.
func AllBadges() []Badge {
	out := make([]Badge, len(badges))
	copy(out, badges)
	return out
}

func BadgeByID(id BadgeID) *Badge {
	for i := range badges {
		if badges[i].ID == id {
			return &badges[i]
		}
	}
	return nil
}

func (b Badge) earnedBy(rec Progress) bool {
	switch b.Requirement {
	case RequireScenarios:
		return len(rec.Played) >= b.Count
	case RequireScore:
		return rec.Score >= b.Count
	case RequireStreak:
		return rec.Streak >= b.Count
	case RequireLevel:
		return rec.Level >= b.Count
	case RequireAllScenarios:
		return len(rec.Played) >= len(scenarios)
	default:
		return false
	}
}

// newBadges returns catalog badges the record now satisfies but does not yet
// hold, in catalog order.
func newBadges(rec Progress) []Badge {
	var out []Badge
	for _, b := range badges {
		if rec.HasBadge(b.ID) {
			continue
		}
		if b.earnedBy(rec) {
			out = append(out, b)
		}
	}
	return out
}
