package engine

const (
	// XPPerLevel is the flat amount of XP that spans one level.
	XPPerLevel = 100

	// ChoiceBaseXP and ChoiceDeltaXP shape the per-choice award:
	// gain = ChoiceBaseXP + delta*ChoiceDeltaXP, floored at MinChoiceXP.
	ChoiceBaseXP  = 10
	ChoiceDeltaXP = 5

	// MinChoiceXP guarantees even the worst choice yields progress. The
	// policy is "no punishment, only smaller reward".
	MinChoiceXP = 5
)

// LevelForXP returns the level for a total XP amount. Levels start at 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPForChoice returns the XP awarded for a choice with the given point delta.
func XPForChoice(delta int) int {
	gain := ChoiceBaseXP + delta*ChoiceDeltaXP
	if gain < MinChoiceXP {
		gain = MinChoiceXP
	}
	return gain
}

// XPIntoLevel returns how far into the current level the total XP sits.
func XPIntoLevel(xp int) int {
	if xp < 0 {
		return 0
	}
	return xp % XPPerLevel
}
