package engine

import (
	"math/rand"
)

// Choice is one scripted response inside a scenario. Delta is the point
// swing (-1..2) and Feedback explains why the response lands the way it does.
type Choice struct {
	Text     string
	Delta    int
	Feedback string
}

// Scenario is a fixed clinical-encounter prompt with three scripted
// response choices.
type Scenario struct {
	ID      ScenarioID
	Prompt  string
	Choices []Choice
}

// The training catalog is compiled in and never mutated at runtime.
var scenarios = []Scenario{
	{
		ID:     "s1",
		Prompt: `Clinician: "It is probably just stress. Let us not overreact." You have had recurrent chest pain with palpitations.`,
		Choices: []Choice{
			{Text: "Describe a concrete episode with duration and impact, and request a specific test.", Delta: 2, Feedback: "Specifics and a clear ask increase the chance of action."},
			{Text: "Say you will wait it out and come back later.", Delta: -1, Feedback: "Delays can prolong harm when red flags exist."},
			{Text: "Repeat that it feels serious, without details.", Delta: 0, Feedback: "Feelings matter, and pairing them with concrete data is stronger."},
		},
	},
	{
		ID:     "s2",
		Prompt: `Clinician: "You are too young for heart issues." You had a fainting episode last week.`,
		Choices: []Choice{
			{Text: "State your risk factors and ask for an EKG referral.", Delta: 2, Feedback: "Naming risks plus a specific test is assertive and reasonable."},
			{Text: "Ask if drinking more water will fix it.", Delta: -1, Feedback: "Hydration can help some issues but does not exclude cardiac causes."},
			{Text: "Request documentation that concerns were raised and declined.", Delta: 1, Feedback: "Creating a paper trail can prompt reconsideration."},
		},
	},
	{
		ID:     "s3",
		Prompt: `Clinician: "Maybe you are just sensitive."`,
		Choices: []Choice{
			{Text: "Share symptom logs with timestamps and severity, and ask to review patterns.", Delta: 2, Feedback: "Evidence counters minimization."},
			{Text: "Stay silent to avoid conflict.", Delta: -1, Feedback: "Silence can be interpreted as acceptance."},
			{Text: "Ask to speak with a different provider or patient advocate.", Delta: 1, Feedback: "Escalation pathways exist; using them is valid."},
		},
	},
	{
		ID:     "s4",
		Prompt: "Clinician interrupts you repeatedly.",
		Choices: []Choice{
			{Text: "Calmly say you want two uninterrupted minutes to summarize key symptoms.", Delta: 2, Feedback: "Setting boundaries can improve information flow."},
			{Text: "Talk faster and accept interruptions.", Delta: -1, Feedback: "Important details may be missed."},
			{Text: "Hand over a written one-page summary.", Delta: 1, Feedback: "Structured summaries can help when time is tight."},
		},
	},
	{
		ID:     "s5",
		Prompt: `Clinician: "Online forums exaggerate." You have found many similar cases.`,
		Choices: []Choice{
			{Text: "Cite a guideline or study and ask how your case fits it.", Delta: 2, Feedback: "Grounding in literature reframes the discussion."},
			{Text: "Argue about social media credibility.", Delta: 0, Feedback: "It may not move the clinical plan."},
			{Text: "Ask for a second opinion referral.", Delta: 1, Feedback: "Getting fresh eyes can help."},
		},
	},
	{
		ID:     "s6",
		Prompt: "Discharge plan omits your primary concern.",
		Choices: []Choice{
			{Text: "Request the concern be added to the discharge summary.", Delta: 1, Feedback: "Documentation matters for continuity."},
			{Text: "Accept the plan unchanged.", Delta: -1, Feedback: "Unaddressed concerns can persist."},
			{Text: "Ask for clear return precautions and thresholds.", Delta: 2, Feedback: "Knowing when to return can prevent harm."},
		},
	},
}

// AllScenarios returns the catalog in fixed order.
func AllScenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

// ScenarioCount is the size of the static catalog.
func ScenarioCount() int {
	return len(scenarios)
}

// ScenarioByID looks up a catalog entry. A miss is a caller bug, since the
// catalog is fixed; the caller gets ErrUnknownScenario to surface it.
func ScenarioByID(id ScenarioID) (*Scenario, error) {
	for i := range scenarios {
		if scenarios[i].ID == id {
			return &scenarios[i], nil
		}
	}
	return nil, unknownScenario(id)
}

// NextScenario picks uniformly among catalog entries not yet played. When the
// whole catalog has been played it returns ErrCatalogExhausted; that is the
// terminal state for the current play-through until a reset.
func NextScenario(played []ScenarioID, rng *rand.Rand) (*Scenario, error) {
	seen := make(map[ScenarioID]bool, len(played))
	for _, id := range played {
		seen[id] = true
	}

	var pool []*Scenario
	for i := range scenarios {
		if !seen[scenarios[i].ID] {
			pool = append(pool, &scenarios[i])
		}
	}
	if len(pool) == 0 {
		return nil, ErrCatalogExhausted
	}
	return pool[rng.Intn(len(pool))], nil
}
