package engine

import (
	"errors"
	"fmt"
)

// ErrCatalogExhausted is returned by NextScenario when every scenario has
// been played in the current play-through.
var ErrCatalogExhausted = errors.New("all scenarios completed")

// ErrUnknownScenario indicates a scenario id outside the static catalog.
// The catalog is fixed, so this is a programming-contract violation by the
// caller, not a runtime condition.
var ErrUnknownScenario = errors.New("unknown scenario")

func unknownScenario(id ScenarioID) error {
	return fmt.Errorf("%w: %q", ErrUnknownScenario, id)
}
