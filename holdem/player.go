package holdem

import (
	"time"

	"handengine/card"
)

// Injections bundles the hand's optional external collaborators. Any
// field left nil falls back to the engine's built-in default.
type Injections struct {
	DeckProvider DeckProvider
	Evaluator    Evaluator
	Sleep        func(d time.Duration)
	GivePots     func(PotAward)
}

// PotAward is the payload of the pot-award callback, fired once per
// pot in creation order, before the winners' stacks are updated.
type PotAward struct {
	PotID        string
	PlayerIDs    []string
	WinningCards []card.Card
}
