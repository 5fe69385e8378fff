package holdem

import (
	"time"

	"handengine/card"
)

// testDeckProvider hands out the canonical unshuffled deck so tests
// that only care about bets, pots, and stacks stay deterministic
// without needing to hand-arrange specific hole or board cards.
func testDeckProvider() []string {
	out := make([]string, len(deckOrder))
	for i, c := range deckOrder {
		out[i] = c.String()
	}
	return out
}

// noopSleep collapses every inter-step pause to nothing, as the
// sleep injection point exists to allow.
func noopSleep(time.Duration) {}

// stubEvaluator lets settlement tests fix the winners of a showdown
// without needing a specific deck arrangement.
type stubEvaluator struct {
	winners []EvaluatedHand
	err     error
}

func (s stubEvaluator) CalculateWinner(map[string][2]card.Card, [5]card.Card) ([]EvaluatedHand, error) {
	return s.winners, s.err
}

func sumStacks(seats []*Seat) int64 {
	var total int64
	for _, s := range seats {
		total += s.Stack
	}
	return total
}

func sumMap(m map[string]int64) int64 {
	var total int64
	for _, v := range m {
		total += v
	}
	return total
}

func sumPots(pots []*Pot) int64 {
	var total int64
	for _, p := range pots {
		total += p.Amount
	}
	return total
}
