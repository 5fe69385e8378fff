package holdem

import (
	"sort"

	"github.com/google/uuid"
)

// Pot is one tier of the persistent pot list: an amount plus the set of
// players who may win it at showdown.
type Pot struct {
	PotID           string
	Amount          int64
	EligiblePlayers map[string]bool
}

// potBuilder owns the hand's pot list. Pots are appended but never
// removed, except when two tiers merge because their eligibility sets
// turn out to be identical.
type potBuilder struct {
	pots []*Pot
}

func (pb *potBuilder) reset() {
	pb.pots = nil
}

// removePlayer retroactively drops a folding player from every pot's
// eligibility set. Their chips stay in the pot; they just can't win it.
func (pb *potBuilder) removePlayer(playerID string) {
	for _, p := range pb.pots {
		delete(p.EligiblePlayers, playerID)
	}
}

// moveBetsToPots consumes the street's bets map, layering it into the
// pot list tier by tier. live reports whether a contributor is still in
// the hand (has not folded); folded contributors still pay into the
// pots their chips reach, they just never become eligible to win.
func (pb *potBuilder) moveBetsToPots(bets map[string]int64, live func(playerID string) bool) {
	type contribution struct {
		playerID string
		amount   int64
	}

	contributions := make([]contribution, 0, len(bets))
	for playerID, amount := range bets {
		if amount <= 0 {
			continue
		}
		contributions = append(contributions, contribution{playerID: playerID, amount: amount})
	}
	sort.Slice(contributions, func(i, j int) bool { return contributions[i].amount < contributions[j].amount })

	settled := int64(0)
	for i := range contributions {
		tier := contributions[i].amount - settled
		if tier <= 0 {
			continue
		}

		remaining := contributions[i:]
		eligible := make(map[string]bool, len(remaining))
		for _, c := range remaining {
			if live(c.playerID) {
				eligible[c.playerID] = true
			}
		}

		amount := tier * int64(len(remaining))

		switch last := pb.lastPot(); {
		case last != nil && sameEligibility(last.EligiblePlayers, eligible):
			last.Amount += amount
		case len(eligible) > 0:
			pb.pots = append(pb.pots, &Pot{
				PotID:           uuid.New().String(),
				Amount:          amount,
				EligiblePlayers: eligible,
			})
		case last != nil:
			// Every contributor at this tier has folded; the chips
			// still belong to the pot, they just have no claimant of
			// their own, so they ride along with the tier below.
			last.Amount += amount
		default:
			pb.pots = append(pb.pots, &Pot{
				PotID:           uuid.New().String(),
				Amount:          amount,
				EligiblePlayers: eligible,
			})
		}

		settled = contributions[i].amount
	}

	for k := range bets {
		delete(bets, k)
	}
}

func (pb *potBuilder) lastPot() *Pot {
	if len(pb.pots) == 0 {
		return nil
	}
	return pb.pots[len(pb.pots)-1]
}

func sameEligibility(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
