package holdem

import "handengine/card"

// PotSnapshot is the amount-only view of a pot exposed by GetState;
// eligibility sets are internal bookkeeping, not part of the public
// snapshot.
type PotSnapshot struct {
	PotID  string
	Amount int64
}

// Snapshot is the read-only projection returned by GetState. Hole
// cards of folded players are absent, matching the live holeCards
// map they were deleted from.
type Snapshot struct {
	Stage          Stage
	CommunityCards []card.Card
	HoleCards      map[string][2]card.Card
	Pots           []PotSnapshot
	Bets           map[string]int64
	MinRaise       int64
	ActivePlayer   string
}

func (h *Hand) snapshotLocked() Snapshot {
	community := make([]card.Card, len(h.community))
	copy(community, h.community)

	holeCards := make(map[string][2]card.Card, len(h.holeCards))
	for playerID, hole := range h.holeCards {
		holeCards[playerID] = hole
	}

	pots := make([]PotSnapshot, len(h.pots.pots))
	for i, p := range h.pots.pots {
		pots[i] = PotSnapshot{PotID: p.PotID, Amount: p.Amount}
	}

	bets := make(map[string]int64, len(h.bets))
	for playerID, amount := range h.bets {
		bets[playerID] = amount
	}

	return Snapshot{
		Stage:          h.round.stage,
		CommunityCards: community,
		HoleCards:      holeCards,
		Pots:           pots,
		Bets:           bets,
		MinRaise:       h.round.minRaise,
		ActivePlayer:   h.round.activePlayer,
	}
}
