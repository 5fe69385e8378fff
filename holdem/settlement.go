package holdem

import (
	"sort"

	"handengine/card"
)

// settleLocked awards every pot in creation order. If only one live
// player remains overall, they sweep every pot outright with no
// evaluator call; otherwise the evaluator oracle decides each pot's
// winners among its eligible, still-live contributors.
func (h *Hand) settleLocked() {
	var board [5]card.Card
	copy(board[:], h.community)

	solePlayer := ""
	if h.countLiveLocked() == 1 {
		for playerID := range h.holeCards {
			solePlayer = playerID
		}
	}

	for _, pot := range h.pots.pots {
		winnerIDs, winningCards := h.resolvePotLocked(pot, board, solePlayer)
		if len(winnerIDs) == 0 {
			continue
		}

		h.givePots(PotAward{
			PotID:        pot.PotID,
			PlayerIDs:    winnerIDs,
			WinningCards: winningCards,
		})

		h.payoutLocked(pot.Amount, winnerIDs)
		h.sleep(dealPause)
	}
}

func (h *Hand) resolvePotLocked(pot *Pot, board [5]card.Card, solePlayer string) ([]string, []card.Card) {
	if solePlayer != "" {
		return []string{solePlayer}, nil
	}

	hands := make(map[string][2]card.Card, len(pot.EligiblePlayers))
	for playerID := range pot.EligiblePlayers {
		if hole, ok := h.holeCards[playerID]; ok {
			hands[playerID] = hole
		}
	}
	if len(hands) == 0 {
		return nil, nil
	}

	results, err := h.evaluator.CalculateWinner(hands, board)
	if err != nil || len(results) == 0 {
		return nil, nil
	}

	winnerIDs := make([]string, 0, len(results))
	seen := make(map[card.Card]bool)
	winningCards := make([]card.Card, 0)
	for _, r := range results {
		winnerIDs = append(winnerIDs, r.PlayerID)
		for _, c := range r.Best {
			if !seen[c] {
				seen[c] = true
				winningCards = append(winningCards, c)
			}
		}
	}
	sort.Slice(winningCards, func(i, j int) bool { return winningCards[i] < winningCards[j] })
	return winnerIDs, winningCards
}

// payoutLocked splits amount evenly across winnerIDs, handing the
// remainder odd chip to the first winner in iteration order.
func (h *Hand) payoutLocked(amount int64, winnerIDs []string) {
	n := int64(len(winnerIDs))
	share := amount / n
	remainder := amount % n

	for i, playerID := range winnerIDs {
		seat := h.ring.seatByID(playerID)
		if seat == nil {
			continue
		}
		payout := share
		if i == 0 {
			payout += remainder
		}
		seat.Stack += payout
	}
}
