package holdem

// isValidBetAmount is the pure predicate behind isValidBet: given the
// player's current street contribution, remaining stack, the street's
// maximum contribution, the largest contribution among already-all-in
// players, and the current minimum raise increment, decide whether
// committing amount more chips is legal.
func isValidBetAmount(amount, currentBet, stack, maxBet, maxCallIn, minRaise int64) bool {
	if amount < 0 || amount > stack {
		return false
	}
	switch {
	case amount == stack:
		// All-in is always permitted, short raise or not.
		return true
	case maxCallIn > 0 && amount+currentBet == maxCallIn:
		// Matching the largest existing all-in is always permitted,
		// even below a full legal raise.
		return true
	case amount+currentBet == maxBet:
		// Check (maxBet == currentBet) or a plain call.
		return true
	case amount+currentBet >= maxBet+minRaise:
		return true
	}
	return false
}

// IsValidBet is a pure query: it never mutates the hand. It returns
// false for unknown players and for a hand that hasn't started yet.
func (h *Hand) IsValidBet(playerID string, amount int64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.isValidBetLocked(playerID, amount)
}

func (h *Hand) isValidBetLocked(playerID string, amount int64) bool {
	seat := h.ring.seatByID(playerID)
	if seat == nil {
		return false
	}
	if _, live := h.holeCards[playerID]; !live {
		return false
	}
	currentBet := h.bets[playerID]
	maxBet, maxCallIn := h.betLimitsLocked()
	return isValidBetAmount(amount, currentBet, seat.Stack, maxBet, maxCallIn, h.round.minRaise)
}

// betLimitsLocked returns maxBet (the largest street contribution) and
// maxCallIn (the largest contribution among players already all-in).
func (h *Hand) betLimitsLocked() (maxBet, maxCallIn int64) {
	for playerID, amount := range h.bets {
		if amount > maxBet {
			maxBet = amount
		}
		if seat := h.ring.seatByID(playerID); seat != nil && seat.Stack == 0 && amount > maxCallIn {
			maxCallIn = amount
		}
	}
	return maxBet, maxCallIn
}
