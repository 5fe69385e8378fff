package holdem

import "testing"

func TestIsValidBetAmount_AllInAlwaysPermitted(t *testing.T) {
	if !isValidBetAmount(40, 10, 40, 100, 0, 80) {
		t.Fatal("all-in (amount == stack) must always be valid")
	}
}

func TestIsValidBetAmount_MatchingExistingAllInPermittedBelowMinRaise(t *testing.T) {
	// currentBet=20, stack=980, maxBet=100, maxCallIn=50, minRaise=80.
	if !isValidBetAmount(30, 20, 980, 100, 50, 80) {
		t.Fatal("matching the largest all-in must be valid even though it is short of a full raise")
	}
}

func TestIsValidBetAmount_CallAndCheck(t *testing.T) {
	if !isValidBetAmount(20, 0, 1000, 20, 0, 20) {
		t.Fatal("exact call must be valid")
	}
	if !isValidBetAmount(0, 20, 1000, 20, 0, 20) {
		t.Fatal("check when already matching maxBet must be valid")
	}
}

func TestIsValidBetAmount_RejectsShortRaise(t *testing.T) {
	if isValidBetAmount(79, 20, 980, 100, 50, 80) {
		t.Fatal("79 should fail every clause")
	}
	if isValidBetAmount(159, 20, 980, 100, 50, 80) {
		t.Fatal("159 is one short of the legal raise threshold")
	}
}

func TestIsValidBetAmount_AcceptsFullRaise(t *testing.T) {
	if !isValidBetAmount(160, 20, 980, 100, 50, 80) {
		t.Fatal("160 reaches maxBet + minRaise exactly")
	}
}

func TestIsValidBetAmount_RejectsFreeCheckFacingLiveBetWithNoAllIn(t *testing.T) {
	// No one is all-in yet (maxCallIn=0); a 0-chip "check" must not be
	// confused with matching a maxCallIn of 0.
	if isValidBetAmount(0, 0, 1000, 20, 0, 20) {
		t.Fatal("a 0 bet must not be accepted as legal while maxBet (20) is still live")
	}
}

func TestIsValidBetAmount_RejectsOutOfRange(t *testing.T) {
	if isValidBetAmount(-1, 0, 100, 0, 0, 20) {
		t.Fatal("negative amount must be rejected")
	}
	if isValidBetAmount(101, 0, 100, 0, 0, 20) {
		t.Fatal("amount exceeding stack must be rejected")
	}
}
