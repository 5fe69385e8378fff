package holdem

import (
	"testing"

	"handengine/card"
)

func mustCard(t *testing.T, code string) card.Card {
	t.Helper()
	c, err := card.ParseCard(code)
	if err != nil {
		t.Fatalf("ParseCard(%s): %v", code, err)
	}
	return c
}

func seven(t *testing.T, codes ...string) [7]card.Card {
	t.Helper()
	var out [7]card.Card
	for i, c := range codes {
		out[i] = mustCard(t, c)
	}
	return out
}

func TestEvalBestOf7_RoyalFlushBeatsStraightFlush(t *testing.T) {
	royal := seven(t, "As", "Ks", "Qs", "Js", "Ts", "2d", "3c")
	straightFlush := seven(t, "9h", "8h", "7h", "6h", "5h", "2d", "3c")

	royalScore, _, royalType := evalBestOf7(royal)
	sfScore, _, sfType := evalBestOf7(straightFlush)

	if royalType != HandRoyalFlush {
		t.Fatalf("expected HandRoyalFlush, got %v", royalType)
	}
	if sfType != HandStraightFlush {
		t.Fatalf("expected HandStraightFlush, got %v", sfType)
	}
	if !royalScore.better(sfScore) {
		t.Fatal("royal flush must outrank a lower straight flush")
	}
}

func TestEvalBestOf7_WheelStraight(t *testing.T) {
	wheel := seven(t, "As", "2d", "3c", "4h", "5s", "9c", "Kd")
	score, _, handType := evalBestOf7(wheel)
	if handType != HandStraight {
		t.Fatalf("expected HandStraight, got %v", handType)
	}
	if len(score.ranks) == 0 || score.ranks[0] != 5 {
		t.Fatalf("wheel must play the five as its high card, got %v", score.ranks)
	}
}

func TestEvalBestOf7_FullHouseBeatsFlush(t *testing.T) {
	fullHouse := seven(t, "7s", "7h", "7d", "3c", "3h", "2s", "9d")
	flush := seven(t, "2s", "5s", "8s", "Js", "Kd", "3h", "9c")
	// flush needs its own fifth spade to actually be a flush
	flush[4] = mustCard(t, "Qs")

	fhScore, _, fhType := evalBestOf7(fullHouse)
	flScore, _, flType := evalBestOf7(flush)

	if fhType != HandFullHouse {
		t.Fatalf("expected HandFullHouse, got %v", fhType)
	}
	if flType != HandFlush {
		t.Fatalf("expected HandFlush, got %v", flType)
	}
	if !fhScore.better(flScore) {
		t.Fatal("full house must outrank flush")
	}
}

func TestCalculateWinner_TieReturnsBothInDeterministicOrder(t *testing.T) {
	board := [5]card.Card{
		mustCard(t, "7s"), mustCard(t, "7h"), mustCard(t, "7d"),
		mustCard(t, "2c"), mustCard(t, "9d"),
	}
	hands := map[string][2]card.Card{
		"b": {mustCard(t, "3c"), mustCard(t, "3h")},
		"a": {mustCard(t, "4c"), mustCard(t, "4h")},
	}

	eval := NewDefaultEvaluator()
	winners, err := eval.CalculateWinner(hands, board)
	if err != nil {
		t.Fatal(err)
	}
	if len(winners) != 2 {
		t.Fatalf("expected a tie between a and b, got %d winners: %+v", len(winners), winners)
	}
	if winners[0].PlayerID != "a" {
		t.Fatalf("tied winners must come back in a deterministic (sorted) order, got %s first", winners[0].PlayerID)
	}
}

func TestCalculateWinner_NoHandsIsAnError(t *testing.T) {
	eval := NewDefaultEvaluator()
	if _, err := eval.CalculateWinner(map[string][2]card.Card{}, [5]card.Card{}); err == nil {
		t.Fatal("expected an error for an empty hands map")
	}
}
