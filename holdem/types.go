package holdem

import "handengine/card"

// Stage is the hand's current street.
type Stage byte

const (
	StageStart    Stage = iota
	StagePreflop
	StageFlop
	StageTurn
	StageRiver
	StageShowdown
)

var stageNames = map[Stage]string{
	StageStart:    "start",
	StagePreflop:  "preflop",
	StageFlop:     "flop",
	StageTurn:     "turn",
	StageRiver:    "river",
	StageShowdown: "showdown",
}

func (s Stage) String() string {
	if n, ok := stageNames[s]; ok {
		return n
	}
	return "unknown"
}

// ActionKind distinguishes the two variants of PlayerAction. Callers
// build a PlayerAction with NewFold or NewBet rather than setting
// fields directly.
type ActionKind byte

const (
	ActionFold ActionKind = iota
	ActionBet
)

// PlayerAction is the tagged sum "fold | bet(amount)" described by the
// engine's design notes. Amount is only meaningful for ActionBet and is
// the chip increment the player commits this action (not their new
// total street contribution).
type PlayerAction struct {
	Kind   ActionKind
	Amount int64
}

// NewFold builds a fold action.
func NewFold() PlayerAction { return PlayerAction{Kind: ActionFold} }

// NewBet builds a bet/raise/call/check/all-in action; which of those it
// resolves to is determined by isValidBet against the current state,
// not by the caller.
func NewBet(amount int64) PlayerAction { return PlayerAction{Kind: ActionBet, Amount: amount} }

// deckOrder is the canonical 52-card deck in the order HoldemCards has
// always listed them in: spades, hearts, clubs, diamonds, ace to king.
var deckOrder = []card.Card{
	card.CardSpadeA, card.CardSpade2, card.CardSpade3, card.CardSpade4, card.CardSpade5, card.CardSpade6,
	card.CardSpade7, card.CardSpade8, card.CardSpade9, card.CardSpadeT, card.CardSpadeJ, card.CardSpadeQ, card.CardSpadeK,
	card.CardHeartA, card.CardHeart2, card.CardHeart3, card.CardHeart4, card.CardHeart5, card.CardHeart6,
	card.CardHeart7, card.CardHeart8, card.CardHeart9, card.CardHeartT, card.CardHeartJ, card.CardHeartQ, card.CardHeartK,
	card.CardClubA, card.CardClub2, card.CardClub3, card.CardClub4, card.CardClub5, card.CardClub6,
	card.CardClub7, card.CardClub8, card.CardClub9, card.CardClubT, card.CardClubJ, card.CardClubQ, card.CardClubK,
	card.CardDiamondA, card.CardDiamond2, card.CardDiamond3, card.CardDiamond4, card.CardDiamond5, card.CardDiamond6,
	card.CardDiamond7, card.CardDiamond8, card.CardDiamond9, card.CardDiamondT, card.CardDiamondJ, card.CardDiamondQ, card.CardDiamondK,
}

// Hand-type constants reported by the default evaluator, weakest to
// strongest.
const (
	HandHighCard byte = iota + 1
	HandOnePair
	HandTwoPair
	HandThreeOfKind
	HandStraight
	HandFlush
	HandFullHouse
	HandFourOfKind
	HandStraightFlush
	HandRoyalFlush
)
