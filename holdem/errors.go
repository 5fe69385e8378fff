package holdem

import (
	"errors"
	"strconv"
)

var (
	// ErrAlreadyStarted is returned by Start when the hand has already
	// been started once.
	ErrAlreadyStarted = errors.New("hand already started")
	// ErrNotEnoughSeats is returned by NewHand when fewer than two seats
	// are supplied, so no Hand with fewer than two seats ever exists.
	ErrNotEnoughSeats = errors.New("at least two seats are required to start a hand")
	// ErrHandEnded is returned by operations that require the hand to
	// still be in progress.
	ErrHandEnded = errors.New("hand already ended")
)

// OutOfTurnError reports that an action arrived from a player who is
// not the current active actor.
type OutOfTurnError struct {
	Expected string
	Actual   string
}

func (e OutOfTurnError) Error() string {
	return "action out of turn: expected " + e.Expected + ", got " + e.Actual
}

// InvalidBetError reports a bet amount rejected by isValidBet.
type InvalidBetError struct {
	PlayerID string
	Amount   int64
}

func (e InvalidBetError) Error() string {
	return "invalid bet: player " + e.PlayerID + " amount " + strconv.FormatInt(e.Amount, 10)
}

// InvalidStateError signals a violated precondition: malformed seats
// passed to NewHand, a deck provider that does not supply 52 unique
// valid card codes, an unrecognized action kind, or an evaluator
// called with no hands.
type InvalidStateError string

func (e InvalidStateError) Error() string { return "invalid state: " + string(e) }

func errInvalidState(msg string) error { return InvalidStateError(msg) }
