package holdem

import (
	"sync"
	"time"

	"handengine/card"
)

// dealPause is the fixed inter-step delay the design notes call for:
// after dealing hole cards, after each community-card deal, and after
// each pot award. Tests inject a no-op sleep to collapse it to zero.
const dealPause = time.Second

// roundState is the round controller described by the data model: the
// current street, whose turn it is, who opened the street, who most
// recently raised, the live minimum-raise increment, and how many
// seats can still voluntarily act.
type roundState struct {
	stage         Stage
	activePlayer  string
	firstToAct    string
	lastRaiser    string
	minRaise      int64
	playersInGame int
}

// Hand drives exactly one hand of No-Limit Hold'em from deal to
// award. It owns every mutable piece of state itself; external
// collaborators are invoked synchronously and never mutate it back.
type Hand struct {
	mu sync.Mutex

	ring   *seatRing
	config Config

	deckProvider DeckProvider
	evaluator    Evaluator
	sleep        sleepFunc
	givePots     func(PotAward)

	sched *scheduler
	timer *actorTimer

	deck      *deck
	community []card.Card
	holeCards map[string][2]card.Card
	bets      map[string]int64
	pots      *potBuilder

	round roundState

	started   bool
	destroyed bool
}

// NewHand constructs a hand over seats (index 0 is the button). The
// hand is inert until Start is called.
func NewHand(seats []*Seat, config Config, injections Injections) (*Hand, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	ring, err := newSeatRing(seats)
	if err != nil {
		return nil, err
	}

	deckProvider := injections.DeckProvider
	if deckProvider == nil {
		deckProvider = defaultDeckProvider
	}
	evaluator := injections.Evaluator
	if evaluator == nil {
		evaluator = NewDefaultEvaluator()
	}
	sleep := sleepFunc(injections.Sleep)
	if sleep == nil {
		sleep = defaultSleep
	}
	givePots := injections.GivePots
	if givePots == nil {
		givePots = func(PotAward) {}
	}

	return &Hand{
		ring:         ring,
		config:       config,
		deckProvider: deckProvider,
		evaluator:    evaluator,
		sleep:        sleep,
		givePots:     givePots,
		sched:        newScheduler(),
		timer:        newActorTimer(sleep),
		bets:         make(map[string]int64),
		pots:         &potBuilder{},
	}, nil
}

// Start deals the hand, posts blinds and antes, and schedules the
// first action.
func (h *Hand) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.destroyed {
		return ErrHandEnded
	}
	if h.started {
		return ErrAlreadyStarted
	}

	d, err := newDeck(h.deckProvider())
	if err != nil {
		return err
	}
	h.deck = d
	h.started = true
	h.round.stage = StagePreflop

	h.holeCards = make(map[string][2]card.Card, h.ring.len())
	for i := 0; i < 2; i++ {
		for _, s := range h.ring.seats {
			c := h.deck.draw()
			pair := h.holeCards[s.PlayerID]
			pair[i] = c
			h.holeCards[s.PlayerID] = pair
		}
	}
	h.round.playersInGame = h.recountPlayersInGameLocked()

	h.postForcedBetsLocked()
	h.sleep(dealPause)

	if h.ring.countWhere(h.canActPredicate()) < 2 {
		h.runOutAndShowdownLocked()
		return nil
	}
	h.setActivePlayerLocked(h.round.firstToAct)
	return nil
}

// Act submits playerID's action. It is a no-op (no error) once the
// hand has reached showdown, after destroy, or for a player without
// hole cards; it is an error for anyone else to act out of turn.
func (h *Hand) Act(playerID string, action PlayerAction) error {
	h.mu.Lock()

	if h.destroyed || !h.started || h.round.stage == StageShowdown {
		h.mu.Unlock()
		return nil
	}
	if _, live := h.holeCards[playerID]; !live {
		h.mu.Unlock()
		return nil
	}
	if playerID != h.round.activePlayer {
		expected := h.round.activePlayer
		h.mu.Unlock()
		return OutOfTurnError{Expected: expected, Actual: playerID}
	}

	h.timer.cancel()

	switch action.Kind {
	case ActionFold:
		h.applyFoldLocked(playerID)
	case ActionBet:
		if !h.isValidBetLocked(playerID, action.Amount) {
			h.mu.Unlock()
			return InvalidBetError{PlayerID: playerID, Amount: action.Amount}
		}
		h.applyBetLocked(playerID, action.Amount)
	default:
		h.mu.Unlock()
		return errInvalidState("unrecognized action kind")
	}

	h.advanceFirstToActIfNeededLocked(playerID)

	if h.isEndOfStreetLocked(playerID) {
		h.mu.Unlock()
		h.sched.schedule(h.onStreetEndStep)
		return nil
	}

	next := h.nextActorLocked(playerID)
	h.setActivePlayerLocked(next)
	h.mu.Unlock()
	return nil
}

// GetState returns a read-only snapshot of the hand.
func (h *Hand) GetState() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

// IsValidBet is declared in validate.go.

// GetSeatByPlayerId returns the seat occupied by playerID, or nil.
func (h *Hand) GetSeatByPlayerId(playerID string) *Seat {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ring.seatByID(playerID)
}

// Destroy marks the hand terminated. Any scheduled timer tick or
// staged transition still in flight observes the flag and becomes a
// no-op rather than mutating state.
func (h *Hand) Destroy() {
	h.mu.Lock()
	h.destroyed = true
	h.mu.Unlock()

	h.timer.cancel()
	h.sched.stop()
}

func (h *Hand) canActPredicate() func(*Seat) bool {
	return func(s *Seat) bool { return h.isLiveLocked(s.PlayerID) && s.Stack > 0 }
}

func (h *Hand) isLiveLocked(playerID string) bool {
	_, ok := h.holeCards[playerID]
	return ok
}

func (h *Hand) recountPlayersInGameLocked() int {
	return h.ring.countWhere(h.canActPredicate())
}

func (h *Hand) setActivePlayerLocked(playerID string) {
	h.round.activePlayer = playerID
	if playerID == "" {
		return
	}
	pid := playerID
	h.timer.start(h.config.TimeLimit, h.sched, func() { h.onTimerExpire(pid) })
}

// onTimerExpire runs on the scheduler goroutine: a free check if that
// is a legal zero-amount bet, otherwise a fold.
func (h *Hand) onTimerExpire(playerID string) {
	h.mu.Lock()
	if h.destroyed || h.round.activePlayer != playerID {
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	action := NewFold()
	if h.IsValidBet(playerID, 0) {
		action = NewBet(0)
	}
	_ = h.Act(playerID, action)
}

// postForcedBetsLocked posts blinds and antes and computes preflop's
// firstToAct; it does not activate anyone, so Start can first check
// whether action is even possible.
func (h *Hand) postForcedBetsLocked() {
	n := h.ring.len()
	sbIdx, bbIdx := 1, 2
	if n == 2 {
		sbIdx, bbIdx = 0, 1
	}

	h.postBetLocked(h.ring.seatAt(sbIdx), h.config.SmallBlind)
	h.postBetLocked(h.ring.seatAt(bbIdx), h.config.BigBlind)

	if h.config.Antes > 0 {
		for i, s := range h.ring.seats {
			if i == sbIdx || i == bbIdx {
				continue
			}
			h.postBetLocked(s, h.config.Antes)
		}
	}
	h.round.playersInGame = h.recountPlayersInGameLocked()

	h.round.minRaise = h.config.BigBlind
	h.round.lastRaiser = ""

	if idx, ok := h.ring.nextIndexWhere(bbIdx, h.canActPredicate()); ok {
		h.round.firstToAct = h.ring.seatAt(idx).PlayerID
	} else {
		h.round.firstToAct = ""
	}
}

func (h *Hand) postBetLocked(s *Seat, amount int64) {
	if amount <= 0 {
		return
	}
	if amount > s.Stack {
		amount = s.Stack
	}
	h.bets[s.PlayerID] += amount
	s.Stack -= amount
}

func (h *Hand) applyFoldLocked(playerID string) {
	delete(h.holeCards, playerID)
	h.pots.removePlayer(playerID)
	h.round.playersInGame = h.recountPlayersInGameLocked()
}

func (h *Hand) applyBetLocked(playerID string, amount int64) {
	seat := h.ring.seatByID(playerID)
	currentBet := h.bets[playerID]
	maxBet, _ := h.betLimitsLocked()

	seat.Stack -= amount
	h.bets[playerID] = currentBet + amount

	if currentBet+amount >= maxBet+h.round.minRaise {
		h.round.minRaise = (currentBet + amount) - maxBet
		h.round.lastRaiser = playerID
	}
	h.round.playersInGame = h.recountPlayersInGameLocked()
}

// advanceFirstToActIfNeededLocked implements the §4.4 closing rule:
// if the acting seat just folded or went all-in and it was the seat
// that opened the street, the "opener" slides to the next seat that
// can still act so the end-of-street predicate stays meaningful.
func (h *Hand) advanceFirstToActIfNeededLocked(actedPlayerID string) {
	if h.round.firstToAct != actedPlayerID {
		return
	}
	seat := h.ring.seatByID(actedPlayerID)
	folded := !h.isLiveLocked(actedPlayerID)
	allIn := seat != nil && seat.Stack == 0
	if !folded && !allIn {
		return
	}
	idx, _ := h.ring.indexOf(actedPlayerID)
	if nextIdx, ok := h.ring.nextIndexWhere(idx, h.canActPredicate()); ok {
		h.round.firstToAct = h.ring.seatAt(nextIdx).PlayerID
	}
}

func (h *Hand) nextActorLocked(actedPlayerID string) string {
	idx, _ := h.ring.indexOf(actedPlayerID)
	if nextIdx, ok := h.ring.nextIndexWhere(idx, h.canActPredicate()); ok {
		return h.ring.seatAt(nextIdx).PlayerID
	}
	return ""
}

// isEndOfStreetLocked implements the three-way disjunction of §4.3.
func (h *Hand) isEndOfStreetLocked(actedPlayerID string) bool {
	idx, _ := h.ring.indexOf(actedPlayerID)
	nextIdx, hasNext := h.ring.nextIndexWhere(idx, h.canActPredicate())

	if !hasNext {
		return true
	}
	nextPlayer := h.ring.seatAt(nextIdx).PlayerID
	if nextPlayer == h.round.lastRaiser {
		return true
	}

	maxBet, _ := h.betLimitsLocked()
	if h.round.playersInGame <= 1 && h.bets[nextPlayer] == maxBet {
		return true
	}

	allMatchedOrAllIn := true
	for _, s := range h.ring.seats {
		if !h.isLiveLocked(s.PlayerID) || s.Stack == 0 {
			continue
		}
		if h.bets[s.PlayerID] != maxBet {
			allMatchedOrAllIn = false
			break
		}
	}
	return allMatchedOrAllIn && nextPlayer == h.round.firstToAct
}

// onStreetEndStep is the staged transition scheduled by Act; it never
// runs re-entrantly within Act itself.
func (h *Hand) onStreetEndStep() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.destroyed {
		return
	}

	h.round.activePlayer = ""
	h.pots.moveBetsToPots(h.bets, h.isLiveLocked)

	if h.countLiveLocked() <= 1 {
		h.runOutAndShowdownLocked()
		return
	}

	switch h.round.stage {
	case StagePreflop:
		h.openStreetLocked(StageFlop)
	case StageFlop:
		h.openStreetLocked(StageTurn)
	case StageTurn:
		h.openStreetLocked(StageRiver)
	case StageRiver:
		h.enterShowdownLocked()
	}
}

func (h *Hand) openStreetLocked(stage Stage) {
	h.round.stage = stage
	switch stage {
	case StageFlop:
		h.dealCommunityLocked(3)
	case StageTurn, StageRiver:
		h.dealCommunityLocked(1)
	}

	h.round.minRaise = h.config.BigBlind
	h.round.lastRaiser = ""

	if h.ring.countWhere(h.canActPredicate()) < 2 {
		h.runOutAndShowdownLocked()
		return
	}

	idx, ok := h.ring.nextIndexWhere(0, h.canActPredicate())
	if !ok {
		h.runOutAndShowdownLocked()
		return
	}
	first := h.ring.seatAt(idx).PlayerID
	h.round.firstToAct = first
	h.setActivePlayerLocked(first)
}

func (h *Hand) dealCommunityLocked(n int) {
	h.community = append(h.community, h.deck.drawN(n)...)
	h.sleep(dealPause)
}

// runOutAndShowdownLocked deals every remaining community card
// back-to-back with no further betting, per §4.3's rule for streets
// that open with fewer than two players still able to act.
func (h *Hand) runOutAndShowdownLocked() {
	for len(h.community) < 5 {
		if len(h.community) == 0 {
			h.dealCommunityLocked(3)
		} else {
			h.dealCommunityLocked(1)
		}
	}
	h.enterShowdownLocked()
}

func (h *Hand) enterShowdownLocked() {
	h.round.stage = StageShowdown
	h.round.activePlayer = ""
	h.pots.moveBetsToPots(h.bets, h.isLiveLocked)
	h.settleLocked()
}

func (h *Hand) countLiveLocked() int {
	return len(h.holeCards)
}
