package holdem

import (
	"github.com/idsulik/go-collections/v3/queue"

	"handengine/card"
)

// DeckProvider returns an ordered sequence of 52 unique card codes. It
// is consulted once, at Start, and the resulting order is consumed
// front-to-back for the rest of the hand.
type DeckProvider func() []string

// defaultDeckProvider builds a full 52-card deck and shuffles it
// uniformly at random.
func defaultDeckProvider() []string {
	var cards card.CardList
	cards.Init(deckOrder)
	cards.Shuffle()

	out := make([]string, cards.Count())
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

// deck is a front-to-back queue of cards: once drawn, a card never
// returns to the deck.
type deck struct {
	q *queue.Queue[card.Card]
}

func newDeck(codes []string) (*deck, error) {
	if len(codes) != 52 {
		return nil, errInvalidState("deck provider must supply exactly 52 cards")
	}
	q := queue.New[card.Card](len(codes))
	seen := make(map[card.Card]bool, len(codes))
	for _, code := range codes {
		c, err := card.ParseCard(code)
		if err != nil {
			return nil, errInvalidState("invalid card code: " + code)
		}
		if seen[c] {
			return nil, errInvalidState("duplicate card in deck: " + code)
		}
		seen[c] = true
		q.Enqueue(c)
	}
	return &deck{q: q}, nil
}

// draw removes and returns the front card. Called only from code paths
// that already know enough cards remain; an empty draw is a programmer
// error, not a caller-facing one.
func (d *deck) draw() card.Card {
	c, ok := d.q.Dequeue()
	if !ok {
		panic("holdem: deck underflow")
	}
	return c
}

func (d *deck) drawN(n int) []card.Card {
	out := make([]card.Card, n)
	for i := 0; i < n; i++ {
		out[i] = d.draw()
	}
	return out
}
