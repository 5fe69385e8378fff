package holdem

// Seat is one ordered position in the ring. Index 0 is always the
// button; neighbour traversal is plain index arithmetic modulo the
// ring's length, never a linked structure.
type Seat struct {
	PlayerID string
	Stack    int64
}

// seatRing is the hand's immutable seating order. Seats are never
// inserted or removed mid-hand; only their Stack mutates.
type seatRing struct {
	seats []*Seat
	index map[string]int
}

func newSeatRing(seats []*Seat) (*seatRing, error) {
	if len(seats) < 2 {
		return nil, ErrNotEnoughSeats
	}
	index := make(map[string]int, len(seats))
	for i, s := range seats {
		if s.PlayerID == "" {
			return nil, errInvalidState("seat has an empty playerId")
		}
		if _, dup := index[s.PlayerID]; dup {
			return nil, errInvalidState("duplicate playerId in seating: " + s.PlayerID)
		}
		if s.Stack < 0 {
			return nil, errInvalidState("seat has a negative stack: " + s.PlayerID)
		}
		index[s.PlayerID] = i
	}
	return &seatRing{seats: seats, index: index}, nil
}

func (r *seatRing) len() int { return len(r.seats) }

func (r *seatRing) seatAt(i int) *Seat {
	n := len(r.seats)
	return r.seats[((i%n)+n)%n]
}

func (r *seatRing) seatByID(playerID string) *Seat {
	i, ok := r.index[playerID]
	if !ok {
		return nil
	}
	return r.seats[i]
}

func (r *seatRing) indexOf(playerID string) (int, bool) {
	i, ok := r.index[playerID]
	return i, ok
}

// nextIndexWhere walks forward from (from+1), wrapping, and returns the
// first index satisfying pred. It never considers from itself. ok is
// false if no seat other than from satisfies pred.
func (r *seatRing) nextIndexWhere(from int, pred func(*Seat) bool) (int, bool) {
	n := len(r.seats)
	for step := 1; step <= n; step++ {
		i := (from + step) % n
		if i == from {
			continue
		}
		if pred(r.seatAt(i)) {
			return i, true
		}
	}
	return 0, false
}

// countWhere counts seats satisfying pred.
func (r *seatRing) countWhere(pred func(*Seat) bool) int {
	n := 0
	for _, s := range r.seats {
		if pred(s) {
			n++
		}
	}
	return n
}
