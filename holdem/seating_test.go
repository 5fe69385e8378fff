package holdem

import "testing"

func TestNewSeatRing_RejectsFewerThanTwoSeats(t *testing.T) {
	_, err := newSeatRing([]*Seat{{PlayerID: "a", Stack: 100}})
	if err != ErrNotEnoughSeats {
		t.Fatalf("got %v, want ErrNotEnoughSeats", err)
	}
}

func TestNewSeatRing_RejectsDuplicatePlayerID(t *testing.T) {
	_, err := newSeatRing([]*Seat{
		{PlayerID: "a", Stack: 100},
		{PlayerID: "a", Stack: 100},
	})
	if err == nil {
		t.Fatal("expected error for duplicate playerId")
	}
}

func TestSeatRing_SeatAtWrapsModulo(t *testing.T) {
	ring, err := newSeatRing([]*Seat{
		{PlayerID: "a", Stack: 100},
		{PlayerID: "b", Stack: 100},
		{PlayerID: "c", Stack: 100},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := ring.seatAt(3).PlayerID; got != "a" {
		t.Fatalf("seatAt(3) = %s, want a", got)
	}
	if got := ring.seatAt(-1).PlayerID; got != "c" {
		t.Fatalf("seatAt(-1) = %s, want c", got)
	}
}

func TestSeatRing_NextIndexWhereSkipsFrom(t *testing.T) {
	ring, err := newSeatRing([]*Seat{
		{PlayerID: "a", Stack: 100},
		{PlayerID: "b", Stack: 0},
		{PlayerID: "c", Stack: 100},
	})
	if err != nil {
		t.Fatal(err)
	}
	canAct := func(s *Seat) bool { return s.Stack > 0 }

	idx, ok := ring.nextIndexWhere(0, canAct)
	if !ok || ring.seatAt(idx).PlayerID != "c" {
		t.Fatalf("expected to land on c, got idx=%d ok=%v", idx, ok)
	}

	// Only a itself can act; nextIndexWhere must never return from.
	solo, err := newSeatRing([]*Seat{
		{PlayerID: "a", Stack: 100},
		{PlayerID: "b", Stack: 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := solo.nextIndexWhere(0, canAct); ok {
		t.Fatal("expected no next actor when only from itself qualifies")
	}
}

func TestSeatRing_CountWhere(t *testing.T) {
	ring, err := newSeatRing([]*Seat{
		{PlayerID: "a", Stack: 100},
		{PlayerID: "b", Stack: 0},
		{PlayerID: "c", Stack: 50},
	})
	if err != nil {
		t.Fatal(err)
	}
	if n := ring.countWhere(func(s *Seat) bool { return s.Stack > 0 }); n != 2 {
		t.Fatalf("countWhere = %d, want 2", n)
	}
}
