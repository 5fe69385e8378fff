package main

import (
	"fmt"
	"log"
	"time"

	"handengine/config"
	"handengine/holdem"
)

// main plays out a single three-handed hand where every seat simply
// checks or calls, purely to exercise the engine end to end.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[handcli] failed to load config: %v", err)
	}

	seats := []*holdem.Seat{
		{PlayerID: "alice", Stack: 1000},
		{PlayerID: "bob", Stack: 1000},
		{PlayerID: "carol", Stack: 1000},
	}

	hand, err := holdem.NewHand(seats, holdem.Config{
		SmallBlind: cfg.SmallBlind,
		BigBlind:   cfg.BigBlind,
		Antes:      cfg.Antes,
		TimeLimit:  0,
	}, holdem.Injections{
		GivePots: func(award holdem.PotAward) {
			log.Printf("[handcli] pot %s awarded to %v", award.PotID, award.PlayerIDs)
		},
	})
	if err != nil {
		log.Fatalf("[handcli] failed to build hand: %v", err)
	}

	if err := hand.Start(); err != nil {
		log.Fatalf("[handcli] failed to start hand: %v", err)
	}

	for {
		state := hand.GetState()
		if state.Stage == holdem.StageShowdown {
			break
		}
		actor := state.ActivePlayer
		if actor == "" {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		if err := hand.Act(actor, holdem.NewBet(callAmount(state, actor))); err != nil {
			log.Fatalf("[handcli] %s failed to act: %v", actor, err)
		}
	}

	final := hand.GetState()
	fmt.Printf("hand complete: stage=%s community=%v\n", final.Stage, final.CommunityCards)
}

// callAmount computes the increment needed to check or call, given a
// flat-calling demo strategy.
func callAmount(state holdem.Snapshot, playerID string) int64 {
	var maxBet int64
	for _, amount := range state.Bets {
		if amount > maxBet {
			maxBet = amount
		}
	}
	return maxBet - state.Bets[playerID]
}
