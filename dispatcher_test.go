package main

import "testing"

func newTestGame() *Game {
	return &Game{world: newWorld(nil)}
}

func TestDispatchJoinRejectionSurfaced(t *testing.T) {
	g := newTestGame()
	g.dispatchMessage(joinGameReply{Success: false, Error: "name taken"})
	if got := g.joinError(); got != "name taken" {
		t.Fatalf("join error %q", got)
	}
	if len(g.world.actors) != 0 {
		t.Fatal("rejected join created actors")
	}

	// A later successful join clears the surfaced error.
	g.dispatchMessage(testJoinReply())
	if got := g.joinError(); got != "" {
		t.Fatalf("stale join error %q after success", got)
	}
}

func TestDispatchRoutesEachKind(t *testing.T) {
	g := newTestGame()
	g.dispatchMessage(testJoinReply())
	if len(g.world.actors) != 2 {
		t.Fatalf("join dispatched to %d actors", len(g.world.actors))
	}

	g.dispatchMessage(playerJoined{
		Player: wireActor{ID: "p3", Username: "carol", Avatar: "adventurer"},
	})
	if _, ok := g.world.actors["p3"]; !ok {
		t.Fatal("player_joined not applied")
	}

	g.dispatchMessage(playersMoved{Players: map[string]actorUpdate{
		"p3": {X: fptr(77)},
	}})
	if g.world.actors["p3"].X != 77 {
		t.Fatal("players_moved not applied")
	}

	g.dispatchMessage(playerLeft{PlayerID: "p3"})
	if _, ok := g.world.actors["p3"]; ok {
		t.Fatal("player_left not applied")
	}
}
