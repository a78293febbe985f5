package main

import (
	"time"

	"golang.org/x/time/rate"
)

const (
	dirUp    = "up"
	dirDown  = "down"
	dirLeft  = "left"
	dirRight = "right"
)

// dirVector maps a wire direction to a unit movement vector (screen
// coordinates, y grows south) and the facing it implies.
func dirVector(dir string) (dx, dy float64, facing Facing) {
	switch dir {
	case dirUp:
		return 0, -1, FacingNorth
	case dirDown:
		return 0, 1, FacingSouth
	case dirLeft:
		return -1, 0, FacingWest
	case dirRight:
		return 1, 0, FacingEast
	}
	return 0, 0, FacingSouth
}

type sender interface {
	send(v interface{})
}

// inputTranslator turns held directions and clicks into move/stop commands,
// suppressing sends that would repeat the pending intent. When several
// directions are held the most recently pressed one wins. All calls happen
// on the game loop goroutine.
type inputTranslator struct {
	conn    sender
	held    []string // press order, last wins
	pending string   // last sent direction, "" when a stop was sent
	clicks  *rate.Limiter
}

func newInputTranslator(conn sender) *inputTranslator {
	return &inputTranslator{
		conn:   conn,
		clicks: rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
	}
}

func (t *inputTranslator) keyDown(dir string) {
	t.removeHeld(dir)
	t.held = append(t.held, dir)
	t.syncIntent()
}

func (t *inputTranslator) keyUp(dir string) {
	t.removeHeld(dir)
	t.syncIntent()
}

// syncIntent brings the server in line with the held set: a move for the
// effective direction, or a stop once nothing is held. Releasing one of two
// held directions therefore sends exactly one move and never a stop.
func (t *inputTranslator) syncIntent() {
	eff := t.activeDirection()
	if eff == t.pending {
		return
	}
	if eff == "" {
		t.conn.send(stopCommand{Action: "stop"})
	} else {
		t.conn.send(moveCommand{Action: "move", Direction: eff})
	}
	t.pending = eff
}

// clickAt sends an absolute-target move, bypassing the direction logic.
// Click sends are rate limited so a dragged pointer cannot flood the
// server.
func (t *inputTranslator) clickAt(x, y float64) {
	if !t.clicks.Allow() {
		return
	}
	t.conn.send(moveCommand{Action: "move", X: &x, Y: &y})
}

// blur unconditionally stops movement. A key-up can be lost when the window
// loses focus mid-hold, and a stuck-moving actor is worse than a redundant
// stop.
func (t *inputTranslator) blur() {
	t.held = t.held[:0]
	t.conn.send(stopCommand{Action: "stop"})
	t.pending = ""
}

// activeDirection is the most recently pressed held direction, or "".
func (t *inputTranslator) activeDirection() string {
	if len(t.held) == 0 {
		return ""
	}
	return t.held[len(t.held)-1]
}

func (t *inputTranslator) removeHeld(dir string) {
	for i, d := range t.held {
		if d == dir {
			t.held = append(t.held[:i], t.held[i+1:]...)
			return
		}
	}
}
