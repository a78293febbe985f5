package main

import (
	"testing"

	"golang.org/x/time/rate"
)

type captureSender struct {
	sent []interface{}
}

func (c *captureSender) send(v interface{}) {
	c.sent = append(c.sent, v)
}

func newTestTranslator() (*inputTranslator, *captureSender) {
	conn := &captureSender{}
	t := newInputTranslator(conn)
	t.clicks = rate.NewLimiter(rate.Inf, 0)
	return t, conn
}

func wantMove(t *testing.T, v interface{}, dir string) {
	t.Helper()
	m, ok := v.(moveCommand)
	if !ok {
		t.Fatalf("sent %T, want moveCommand", v)
	}
	if m.Action != "move" || m.Direction != dir {
		t.Fatalf("sent %+v, want move %s", m, dir)
	}
}

func wantStop(t *testing.T, v interface{}) {
	t.Helper()
	s, ok := v.(stopCommand)
	if !ok || s.Action != "stop" {
		t.Fatalf("sent %+v, want stop", v)
	}
}

func TestHoldTwoReleaseOne(t *testing.T) {
	tr, conn := newTestTranslator()
	tr.keyDown(dirUp)
	tr.keyDown(dirLeft)
	if len(conn.sent) != 2 {
		t.Fatalf("sent %d commands, want 2", len(conn.sent))
	}
	wantMove(t, conn.sent[0], dirUp)
	wantMove(t, conn.sent[1], dirLeft)

	tr.keyUp(dirLeft)
	if len(conn.sent) != 3 {
		t.Fatalf("releasing one of two directions sent %d extra commands, want 1", len(conn.sent)-2)
	}
	wantMove(t, conn.sent[2], dirUp)
}

func TestReleaseLastSendsSingleStop(t *testing.T) {
	tr, conn := newTestTranslator()
	tr.keyDown(dirRight)
	tr.keyUp(dirRight)
	if len(conn.sent) != 2 {
		t.Fatalf("sent %d commands, want 2", len(conn.sent))
	}
	wantStop(t, conn.sent[1])

	// A second release of an already-clear direction owes nothing.
	tr.keyUp(dirRight)
	if len(conn.sent) != 2 {
		t.Fatalf("idle key-up sent a command: %v", conn.sent[2])
	}
}

func TestRepeatedDirectionSuppressed(t *testing.T) {
	tr, conn := newTestTranslator()
	tr.keyDown(dirDown)
	tr.keyDown(dirDown)
	if len(conn.sent) != 1 {
		t.Fatalf("redundant press re-sent the move: %d commands", len(conn.sent))
	}
}

func TestMostRecentDirectionWins(t *testing.T) {
	tr, conn := newTestTranslator()
	tr.keyDown(dirUp)
	tr.keyDown(dirRight)
	if got := tr.activeDirection(); got != dirRight {
		t.Fatalf("active direction %q, want %q", got, dirRight)
	}
	tr.keyUp(dirRight)
	if got := tr.activeDirection(); got != dirUp {
		t.Fatalf("active direction %q, want %q", got, dirUp)
	}
	wantMove(t, conn.sent[len(conn.sent)-1], dirUp)
}

func TestBlurAlwaysStops(t *testing.T) {
	tr, conn := newTestTranslator()
	tr.blur()
	if len(conn.sent) != 1 {
		t.Fatalf("blur with nothing held sent %d commands, want 1", len(conn.sent))
	}
	wantStop(t, conn.sent[0])

	tr.keyDown(dirLeft)
	tr.blur()
	wantStop(t, conn.sent[len(conn.sent)-1])
	if got := tr.activeDirection(); got != "" {
		t.Fatalf("directions still held after blur: %q", got)
	}
}

func TestClickSendsAbsoluteTarget(t *testing.T) {
	tr, conn := newTestTranslator()
	tr.clickAt(640, 480)
	if len(conn.sent) != 1 {
		t.Fatalf("sent %d commands, want 1", len(conn.sent))
	}
	m, ok := conn.sent[0].(moveCommand)
	if !ok {
		t.Fatalf("sent %T, want moveCommand", conn.sent[0])
	}
	if m.Direction != "" || m.X == nil || m.Y == nil || *m.X != 640 || *m.Y != 480 {
		t.Fatalf("sent %+v, want absolute move to (640,480)", m)
	}
}

func TestClickRateLimited(t *testing.T) {
	conn := &captureSender{}
	tr := newInputTranslator(conn)
	tr.clickAt(1, 1)
	tr.clickAt(2, 2)
	if len(conn.sent) != 1 {
		t.Fatalf("burst of clicks sent %d commands, want 1", len(conn.sent))
	}
}

func TestDirVector(t *testing.T) {
	dx, dy, facing := dirVector(dirUp)
	if dx != 0 || dy != -1 || facing != FacingNorth {
		t.Fatalf("up: (%v,%v,%v)", dx, dy, facing)
	}
	dx, dy, facing = dirVector(dirLeft)
	if dx != -1 || dy != 0 || facing != FacingWest {
		t.Fatalf("left: (%v,%v,%v)", dx, dy, facing)
	}
}
