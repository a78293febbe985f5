package main

import (
	"context"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// walkSpeed is the locally predicted movement in world pixels per tick.
const walkSpeed = 3.0

const presenceInterval = 15 * time.Second

// Game wires the sync core into the ebiten loop: Update feeds input and
// housekeeping, Draw consumes a world snapshot. All world mutation from the
// loop side happens here; server messages arrive via dispatchMessage on the
// connection's read goroutine.
type Game struct {
	ctx         context.Context
	world       *World
	conn        *serverConn
	input       *inputTranslator
	loader      *imageLoader
	backdropRef string

	backdropDone bool
	prevFocused  bool
	prevDown     map[string]bool

	joinMu  sync.Mutex
	joinErr string

	lastCount    int
	lastPresence time.Time
}

var directionKeys = []struct {
	dir  string
	keys []ebiten.Key
}{
	{dirUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{dirDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{dirLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{dirRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
}

func (g *Game) Update() error {
	if g.ctx != nil {
		select {
		case <-g.ctx.Done():
			return ebiten.Termination
		default:
		}
	}

	// A lost key-up while unfocused would leave the actor walking forever,
	// so any focus loss translates to a stop.
	focused := ebiten.IsFocused()
	if g.prevFocused && !focused {
		g.input.blur()
	}
	g.prevFocused = focused

	if focused {
		g.pollDirections()
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			cx, cy := ebiten.CursorPosition()
			cam := g.world.cameraView()
			g.input.clickAt(float64(cam.X+cx), float64(cam.Y+cy))
		}
	}

	if dir := g.input.activeDirection(); dir != "" {
		dx, dy, facing := dirVector(dir)
		g.world.predictLocal(dx*walkSpeed, dy*walkSpeed, facing)
	}

	// Initial camera centering waits on the backdrop; poll until the
	// loader finishes with it one way or the other.
	if !g.backdropDone && (g.backdropRef == "" || g.loader.done(g.backdropRef)) {
		if img := g.loader.image(g.backdropRef); img != nil {
			b := img.Bounds()
			g.world.setBackdrop(b.Dx(), b.Dy())
		} else {
			// Decode failed; fall back to the default world bounds so
			// the session stays usable.
			g.world.setBackdrop(0, 0)
		}
		g.backdropDone = true
	}

	g.updatePresence()
	return nil
}

func (g *Game) pollDirections() {
	for _, b := range directionKeys {
		down := false
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				down = true
				break
			}
		}
		switch {
		case down && !g.prevDown[b.dir]:
			g.input.keyDown(b.dir)
		case !down && g.prevDown[b.dir]:
			g.input.keyUp(b.dir)
		}
		g.prevDown[b.dir] = down
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.world.snapshot()
	g.drawScene(screen, snap)
	g.drawHUD(screen, snap)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.world.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) setJoinError(msg string) {
	g.joinMu.Lock()
	g.joinErr = msg
	g.joinMu.Unlock()
}

func (g *Game) joinError() string {
	g.joinMu.Lock()
	defer g.joinMu.Unlock()
	return g.joinErr
}

// updatePresence mirrors the roster size into Discord, throttled so a busy
// doorway does not spam the RPC socket.
func (g *Game) updatePresence() {
	snap := g.world.snapshot()
	if snap.actorCount == g.lastCount || time.Since(g.lastPresence) < presenceInterval {
		return
	}
	g.lastCount = snap.actorCount
	g.lastPresence = time.Now()
	updateDiscordPresence(snap.actorCount)
}

func runGame(g *Game) {
	ebiten.SetWindowTitle("goWorld")
	ebiten.SetWindowSize(defaultViewW*gs.Scale, defaultViewH*gs.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(gs.Vsync)
	if err := ebiten.RunGame(g); err != nil {
		logError("ebiten: %v", err)
	}
}
