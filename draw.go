package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hako/durafmt"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

var sceneBG = color.RGBA{R: 16, G: 16, B: 20, A: 255}

// drawScene paints the backdrop and every renderable actor from the
// snapshot. Actors whose frame is unresolved or still materializing are
// skipped for this tick only.
func (g *Game) drawScene(screen *ebiten.Image, snap worldSnapshot) {
	screen.Fill(sceneBG)
	camX, camY := float64(snap.cam.X), float64(snap.cam.Y)

	if bg := g.loader.image(g.backdropRef); bg != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-camX, -camY)
		screen.DrawImage(bg, op)
	}

	for _, a := range snap.actors {
		if !a.hasFrame {
			continue
		}
		img := g.loader.image(a.frameRef)
		if img == nil {
			continue
		}
		b := img.Bounds()
		w, h := float64(b.Dx()), float64(b.Dy())

		op := &ebiten.DrawImageOptions{}
		if a.mirror {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(w, 0)
		}
		// Sprite anchor is bottom-center: the position is where the feet
		// stand.
		op.GeoM.Translate(a.x-w/2-camX, a.y-h-camY)
		screen.DrawImage(img, op)

		if a.name != "" {
			tx := roundToInt(a.x-camX) - 3*len(a.name)
			ty := roundToInt(a.y-h-camY) - 16
			ebitenutil.DebugPrintAt(screen, a.name, tx, ty)
		}
	}
}

// drawHUD renders the one-line status strip along the bottom edge.
func (g *Game) drawHUD(screen *ebiten.Image, snap worldSnapshot) {
	st := g.conn.status()
	line := st.state.String()
	switch {
	case st.terminal:
		line = fmt.Sprintf("connection lost after %d attempts; restart to try again", maxReconnectAttempts)
	case st.state == stateConnected:
		session := durafmt.Parse(time.Since(st.connectedAt).Truncate(time.Second)).LimitFirstN(2).Format(shortUnits)
		line = fmt.Sprintf("connected | %d here | %s | %s received", snap.actorCount, session, humanize.Bytes(st.bytesIn))
	case st.attempts > 0:
		line = fmt.Sprintf("%s (attempt %d/%d)", st.state, st.attempts, maxReconnectAttempts)
	}
	if msg := g.joinError(); msg != "" {
		line = "join failed: " + msg
	}

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, float32(h-18), float32(w), 18, color.RGBA{A: 180}, false)
	ebitenutil.DebugPrintAt(screen, line, 4, h-16)
}
