package main

import (
	"errors"
	"sort"
	"sync"
)

const (
	defaultWorldW = 2048
	defaultWorldH = 2048

	defaultViewW = 800
	defaultViewH = 600

	// animTicksPerFrame paces the locally predicted walk animation.
	animTicksPerFrame = 8
)

// assetLoader is the world's view of the image-loading collaborator. It
// only triggers materialization; readiness is polled by the renderer.
type assetLoader interface {
	ensureLoaded(set *AssetSet)
}

// World is the authoritative local mirror of the shared world: the actor
// roster, avatar definitions, the camera, and which actor is ours. All
// mutation funnels through Apply* calls made in inbound-message order, so
// one mutex is enough.
type World struct {
	mu      sync.Mutex
	actors  map[string]*Actor
	assets  map[string]*AssetSet
	localID string
	cam     Camera

	worldW, worldH int
	backdropReady  bool
	rosterReady    bool

	loader   assetLoader
	animTick int
}

func newWorld(loader assetLoader) *World {
	return &World{
		actors: make(map[string]*Actor),
		assets: make(map[string]*AssetSet),
		cam:    Camera{W: defaultViewW, H: defaultViewH},
		worldW: defaultWorldW,
		worldH: defaultWorldH,
		loader: loader,
	}
}

// applyJoinReply adopts the initial roster and avatar snapshot. A rejected
// join leaves all state untouched and returns the server's reason. The
// camera is centered only once both the roster and the backdrop are in;
// whichever arrives last triggers it.
func (w *World) applyJoinReply(m joinGameReply) error {
	if !m.Success {
		if m.Error == "" {
			return errors.New("join rejected")
		}
		return errors.New(m.Error)
	}

	w.mu.Lock()
	w.actors = make(map[string]*Actor, len(m.Players))
	for id, wp := range m.Players {
		a := newActorFromWire(wp)
		if a.ID == "" {
			a.ID = id
		}
		w.actors[a.ID] = a
	}
	w.assets = make(map[string]*AssetSet, len(m.Avatars))
	var sets []*AssetSet
	for _, wa := range m.Avatars {
		set := newAssetSetFromWire(wa)
		w.assets[set.Name] = set
		sets = append(sets, set)
	}
	w.localID = m.PlayerID
	w.rosterReady = true
	w.recenterLocalLocked()
	loader := w.loader
	w.mu.Unlock()

	if loader != nil {
		for _, set := range sets {
			loader.ensureLoaded(set)
		}
	}
	logInfo("joined as %s with %d actors, %d avatars", m.PlayerID, len(m.Players), len(m.Avatars))
	return nil
}

// applyActorJoined upserts the actor and replaces its avatar definition.
func (w *World) applyActorJoined(m playerJoined) {
	if m.Player.ID == "" {
		return
	}
	w.mu.Lock()
	if a, ok := w.actors[m.Player.ID]; ok {
		*a = *newActorFromWire(m.Player)
	} else {
		w.actors[m.Player.ID] = newActorFromWire(m.Player)
	}
	var set *AssetSet
	if m.Avatar.Name != "" {
		set = newAssetSetFromWire(m.Avatar)
		w.assets[set.Name] = set
	}
	loader := w.loader
	w.mu.Unlock()

	if loader != nil && set != nil {
		loader.ensureLoaded(set)
	}
	logDebug("actor joined: %s (%s)", m.Player.ID, m.Player.Username)
}

// applyActorsMoved merges partial updates into existing records. Unknown
// ids are ignored; a departed actor must not be resurrected by a straggling
// update. A merge into the local actor recenters the camera on the
// server-confirmed position, discarding any local prediction.
func (w *World) applyActorsMoved(m playersMoved) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id, u := range m.Players {
		a, ok := w.actors[id]
		if !ok {
			continue
		}
		a.merge(u)
		if id == w.localID {
			w.recenterLocalLocked()
		}
	}
}

// applyActorLeft removes the record outright. No tombstone, no grace.
func (w *World) applyActorLeft(m playerLeft) {
	w.mu.Lock()
	delete(w.actors, m.PlayerID)
	w.mu.Unlock()
	logDebug("actor left: %s", m.PlayerID)
}

// setBackdrop records the loaded backdrop dimensions, which define the
// world bounds, and performs any centering that was waiting on it.
func (w *World) setBackdrop(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if width > 0 && height > 0 {
		w.worldW, w.worldH = width, height
	}
	w.backdropReady = true
	w.recenterLocalLocked()
}

// resize updates the viewport dimensions and re-clamps the camera.
func (w *World) resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if width == w.cam.W && height == w.cam.H {
		return
	}
	w.cam.W, w.cam.H = width, height
	if !w.recenterLocalLocked() {
		w.cam.X = clampAxis(w.cam.X, w.worldW, w.cam.W)
		w.cam.Y = clampAxis(w.cam.Y, w.worldH, w.cam.H)
	}
}

// recenterLocalLocked centers the camera on the local actor when both gate
// conditions hold. Reports whether centering happened.
func (w *World) recenterLocalLocked() bool {
	if !w.backdropReady || !w.rosterReady {
		return false
	}
	a, ok := w.actors[w.localID]
	if !ok {
		return false
	}
	w.cam = w.cam.centeredOn(a.X, a.Y, w.worldW, w.worldH)
	return true
}

// predictLocal advances the local actor optimistically while a directional
// intent is held. The next authoritative update overrides whatever this
// guessed. Positions clamp to the world bounds so prediction cannot walk
// off the map edge.
func (w *World) predictLocal(dx, dy float64, facing Facing) {
	w.mu.Lock()
	defer w.mu.Unlock()
	a, ok := w.actors[w.localID]
	if !ok {
		return
	}
	a.X = clampCoord(a.X+dx, float64(w.worldW))
	a.Y = clampCoord(a.Y+dy, float64(w.worldH))
	a.Facing = facing
	a.IsMoving = true

	w.animTick++
	if w.animTick%animTicksPerFrame == 0 {
		if set := w.assets[a.Avatar]; set != nil {
			if n := len(set.Frames[a.Facing]); n > 0 {
				a.AnimationFrame = (a.AnimationFrame + 1) % n
			} else if a.Facing == FacingWest {
				if n := len(set.Frames[FacingEast]); n > 0 {
					a.AnimationFrame = (a.AnimationFrame + 1) % n
				}
			}
		}
	}
	w.recenterLocalLocked()
}

// cameraView returns the current camera rectangle.
func (w *World) cameraView() Camera {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cam
}

// renderActor is one actor prepared for drawing: position, resolved frame
// ref, and whether the frame should be horizontally mirrored.
type renderActor struct {
	id       string
	x, y     float64
	name     string
	frameRef string
	mirror   bool
	hasFrame bool
	local    bool
}

// worldSnapshot is the read-only view the renderer consumes once per frame.
type worldSnapshot struct {
	cam        Camera
	actors     []renderActor
	actorCount int
	joined     bool
}

// snapshot assembles a consistent renderable view under one lock hold.
// Actors are sorted by Y so southern actors draw over northern ones.
func (w *World) snapshot() worldSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := worldSnapshot{
		cam:        w.cam,
		actors:     make([]renderActor, 0, len(w.actors)),
		actorCount: len(w.actors),
		joined:     w.rosterReady,
	}
	for _, a := range w.actors {
		ra := renderActor{
			id:    a.ID,
			x:     a.X,
			y:     a.Y,
			name:  a.Name,
			local: a.ID == w.localID,
		}
		ra.frameRef, ra.mirror, ra.hasFrame = w.assets[a.Avatar].resolveFrame(a.Facing, a.AnimationFrame)
		snap.actors = append(snap.actors, ra)
	}
	sort.Slice(snap.actors, func(i, j int) bool {
		if snap.actors[i].y != snap.actors[j].y {
			return snap.actors[i].y < snap.actors[j].y
		}
		return snap.actors[i].id < snap.actors[j].id
	})
	return snap
}
