package main

// Facing is the cardinal direction an actor is looking.
type Facing string

const (
	FacingNorth Facing = "north"
	FacingSouth Facing = "south"
	FacingEast  Facing = "east"
	FacingWest  Facing = "west"
)

// parseFacing maps a wire facing string onto a known direction. Anything
// unrecognized falls back to south, the spawn-facing default.
func parseFacing(s string) Facing {
	switch Facing(s) {
	case FacingNorth, FacingSouth, FacingEast, FacingWest:
		return Facing(s)
	}
	return FacingSouth
}

// Actor is one visible participant, local or remote. Records are created on
// first sighting, mutated in place by partial updates, and removed only on
// an explicit player_left.
type Actor struct {
	ID             string
	X, Y           float64
	Facing         Facing
	AnimationFrame int
	IsMoving       bool
	Name           string
	Avatar         string // AssetSet name
}

func newActorFromWire(w wireActor) *Actor {
	return &Actor{
		ID:             w.ID,
		X:              w.X,
		Y:              w.Y,
		Facing:         parseFacing(w.Facing),
		AnimationFrame: max(w.AnimationFrame, 0),
		IsMoving:       w.IsMoving,
		Name:           w.Username,
		Avatar:         w.Avatar,
	}
}

// merge applies a partial update, leaving absent fields untouched.
func (a *Actor) merge(u actorUpdate) {
	if u.X != nil {
		a.X = *u.X
	}
	if u.Y != nil {
		a.Y = *u.Y
	}
	if u.Facing != nil {
		a.Facing = parseFacing(*u.Facing)
	}
	if u.IsMoving != nil {
		a.IsMoving = *u.IsMoving
	}
	if u.AnimationFrame != nil {
		a.AnimationFrame = max(*u.AnimationFrame, 0)
	}
}
