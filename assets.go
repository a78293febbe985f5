package main

// AssetSet is one avatar's visual definition: ordered frame refs per facing
// direction. Sets are session-durable; a redefinition with the same name
// replaces the old one wholesale.
type AssetSet struct {
	Name   string
	Frames map[Facing][]string
}

func newAssetSetFromWire(w wireAvatar) *AssetSet {
	set := &AssetSet{Name: w.Name, Frames: make(map[Facing][]string, len(w.Frames))}
	for dir, refs := range w.Frames {
		set.Frames[parseFacing(dir)] = append([]string(nil), refs...)
	}
	return set
}

// refs returns every frame reference in the set, for materialization.
func (s *AssetSet) refs() []string {
	var out []string
	for _, seq := range s.Frames {
		out = append(out, seq...)
	}
	return out
}

// resolveFrame picks the frame ref for a facing and animation index. A west
// facing with no frames of its own borrows the east sequence with the
// mirror flag set. The index is clamped into the sequence's range; servers
// advance frame counters without knowing our frame counts. ok is false when
// no sequence exists at all, which just means the actor is skipped this
// tick.
func (s *AssetSet) resolveFrame(facing Facing, frame int) (ref string, mirror bool, ok bool) {
	if s == nil {
		return "", false, false
	}
	seq := s.Frames[facing]
	if len(seq) == 0 && facing == FacingWest {
		seq = s.Frames[FacingEast]
		mirror = true
	}
	if len(seq) == 0 {
		return "", false, false
	}
	if frame < 0 {
		frame = 0
	}
	if frame >= len(seq) {
		frame = len(seq) - 1
	}
	return seq[frame], mirror, true
}
