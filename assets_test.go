package main

import "testing"

func eastOnlySet() *AssetSet {
	return newAssetSetFromWire(wireAvatar{
		Name: "drifter",
		Frames: map[string][]string{
			"east":  {"e0", "e1", "e2"},
			"south": {"s0"},
		},
	})
}

func TestResolveFrameWestMirrorsEast(t *testing.T) {
	set := eastOnlySet()
	for frame := -1; frame <= 5; frame++ {
		ref, mirror, ok := set.resolveFrame(FacingWest, frame)
		if !ok {
			t.Fatalf("frame %d: expected east fallback", frame)
		}
		if !mirror {
			t.Fatalf("frame %d: fallback must set the mirror flag", frame)
		}
		want := "e0"
		if frame >= 2 {
			want = "e2"
		} else if frame == 1 {
			want = "e1"
		}
		if ref != want {
			t.Fatalf("frame %d: got %q, want %q", frame, ref, want)
		}
	}
}

func TestResolveFrameClampsIndex(t *testing.T) {
	set := eastOnlySet()
	if ref, _, ok := set.resolveFrame(FacingEast, 99); !ok || ref != "e2" {
		t.Fatalf("out-of-range index: got %q ok=%v", ref, ok)
	}
	if ref, _, ok := set.resolveFrame(FacingEast, -3); !ok || ref != "e0" {
		t.Fatalf("negative index: got %q ok=%v", ref, ok)
	}
}

func TestResolveFrameMissingSequence(t *testing.T) {
	set := eastOnlySet()
	if _, _, ok := set.resolveFrame(FacingNorth, 0); ok {
		t.Fatal("missing north sequence should not resolve")
	}
	var nilSet *AssetSet
	if _, _, ok := nilSet.resolveFrame(FacingSouth, 0); ok {
		t.Fatal("nil set should not resolve")
	}
}

func TestResolveFrameDirectOwnSequence(t *testing.T) {
	set := eastOnlySet()
	ref, mirror, ok := set.resolveFrame(FacingSouth, 0)
	if !ok || mirror || ref != "s0" {
		t.Fatalf("got %q mirror=%v ok=%v", ref, mirror, ok)
	}
}

func TestParseFacingDefaultsSouth(t *testing.T) {
	if got := parseFacing("sideways"); got != FacingSouth {
		t.Fatalf("got %q", got)
	}
	if got := parseFacing("west"); got != FacingWest {
		t.Fatalf("got %q", got)
	}
}
