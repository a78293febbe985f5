package main

import "testing"

func TestCenteredOnClamps(t *testing.T) {
	tests := []struct {
		name           string
		x, y           float64
		worldW, worldH int
		viewW, viewH   int
		wantX, wantY   int
	}{
		{"center of large world", 1024, 1024, 2048, 2048, 800, 600, 624, 724},
		{"near east edge", 2040, 10, 2048, 2048, 800, 600, 1248, 0},
		{"origin", 0, 0, 2048, 2048, 800, 600, 0, 0},
		{"south-east corner", 2048, 2048, 2048, 2048, 800, 600, 1248, 1448},
		{"viewport wider than world", 50, 50, 100, 2048, 800, 600, 0, 0},
		{"viewport taller than world", 50, 50, 2048, 100, 800, 600, 0, 0},
		{"world equals viewport", 400, 300, 800, 600, 800, 600, 0, 0},
		{"fractional position rounds", 100.6, 99.4, 2048, 2048, 200, 200, 1, 0},
	}
	for _, tt := range tests {
		cam := Camera{W: tt.viewW, H: tt.viewH}.centeredOn(tt.x, tt.y, tt.worldW, tt.worldH)
		if cam.X != tt.wantX || cam.Y != tt.wantY {
			t.Errorf("%s: got (%d,%d), want (%d,%d)", tt.name, cam.X, cam.Y, tt.wantX, tt.wantY)
		}
	}
}

func TestClampAxis(t *testing.T) {
	if got := clampAxis(-5, 1000, 100); got != 0 {
		t.Fatalf("negative position: got %d", got)
	}
	if got := clampAxis(950, 1000, 100); got != 900 {
		t.Fatalf("past limit: got %d", got)
	}
	if got := clampAxis(10, 50, 100); got != 0 {
		t.Fatalf("view larger than world: got %d", got)
	}
}
