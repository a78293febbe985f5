package main

import "testing"

func TestSettingsRoundTrip(t *testing.T) {
	origBase, origGS := baseDir, gs
	t.Cleanup(func() { baseDir, gs = origBase, origGS })

	baseDir = t.TempDir()
	if loadSettings() {
		t.Fatal("loadSettings reported success with no file present")
	}

	gs = defaultSettings()
	gs.Endpoint = "wss://example.test/ws"
	gs.Username = "erin"
	gs.Scale = 2
	saveSettings()

	gs = Settings{}
	if !loadSettings() {
		t.Fatal("loadSettings failed after save")
	}
	if gs.Endpoint != "wss://example.test/ws" || gs.Username != "erin" || gs.Scale != 2 {
		t.Fatalf("round trip lost fields: %+v", gs)
	}
}

func TestLoadSettingsRejectsBadScale(t *testing.T) {
	origBase, origGS := baseDir, gs
	t.Cleanup(func() { baseDir, gs = origBase, origGS })

	baseDir = t.TempDir()
	gs = defaultSettings()
	gs.Scale = 0
	saveSettings()

	gs = Settings{}
	if !loadSettings() {
		t.Fatal("loadSettings failed")
	}
	if gs.Scale != 1 {
		t.Fatalf("scale %d, want floor of 1", gs.Scale)
	}
}
