package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds the persisted client configuration. Command line flags
// override individual fields for a single run without being saved back.
type Settings struct {
	Endpoint string `json:"endpoint"`
	Username string `json:"username"`
	Backdrop string `json:"backdrop"`
	Scale    int    `json:"scale"`
	Vsync    bool   `json:"vsync"`
	Debug    bool   `json:"debug"`
}

var gs = defaultSettings()

func defaultSettings() Settings {
	return Settings{
		Endpoint: "ws://localhost:8080/ws",
		Username: "wanderer",
		Backdrop: filepath.Join("data", "world.png"),
		Scale:    1,
		Vsync:    true,
	}
}

func settingsPath() string {
	return filepath.Join(baseDir, "settings.json")
}

// loadSettings reads settings.json if it exists. Missing or malformed files
// leave the defaults in place.
func loadSettings() bool {
	data, err := os.ReadFile(settingsPath())
	if err != nil {
		return false
	}
	s := defaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		logError("load settings: %v", err)
		return false
	}
	if s.Scale < 1 {
		s.Scale = 1
	}
	gs = s
	return true
}

// saveSettings writes the current settings to settings.json.
func saveSettings() {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		logError("save settings: %v", err)
		return
	}
	if err := os.WriteFile(settingsPath(), data, 0644); err != nil {
		logError("save settings: %v", err)
	}
}
