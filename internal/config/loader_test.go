package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadGeowarsEmbeddedMatchesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadGeowars("")
	if err != nil {
		t.Fatalf("LoadGeowars: %v", err)
	}
	if cfg != DefaultGeowarsConfig() {
		t.Errorf("embedded YAML differs from DefaultGeowarsConfig:\n%+v\n%+v", cfg, DefaultGeowarsConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadGeowarsCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "player:\n  lives: 7\n  fire_cooldown: 150ms\nenemies:\n  max_count: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGeowars(path)
	if err != nil {
		t.Fatalf("LoadGeowars: %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Player.Lives)
	}
	if cfg.Player.FireCooldown != 150*time.Millisecond {
		t.Errorf("FireCooldown = %v, expected 150ms", cfg.Player.FireCooldown)
	}
	if cfg.Enemies.MaxCount != 4 {
		t.Errorf("MaxCount = %d, expected 4", cfg.Enemies.MaxCount)
	}
	// Untouched sections keep defaults
	if cfg.Playfield.Width != 800 {
		t.Errorf("Playfield.Width = %v, expected default 800", cfg.Playfield.Width)
	}
}

func TestLoadGeowarsUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".geowars", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("levels:\n  kills_per_level: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGeowars("")
	if err != nil {
		t.Fatalf("LoadGeowars: %v", err)
	}
	if cfg.Levels.KillsPerLevel != 3 {
		t.Errorf("KillsPerLevel = %d, expected 3", cfg.Levels.KillsPerLevel)
	}
}

func TestLoadGeowarsErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadGeowars(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGeowars(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGeowars(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("zero lives should wrap ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GeowarsConfig)
	}{
		{"zero playfield", func(c *GeowarsConfig) { c.Playfield.Width = 0 }},
		{"negative radius", func(c *GeowarsConfig) { c.Enemies.Radius = -1 }},
		{"speed range", func(c *GeowarsConfig) { c.Enemies.MinSpeed = 500 }},
		{"spawn interval", func(c *GeowarsConfig) { c.Enemies.SpawnInterval = 0 }},
		{"burst range", func(c *GeowarsConfig) { c.Particles.BurstMin = 99 }},
		{"damping", func(c *GeowarsConfig) { c.Particles.Damping = 1.5 }},
		{"kills per level", func(c *GeowarsConfig) { c.Levels.KillsPerLevel = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGeowarsConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		lives       int
		enabled     bool
		initalLevel float64
	}{
		{DifficultyEasy, 5, true, 0.0},
		{DifficultyNormal, 3, true, 0.3},
		{DifficultyHard, 2, true, 0.7},
		{DifficultyFixed, 3, false, 0.0},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultGeowarsConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Player.Lives != tt.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Player.Lives, tt.lives)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.initalLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tt.initalLevel)
			}
		})
	}

	cfg := DefaultGeowarsConfig()
	ApplyPreset(&cfg, "")
	if cfg != DefaultGeowarsConfig() {
		t.Error("empty preset should leave config unchanged")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) failed")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestMarshalRoundTripsDurations(t *testing.T) {
	data, err := Marshal(DefaultGeowarsConfig())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "fire_cooldown: 200ms") {
		t.Errorf("durations should be written as strings:\n%s", data)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandHome("~/x/y.db"); got != filepath.Join(home, "x", "y.db") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := ExpandHome("~user/x"); got != "~user/x" {
		t.Errorf("~user form should be left alone: %q", got)
	}
}
