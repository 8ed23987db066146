package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "geowars.yaml"

// ErrInvalid is wrapped by Validate for every rejected value.
var ErrInvalid = errors.New("config: invalid value")

// LoadGeowars loads the game configuration.
// Search order: customPath -> ~/.geowars/configs/geowars.yaml -> ./configs/geowars.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it names.
func LoadGeowars(customPath string) (GeowarsConfig, error) {
	cfg := DefaultGeowarsConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultGeowarsConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultGeowarsConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGeowarsYAML, &cfg); err != nil {
		return DefaultGeowarsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func Marshal(cfg GeowarsConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Validate checks values the simulation cannot run with.
func (c GeowarsConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", ErrInvalid, c.Playfield.Width, c.Playfield.Height)
	case c.Player.Radius < 0 || c.Projectile.Radius < 0 || c.Enemies.Radius < 0 || c.Particles.Radius < 0:
		return fmt.Errorf("%w: radii must not be negative", ErrInvalid)
	case c.Player.Lives <= 0:
		return fmt.Errorf("%w: player.lives must be positive, got %d", ErrInvalid, c.Player.Lives)
	case c.Enemies.MinSpeed > c.Enemies.MaxSpeed:
		return fmt.Errorf("%w: enemies.min_speed %v exceeds max_speed %v", ErrInvalid, c.Enemies.MinSpeed, c.Enemies.MaxSpeed)
	case c.Enemies.SpawnInterval <= 0:
		return fmt.Errorf("%w: enemies.spawn_interval must be positive", ErrInvalid)
	case c.Enemies.MaxCount < 0:
		return fmt.Errorf("%w: enemies.max_count must not be negative", ErrInvalid)
	case c.Particles.BurstMin > c.Particles.BurstMax:
		return fmt.Errorf("%w: particles.burst_min exceeds burst_max", ErrInvalid)
	case c.Particles.Damping < 0 || c.Particles.Damping > 1:
		return fmt.Errorf("%w: particles.damping must be within [0, 1]", ErrInvalid)
	case c.Levels.KillsPerLevel <= 0:
		return fmt.Errorf("%w: levels.kills_per_level must be positive", ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".geowars", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GeowarsConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Enemies.MaxCount = max(cfg.Enemies.MaxCount-5, 1)
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Enemies.MaxCount += 10
	}
}
