package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in every search location.
const FileName = "shooter.yaml"

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.shooter/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides what it names.
func LoadShooter(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", "configs", filename)
}

// ApplyPreset modifies the config based on a balance preset.
func ApplyPreset(cfg *ShooterConfig, preset Preset) {
	cfg.Preset = string(preset)
	if preset != PresetArcade {
		return
	}
	cfg.Player.MaxHP = 3
	cfg.Combat.ContactDamage = 1
	cfg.Combat.ContactGraceTicks = 60
	cfg.Laser.Damage = 1
	cfg.Laser.GraceTicks = 60
	cfg.Pickups.HealOdds = 0
	cfg.Explosions.Enabled = false
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first value that would break the simulation.
func (c ShooterConfig) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"viewport.width", c.Viewport.Width},
		{"viewport.height", c.Viewport.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.max_hp", c.Player.MaxHP},
		{"bullet.width", c.Bullet.Width},
		{"bullet.height", c.Bullet.Height},
		{"bullet.speed", c.Bullet.Speed},
		{"enemy.width", c.Enemy.Width},
		{"enemy.height", c.Enemy.Height},
		{"enemy.min_speed", c.Enemy.MinSpeed},
		{"pickups.fall_speed", c.Pickups.FallSpeed},
		{"boss.width", c.Boss.Width},
		{"boss.height", c.Boss.Height},
		{"boss.base_hp", c.Boss.BaseHP},
		{"boss.score_threshold", c.Boss.ScoreThreshold},
		{"boss.bullet_damage", c.Boss.BulletDamage},
		{"laser.width", c.Laser.Width},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.v)
		}
	}
	if c.Enemy.MaxSpeed < c.Enemy.MinSpeed {
		return fmt.Errorf("%w: enemy.max_speed %d below min_speed %d", ErrInvalidConfig, c.Enemy.MaxSpeed, c.Enemy.MinSpeed)
	}
	if c.Enemy.SpawnMaxY < c.Enemy.SpawnMinY {
		return fmt.Errorf("%w: enemy spawn range [%d, %d] is empty", ErrInvalidConfig, c.Enemy.SpawnMinY, c.Enemy.SpawnMaxY)
	}
	if c.Pickups.SpreadMaxY < c.Pickups.SpreadMinY {
		return fmt.Errorf("%w: spread spawn range [%d, %d] is empty", ErrInvalidConfig, c.Pickups.SpreadMinY, c.Pickups.SpreadMaxY)
	}
	if c.Pickups.HealOdds < 0 {
		return fmt.Errorf("%w: pickups.heal_odds must not be negative", ErrInvalidConfig)
	}
	if c.Laser.Follow < 0 || c.Laser.Follow > 1 {
		return fmt.Errorf("%w: laser.follow must be within [0, 1], got %g", ErrInvalidConfig, c.Laser.Follow)
	}
	if c.Player.Width > c.Viewport.Width || c.Player.Height > c.Viewport.Height {
		return fmt.Errorf("%w: player does not fit the viewport", ErrInvalidConfig)
	}
	return nil
}
