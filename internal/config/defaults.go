package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the classic shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Preset: string(PresetClassic),
		Viewport: ViewportConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        80,
			Height:       80,
			Speed:        6,
			MaxHP:        100,
			BottomMargin: 10,
			LowHPRatio:   0.3,
		},
		Bullet: BulletConfig{
			Width:    8,
			Height:   8,
			Speed:    10,
			SpreadVX: 3,
		},
		Enemy: EnemyConfig{
			Width:         70,
			Height:        70,
			MinSpeed:      2,
			MaxSpeed:      5,
			SpawnMinY:     -150,
			SpawnMaxY:     -50,
			SpawnInterval: 60,
			Cap:           5,
			InitialWave:   5,
			Score:         10,
		},
		Pickups: PickupConfig{
			SpreadWidth:    20,
			SpreadHeight:   20,
			SpreadMinY:     -200,
			SpreadMaxY:     -40,
			SpreadInterval: 400,
			SpreadTicks:    300,
			HealWidth:      26,
			HealHeight:     26,
			HealSpawnY:     -30,
			HealOdds:       1000,
			HealAmount:     30,
			FallSpeed:      3,
		},
		Boss: BossConfig{
			Width:          200,
			Height:         200,
			SpawnY:         -150,
			BaseHP:         80,
			HPPerStage:     25,
			ScoreThreshold: 300,
			Score:          150,
			EntryLine:      20,
			EntrySpeed:     2,
			PatrolSpeed:    3,
			BulletDamage:   5,
		},
		Laser: LaserConfig{
			Width:      8,
			DelayMS:    5000,
			DurationMS: 1500,
			Follow:     0.15,
			Damage:     30,
			GraceTicks: 50,
		},
		Combat: CombatConfig{
			ContactDamage:     15,
			ContactGraceTicks: 40,
		},
		Explosions: ExplosionConfig{
			Enabled:         true,
			Ticks:           15,
			BossTicks:       40,
			Debris:          10,
			BossDebris:      40,
			BossSmoke:       25,
			BossFlashRadius: 120,
		},
		Background: BackgroundConfig{
			ScrollSpeed: 3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultShooterYAML
}
