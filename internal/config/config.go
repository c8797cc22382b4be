// Package config provides YAML-based game configuration loading and
// balance presets for the shooter.
package config

// ShooterConfig contains every tunable number of the simulation.
// Durations suffixed Ticks are in simulation ticks; suffixed MS are
// wall-clock milliseconds.
type ShooterConfig struct {
	Preset     string           `yaml:"preset"`
	Viewport   ViewportConfig   `yaml:"viewport"`
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Pickups    PickupConfig     `yaml:"pickups"`
	Boss       BossConfig       `yaml:"boss"`
	Laser      LaserConfig      `yaml:"laser"`
	Combat     CombatConfig     `yaml:"combat"`
	Explosions ExplosionConfig  `yaml:"explosions"`
	Background BackgroundConfig `yaml:"background"`
}

// ViewportConfig is the logical playfield size.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Speed        int     `yaml:"speed"`
	MaxHP        int     `yaml:"max_hp"`
	BottomMargin int     `yaml:"bottom_margin"`
	LowHPRatio   float64 `yaml:"low_hp_ratio"`
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Speed    int `yaml:"speed"`     // upward speed per tick
	SpreadVX int `yaml:"spread_vx"` // horizontal speed of angled spread shots
}

// EnemyConfig defines regular enemies and their cadence.
type EnemyConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	MinSpeed      int `yaml:"min_speed"`
	MaxSpeed      int `yaml:"max_speed"`
	SpawnMinY     int `yaml:"spawn_min_y"`
	SpawnMaxY     int `yaml:"spawn_max_y"`
	SpawnInterval int `yaml:"spawn_interval"` // ticks; spawn when counter exceeds it
	Cap           int `yaml:"cap"`            // max live non-boss enemies for cadence spawns
	InitialWave   int `yaml:"initial_wave"`
	Score         int `yaml:"score"`
}

// PickupConfig defines spread and heal pickups.
type PickupConfig struct {
	SpreadWidth    int `yaml:"spread_width"`
	SpreadHeight   int `yaml:"spread_height"`
	SpreadMinY     int `yaml:"spread_min_y"`
	SpreadMaxY     int `yaml:"spread_max_y"`
	SpreadInterval int `yaml:"spread_interval"` // ticks; spawn when counter exceeds it
	SpreadTicks    int `yaml:"spread_ticks"`    // buff duration
	HealWidth      int `yaml:"heal_width"`
	HealHeight     int `yaml:"heal_height"`
	HealSpawnY     int `yaml:"heal_spawn_y"`
	HealOdds       int `yaml:"heal_odds"` // 1-in-N per tick; 0 disables heal pickups
	HealAmount     int `yaml:"heal_amount"`
	FallSpeed      int `yaml:"fall_speed"`
}

// BossConfig defines bosses and score-driven progression.
type BossConfig struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	SpawnY         int `yaml:"spawn_y"`
	BaseHP         int `yaml:"base_hp"`
	HPPerStage     int `yaml:"hp_per_stage"`
	ScoreThreshold int `yaml:"score_threshold"`
	Score          int `yaml:"score"`
	EntryLine      int `yaml:"entry_line"`
	EntrySpeed     int `yaml:"entry_speed"`
	PatrolSpeed    int `yaml:"patrol_speed"`
	BulletDamage   int `yaml:"bullet_damage"`
}

// LaserConfig defines the boss attack cycle.
type LaserConfig struct {
	Width      int     `yaml:"width"`
	DelayMS    int     `yaml:"delay_ms"`
	DurationMS int     `yaml:"duration_ms"`
	Follow     float64 `yaml:"follow"` // fraction of the remaining gap closed per tick
	Damage     int     `yaml:"damage"`
	GraceTicks int     `yaml:"grace_ticks"`
}

// CombatConfig defines contact damage.
type CombatConfig struct {
	ContactDamage     int `yaml:"contact_damage"`
	ContactGraceTicks int `yaml:"contact_grace_ticks"`
}

// ExplosionConfig defines the cosmetic explosion effect.
type ExplosionConfig struct {
	Enabled         bool `yaml:"enabled"`
	Ticks           int  `yaml:"ticks"`
	BossTicks       int  `yaml:"boss_ticks"`
	Debris          int  `yaml:"debris"`
	BossDebris      int  `yaml:"boss_debris"`
	BossSmoke       int  `yaml:"boss_smoke"`
	BossFlashRadius int  `yaml:"boss_flash_radius"`
}

// BackgroundConfig defines the scrolling backdrop offset.
type BackgroundConfig struct {
	ScrollSpeed int `yaml:"scroll_speed"`
}

// Preset names a balancing preset.
type Preset string

const (
	// PresetClassic is the canonical balance: hp bar, heal pickups, explosions.
	PresetClassic Preset = "classic"
	// PresetArcade is the three-hit balance: 1 damage per hit, no heals.
	PresetArcade Preset = "arcade"
)

// Presets lists the known presets in display order.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetArcade}
}

// ParsePreset converts a CLI string to a Preset.
// Empty input selects the classic preset.
func ParsePreset(s string) (Preset, bool) {
	switch s {
	case "", string(PresetClassic):
		return PresetClassic, true
	case string(PresetArcade):
		return PresetArcade, true
	default:
		return "", false
	}
}
