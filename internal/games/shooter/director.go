package shooter

import "github.com/vovakirdan/tui-shooter/internal/config"

// Cadence fires once its counter exceeds Interval. The caller decides
// whether to act and then calls Reset; an ignored firing does not queue.
type Cadence struct {
	Interval int
	count    int
}

// Advance counts one tick and reports whether the cadence is due.
func (c *Cadence) Advance() bool {
	c.count++
	return c.count > c.Interval
}

// Reset starts a new interval.
func (c *Cadence) Reset() {
	c.count = 0
}

// Chance is an independent 1-in-Odds trial per tick. Zero odds never fire.
type Chance struct {
	Odds int
}

// Roll draws once from rng.
func (c Chance) Roll(rng *SimpleRNG) bool {
	if c.Odds <= 0 {
		return false
	}
	return rng.Intn(c.Odds) == 0
}

// Plan lists what the director wants spawned this tick.
type Plan struct {
	Heal   bool
	Spread bool
	Enemy  bool
	Boss   bool
	BossHP int
}

// Director owns the spawn cadences and boss progression.
type Director struct {
	Stage      int
	BossActive bool

	enemies Cadence
	items   Cadence
	heal    Chance

	enemyCap       int
	threshold      int
	bossBaseHP     int
	bossHPPerStage int
}

// NewDirector creates a director at stage 1 with no boss.
func NewDirector(cfg config.ShooterConfig) *Director {
	return &Director{
		Stage:          1,
		enemies:        Cadence{Interval: cfg.Enemy.SpawnInterval},
		items:          Cadence{Interval: cfg.Pickups.SpreadInterval},
		heal:           Chance{Odds: cfg.Pickups.HealOdds},
		enemyCap:       cfg.Enemy.Cap,
		threshold:      cfg.Boss.ScoreThreshold,
		bossBaseHP:     cfg.Boss.BaseHP,
		bossHPPerStage: cfg.Boss.HPPerStage,
	}
}

// Tick runs every cadence once. liveEnemies counts regular enemies only.
func (d *Director) Tick(score, liveEnemies int, rng *SimpleRNG) Plan {
	var p Plan

	p.Heal = d.heal.Roll(rng)

	if d.items.Advance() {
		p.Spread = true
		d.items.Reset()
	}

	if d.enemies.Advance() && liveEnemies < d.enemyCap {
		p.Enemy = true
		d.enemies.Reset()
	}

	if !d.BossActive && score >= d.Stage*d.threshold {
		p.Boss = true
		p.BossHP = d.BossHP()
		d.BossActive = true
	}
	return p
}

// BossHP is the hp of the boss for the current stage.
func (d *Director) BossHP() int {
	return d.bossBaseHP + (d.Stage-1)*d.bossHPPerStage
}

// NextBossScore is the score that summons the next boss.
func (d *Director) NextBossScore() int {
	return d.Stage * d.threshold
}

// BossDefeated clears the active boss and moves to the next stage.
func (d *Director) BossDefeated() {
	d.BossActive = false
	d.Stage++
}
