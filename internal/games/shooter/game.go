// Package shooter implements a vertically scrolling space shooter as a
// fixed-step simulation. A Game owns every entity of one round and is
// driven one tick at a time by a host.
package shooter

import (
	"slices"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// Round states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithConfig pins the configuration instead of loading it on Reset.
func WithConfig(cfg config.ShooterConfig) Option {
	return func(g *Game) {
		g.fixedCfg = &cfg
	}
}

// WithClock replaces the system clock that drives the boss attack cycle.
func WithClock(c Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// Game is the round controller. It owns the player and every entity
// collection; Reset discards all of them.
type Game struct {
	preset   config.Preset
	fixedCfg *config.ShooterConfig
	clock    Clock

	cfg     config.ShooterConfig
	runtime core.RuntimeConfig
	rng     *SimpleRNG // gameplay rolls
	fxRNG   *SimpleRNG // cosmetic particles

	player      *Player
	adversaries arena
	bullets     []Bullet
	pickups     []Pickup
	lasers      []Laser
	explosions  []Explosion

	director *Director
	attack   AttackCycle
	boss     BossHandle

	state       string
	score       int
	best        int
	tick        int
	backgroundY int
	events      []core.Event

	screenTooSmall bool
	pausedMS       int64
}

// New creates a classic round.
func New(opts ...Option) *Game {
	return newGame(config.PresetClassic, opts)
}

// NewArcade creates a three-hit round.
func NewArcade(opts ...Option) *Game {
	return newGame(config.PresetArcade, opts)
}

func newGame(preset config.Preset, opts []Option) *Game {
	g := &Game{preset: preset, boss: NoBoss}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = NewSystemClock()
	}
	return g
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.preset == config.PresetArcade {
		return "shooter_arcade"
	}
	return "shooter"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.preset == config.PresetArcade {
		return "Space Shooter (Arcade)"
	}
	return "Space Shooter"
}

// Config returns the configuration of the current round.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// SetClock swaps the attack-cycle clock. Takes effect immediately.
func (g *Game) SetClock(c Clock) {
	if c != nil {
		g.clock = c
	}
}

// SetBestScore tells the round which best score to display.
func (g *Game) SetBestScore(best int) {
	g.best = best
}

// Reset discards the current round and starts a new one.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	// Only rendering cares about the host size; the simulation runs on the
	// logical field regardless.
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	g.rng = NewSimpleRNG(runtime.Seed)
	g.fxRNG = NewSimpleRNG(runtime.Seed ^ 0x5eed)

	g.player = NewPlayer(g.cfg)
	g.adversaries = arena{}
	g.bullets = make([]Bullet, 0, 32)
	g.pickups = make([]Pickup, 0, 4)
	g.lasers = make([]Laser, 0, 1)
	g.explosions = make([]Explosion, 0, 8)

	g.director = NewDirector(g.cfg)
	g.attack = NewAttackCycle(g.cfg.Laser)
	g.boss = NoBoss

	g.state = StatePlaying
	g.score = 0
	g.tick = 0
	g.backgroundY = 0
	g.pausedMS = 0
	g.events = nil

	for range g.cfg.Enemy.InitialWave {
		g.adversaries.spawn(NewEnemy(g.cfg, g.rng))
	}
}

func (g *Game) loadConfig() config.ShooterConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	config.ApplyPreset(&cfg, g.preset)
	return cfg
}

// Step advances the round by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
			g.pausedMS = g.clock.NowMS()
		case StatePaused:
			g.state = StatePlaying
			g.attack.Shift(g.clock.NowMS() - g.pausedMS)
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	// Fire is an edge: one volley per press, before the ship moves.
	if in.Has(core.ActionFire) {
		g.bullets = append(g.bullets, g.player.Shoot(g.cfg.Bullet)...)
		g.emit(core.EventShot, g.player.Rect.CenterX(), g.player.Rect.Y)
	}
	g.player.ApplyInput(DirectionsFrom(in))

	g.runDirector()
	g.moveAll()
	g.runAttackCycle()
	g.resolveCollisions()
	g.sweep()

	g.player.ClampHP()
	if g.player.HP == 0 {
		g.state = StateGameOver
		g.emit(core.EventGameOver, g.player.Rect.CenterX(), g.player.Rect.CenterY())
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) runDirector() {
	plan := g.director.Tick(g.score, g.adversaries.countAlive(KindEnemy), g.rng)

	if plan.Heal {
		g.pickups = append(g.pickups, NewHealItem(g.cfg, g.rng))
	}
	if plan.Spread {
		g.pickups = append(g.pickups, NewSpreadItem(g.cfg, g.rng))
	}
	if plan.Enemy {
		g.adversaries.spawn(NewEnemy(g.cfg, g.rng))
	}
	if plan.Boss {
		boss := NewBoss(g.cfg, plan.BossHP)
		g.boss = g.adversaries.spawn(boss)
		g.attack.Start(g.clock.NowMS())
		g.emit(core.EventBossSpawned, boss.Rect.CenterX(), boss.Rect.CenterY())
	}
}

func (g *Game) moveAll() {
	w, h := g.cfg.Viewport.Width, g.cfg.Viewport.Height

	g.player.Tick()

	for i := range g.bullets {
		g.bullets[i].Move(w)
	}
	for i := range g.pickups {
		g.pickups[i].Move(h)
	}
	for i := range g.adversaries.slots {
		if a := &g.adversaries.slots[i]; a.Alive {
			a.Move(g.cfg)
		}
	}
	for i := range g.explosions {
		g.explosions[i].Tick()
	}

	g.backgroundY += g.cfg.Background.ScrollSpeed
	if h > 0 {
		g.backgroundY %= h
	}
}

// runAttackCycle opens and closes the boss laser on the millisecond
// clock, then pulls every beam toward its boss.
func (g *Game) runAttackCycle() {
	boss := g.adversaries.resolve(g.boss)
	if boss != nil {
		open, closed := g.attack.Update(g.clock.NowMS())
		if open {
			l := NewLaser(boss, g.boss, g.cfg)
			g.lasers = append(g.lasers, l)
			g.emit(core.EventLaserOn, l.Rect.CenterX(), 0)
		}
		if closed {
			g.clearLasers()
		}
	}

	for i := range g.lasers {
		l := &g.lasers[i]
		target := g.adversaries.resolve(l.Boss)
		if target == nil {
			l.Alive = false
			continue
		}
		l.Follow(target.Rect.CenterX(), g.cfg.Laser.Follow)
	}
}

func (g *Game) clearLasers() {
	if len(g.lasers) == 0 {
		return
	}
	for i := range g.lasers {
		g.lasers[i].Alive = false
	}
	g.emit(core.EventLaserOff, 0, 0)
}

func (g *Game) explode(x, y int, boss bool) {
	if !g.cfg.Explosions.Enabled {
		return
	}
	g.explosions = append(g.explosions, NewExplosion(x, y, boss, g.cfg.Explosions, g.fxRNG))
}

// sweep drops everything that died this tick.
func (g *Game) sweep() {
	g.adversaries.sweep()
	g.bullets = slices.DeleteFunc(g.bullets, func(b Bullet) bool { return !b.Alive })
	g.pickups = slices.DeleteFunc(g.pickups, func(p Pickup) bool { return !p.Alive })
	g.lasers = slices.DeleteFunc(g.lasers, func(l Laser) bool { return !l.Alive })
	g.explosions = slices.DeleteFunc(g.explosions, func(e Explosion) bool { return e.Done() })
}

func (g *Game) emit(kind core.EventKind, x, y int) {
	g.events = append(g.events, core.Event{Kind: kind, X: x, Y: y})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the modes with the registry
func init() {
	registry.Register("shooter", func() registry.Game {
		return New()
	})
	registry.Register("shooter_arcade", func() registry.Game {
		return NewArcade()
	})
}
