package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Laser is a full-height beam that trails its boss horizontally.
// It has no lifetime of its own; the attack cycle removes it.
type Laser struct {
	Entity
	Boss BossHandle
}

// NewLaser opens a beam centered under the boss.
func NewLaser(boss *Adversary, h BossHandle, cfg config.ShooterConfig) Laser {
	r := core.NewRect(0, 0, cfg.Laser.Width, cfg.Viewport.Height).WithCenterX(boss.Rect.CenterX())
	return Laser{
		Entity: Entity{Kind: KindLaser, Rect: r, Alive: true},
		Boss:   h,
	}
}

// Follow closes a fraction of the horizontal gap to targetX.
// The step truncates toward zero, so the beam settles a few units short.
func (l *Laser) Follow(targetX int, follow float64) {
	cx := l.Rect.CenterX()
	l.Rect = l.Rect.WithCenterX(cx + int(float64(targetX-cx)*follow))
}

// AttackCycle alternates a wait window and a laser window, both measured
// on the millisecond clock. The wait restarts when the beam closes.
type AttackCycle struct {
	DelayMS    int64
	DurationMS int64

	running  bool
	firing   bool
	lastMS   int64 // when the current wait started
	openedMS int64 // when the current beam opened
}

// NewAttackCycle creates an idle cycle.
func NewAttackCycle(cfg config.LaserConfig) AttackCycle {
	return AttackCycle{
		DelayMS:    int64(cfg.DelayMS),
		DurationMS: int64(cfg.DurationMS),
	}
}

// Start begins the wait window at now.
func (c *AttackCycle) Start(now int64) {
	c.running = true
	c.firing = false
	c.lastMS = now
}

// Stop resets the cycle to idle.
func (c *AttackCycle) Stop() {
	*c = AttackCycle{DelayMS: c.DelayMS, DurationMS: c.DurationMS}
}

// Running reports whether a boss is driving the cycle.
func (c *AttackCycle) Running() bool {
	return c.running
}

// Firing reports whether the beam window is open.
func (c *AttackCycle) Firing() bool {
	return c.firing
}

// Shift moves both windows forward by d ms, so time spent paused counts
// toward neither the wait nor the beam.
func (c *AttackCycle) Shift(d int64) {
	if !c.running || d <= 0 {
		return
	}
	c.lastMS += d
	c.openedMS += d
}

// Update advances the cycle to now and reports transitions.
func (c *AttackCycle) Update(now int64) (open, closed bool) {
	if !c.running {
		return false, false
	}
	if !c.firing && now-c.lastMS > c.DelayMS {
		c.firing = true
		c.openedMS = now
		open = true
	}
	if c.firing && now-c.openedMS > c.DurationMS {
		c.firing = false
		c.lastMS = now
		closed = true
	}
	return open, closed
}
