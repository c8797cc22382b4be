package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Directions holds the direction keys that are down this tick.
type Directions struct {
	Up, Down, Left, Right bool
}

// DirectionsFrom extracts the held directions from an input frame.
func DirectionsFrom(in core.InputFrame) Directions {
	return Directions{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}
}

// Player is the ship controlled by the user. Exactly one per round.
type Player struct {
	Rect  core.Rect
	HP    int
	MaxHP int
	Speed int

	InvincibleTicks int
	SpreadActive    bool
	SpreadTicksLeft int

	lowHPRatio float64
	blinkTimer int
	boundsW    int
	boundsH    int
}

// NewPlayer places a ship horizontally centered near the bottom edge.
func NewPlayer(cfg config.ShooterConfig) *Player {
	w, h := cfg.Viewport.Width, cfg.Viewport.Height
	r := core.NewRect(0, 0, cfg.Player.Width, cfg.Player.Height).WithCenterX(w / 2)
	r.Y = h - cfg.Player.BottomMargin - r.H
	return &Player{
		Rect:       r.ClampInto(w, h),
		HP:         cfg.Player.MaxHP,
		MaxHP:      cfg.Player.MaxHP,
		Speed:      cfg.Player.Speed,
		lowHPRatio: cfg.Player.LowHPRatio,
		boundsW:    w,
		boundsH:    h,
	}
}

// ApplyInput moves the ship one step per held direction. Axes are
// independent, so diagonals are faster than straight moves.
func (p *Player) ApplyInput(d Directions) {
	dx, dy := 0, 0
	if d.Left {
		dx -= p.Speed
	}
	if d.Right {
		dx += p.Speed
	}
	if d.Up {
		dy -= p.Speed
	}
	if d.Down {
		dy += p.Speed
	}
	p.Rect = p.Rect.Translate(dx, dy).ClampInto(p.boundsW, p.boundsH)
}

// Tick counts down the spread buff and the invincibility window.
func (p *Player) Tick() {
	if p.SpreadActive {
		p.SpreadTicksLeft--
		if p.SpreadTicksLeft <= 0 {
			p.SpreadTicksLeft = 0
			p.SpreadActive = false
		}
	}
	if p.InvincibleTicks > 0 {
		p.InvincibleTicks--
	}
	if p.LowHealth() {
		p.blinkTimer++
	} else {
		p.blinkTimer = 0
	}
}

// Shoot returns the bullets for one fire press: one straight shot, or a
// three-way fan while spread is active.
func (p *Player) Shoot(cfg config.BulletConfig) []Bullet {
	cx, top := p.Rect.CenterX(), p.Rect.Y
	if !p.SpreadActive {
		return []Bullet{NewBullet(cx, top, 0, cfg)}
	}
	return []Bullet{
		NewBullet(cx, top, 0, cfg),
		NewBullet(cx, top, -cfg.SpreadVX, cfg),
		NewBullet(cx, top, cfg.SpreadVX, cfg),
	}
}

// Heal restores hp without exceeding MaxHP.
func (p *Player) Heal(n int) {
	p.HP = core.Min(p.MaxHP, p.HP+n)
}

// GrantSpread starts (or restarts) the spread buff.
func (p *Player) GrantSpread(ticks int) {
	if ticks <= 0 {
		return
	}
	p.SpreadActive = true
	p.SpreadTicksLeft = ticks
}

// Hit applies damage and opens a grace window. Callers check
// Vulnerable first; hp is clamped by the round after resolution.
func (p *Player) Hit(damage, grace int) {
	p.HP -= damage
	p.InvincibleTicks = grace
}

// Vulnerable reports whether contact damage applies this tick.
func (p *Player) Vulnerable() bool {
	return p.InvincibleTicks == 0
}

// ClampHP keeps hp within [0, MaxHP].
func (p *Player) ClampHP() {
	p.HP = core.Clamp(p.HP, 0, p.MaxHP)
}

// LowHealth reports the warning threshold used by hosts.
func (p *Player) LowHealth() bool {
	return float64(p.HP) <= float64(p.MaxHP)*p.lowHPRatio
}

// Dimmed reports whether the ship should be drawn faded this tick:
// a fast blink while invincible, a slow one while low on health.
func (p *Player) Dimmed() bool {
	if p.InvincibleTicks > 0 {
		return p.InvincibleTicks%8 < 4
	}
	if p.LowHealth() {
		return p.blinkTimer%20 < 10
	}
	return false
}
