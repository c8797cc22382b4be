package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Bullet is a player projectile with constant velocity.
type Bullet struct {
	Entity
	VX, VY int
}

// NewBullet creates a bullet whose bottom-center sits at (x, y).
func NewBullet(x, y, vx int, cfg config.BulletConfig) Bullet {
	r := core.NewRect(0, y-cfg.Height, cfg.Width, cfg.Height).WithCenterX(x)
	return Bullet{
		Entity: Entity{Kind: KindBullet, Rect: r, Alive: true},
		VX:     vx,
		VY:     -cfg.Speed,
	}
}

// Move advances the bullet and retires it once it leaves the viewport
// through the top or either side.
func (b *Bullet) Move(w int) {
	b.Rect = b.Rect.Translate(b.VX, b.VY)
	if b.Rect.Bottom() < 0 || b.Rect.Right() < 0 || b.Rect.X > w {
		b.Alive = false
	}
}

// Pickup is a falling spread item or heal item.
type Pickup struct {
	Entity
	Speed int
}

// NewSpreadItem drops a spread power-up at a random column above the screen.
func NewSpreadItem(cfg config.ShooterConfig, rng *SimpleRNG) Pickup {
	p := cfg.Pickups
	x := rng.Range(0, cfg.Viewport.Width-p.SpreadWidth)
	y := rng.Range(p.SpreadMinY, p.SpreadMaxY)
	return Pickup{
		Entity: Entity{Kind: KindSpreadItem, Rect: core.NewRect(x, y, p.SpreadWidth, p.SpreadHeight), Alive: true},
		Speed:  p.FallSpeed,
	}
}

// NewHealItem drops a heal pickup at a random column just above the screen.
func NewHealItem(cfg config.ShooterConfig, rng *SimpleRNG) Pickup {
	p := cfg.Pickups
	x := rng.Range(0, cfg.Viewport.Width-p.HealWidth)
	return Pickup{
		Entity: Entity{Kind: KindHealItem, Rect: core.NewRect(x, p.HealSpawnY, p.HealWidth, p.HealHeight), Alive: true},
		Speed:  p.FallSpeed,
	}
}

// Move lets the pickup fall and retires it below the viewport.
func (p *Pickup) Move(h int) {
	p.Rect = p.Rect.Translate(0, p.Speed)
	if p.Rect.Y > h {
		p.Alive = false
	}
}
