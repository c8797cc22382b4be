package shooter

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

func TestNewPlayerPlacement(t *testing.T) {
	p := NewPlayer(config.DefaultShooterConfig())
	if p.Rect.CenterX() != 400 {
		t.Errorf("centerx = %d, want 400", p.Rect.CenterX())
	}
	if p.Rect.Bottom() != 590 {
		t.Errorf("bottom = %d, want 590", p.Rect.Bottom())
	}
	if p.HP != 100 || p.MaxHP != 100 {
		t.Errorf("hp = %d/%d, want 100/100", p.HP, p.MaxHP)
	}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name   string
		dirs   Directions
		dx, dy int
	}{
		{"idle", Directions{}, 0, 0},
		{"left", Directions{Left: true}, -6, 0},
		{"right", Directions{Right: true}, 6, 0},
		{"up", Directions{Up: true}, 0, -6},
		{"diagonal is not normalized", Directions{Up: true, Right: true}, 6, -6},
		{"opposites cancel", Directions{Left: true, Right: true}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(config.DefaultShooterConfig())
			x, y := p.Rect.X, p.Rect.Y
			p.ApplyInput(tt.dirs)
			if p.Rect.X-x != tt.dx || p.Rect.Y-y != tt.dy {
				t.Errorf("moved (%d,%d), want (%d,%d)", p.Rect.X-x, p.Rect.Y-y, tt.dx, tt.dy)
			}
		})
	}
}

func TestPlayerStaysInViewport(t *testing.T) {
	p := NewPlayer(config.DefaultShooterConfig())
	for range 200 {
		p.ApplyInput(Directions{Left: true, Down: true})
	}
	if p.Rect.X != 0 || p.Rect.Bottom() != 600 {
		t.Errorf("rect = %+v, want pinned to bottom-left", p.Rect)
	}
	for range 200 {
		p.ApplyInput(Directions{Right: true, Up: true})
	}
	if p.Rect.Right() != 800 || p.Rect.Y != 0 {
		t.Errorf("rect = %+v, want pinned to top-right", p.Rect)
	}
}

func TestPlayerTimers(t *testing.T) {
	p := NewPlayer(config.DefaultShooterConfig())
	p.GrantSpread(2)
	p.Hit(10, 1)

	p.Tick()
	if !p.SpreadActive || p.SpreadTicksLeft != 1 {
		t.Errorf("after 1 tick: spread=%v left=%d", p.SpreadActive, p.SpreadTicksLeft)
	}
	if p.InvincibleTicks != 0 || !p.Vulnerable() {
		t.Errorf("invincibility should have expired, got %d", p.InvincibleTicks)
	}

	p.Tick()
	if p.SpreadActive || p.SpreadTicksLeft != 0 {
		t.Errorf("spread should be over: active=%v left=%d", p.SpreadActive, p.SpreadTicksLeft)
	}

	p.Tick()
	if p.InvincibleTicks != 0 {
		t.Errorf("invincibility went below zero: %d", p.InvincibleTicks)
	}
}

func TestGrantSpreadResets(t *testing.T) {
	p := NewPlayer(config.DefaultShooterConfig())
	p.GrantSpread(300)
	for range 100 {
		p.Tick()
	}
	p.GrantSpread(300)
	if p.SpreadTicksLeft != 300 {
		t.Errorf("spread left = %d, want 300 (reset, not added)", p.SpreadTicksLeft)
	}
}

func TestShoot(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	p := NewPlayer(cfg)

	single := p.Shoot(cfg.Bullet)
	if len(single) != 1 {
		t.Fatalf("got %d bullets, want 1", len(single))
	}
	b := single[0]
	if b.VX != 0 || b.VY != -10 {
		t.Errorf("velocity = (%d,%d), want (0,-10)", b.VX, b.VY)
	}
	if b.Rect.CenterX() != p.Rect.CenterX() || b.Rect.Bottom() != p.Rect.Y {
		t.Errorf("bullet %+v not at ship top-center", b.Rect)
	}

	p.GrantSpread(10)
	fan := p.Shoot(cfg.Bullet)
	if len(fan) != 3 {
		t.Fatalf("got %d bullets, want 3", len(fan))
	}
	want := []int{0, -3, 3}
	for i, b := range fan {
		if b.VX != want[i] || b.VY != -10 {
			t.Errorf("bullet %d velocity = (%d,%d), want (%d,-10)", i, b.VX, b.VY, want[i])
		}
	}
}

func TestHealClamps(t *testing.T) {
	p := NewPlayer(config.DefaultShooterConfig())
	p.HP = 85
	p.Heal(30)
	if p.HP != 100 {
		t.Errorf("hp = %d, want 100", p.HP)
	}
	p.HP = 40
	p.Heal(30)
	if p.HP != 70 {
		t.Errorf("hp = %d, want 70", p.HP)
	}
}

func TestLowHealthBlink(t *testing.T) {
	p := NewPlayer(config.DefaultShooterConfig())
	if p.LowHealth() || p.Dimmed() {
		t.Fatal("full health ship should not warn")
	}

	p.HP = 30
	if !p.LowHealth() {
		t.Fatal("30/100 should be low health")
	}
	dim, bright := 0, 0
	for range 40 {
		p.Tick()
		if p.Dimmed() {
			dim++
		} else {
			bright++
		}
	}
	if dim != 20 || bright != 20 {
		t.Errorf("slow blink dim=%d bright=%d, want 20/20", dim, bright)
	}
}
