package shooter

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestNewEnemyRanges(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	rng := NewSimpleRNG(99)
	for range 1000 {
		e := NewEnemy(cfg, rng)
		if e.Rect.X < 0 || e.Rect.Right() > 800 {
			t.Fatalf("x out of range: %+v", e.Rect)
		}
		if e.Rect.Y < -150 || e.Rect.Y > -50 {
			t.Fatalf("y out of range: %d", e.Rect.Y)
		}
		if e.Speed < 2 || e.Speed > 5 {
			t.Fatalf("speed out of range: %d", e.Speed)
		}
	}
}

func TestEnemyFallsAndDespawns(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	e := Adversary{Entity: Entity{Kind: KindEnemy, Rect: core.NewRect(10, 595, 70, 70), Alive: true}, Speed: 5}
	e.Move(cfg)
	if e.Rect.Y != 600 || !e.Alive {
		t.Fatalf("y=%d alive=%v, want 600 alive (top == H is still on screen)", e.Rect.Y, e.Alive)
	}
	e.Move(cfg)
	if e.Alive {
		t.Error("enemy below the viewport should be retired")
	}
}

func TestBossEntryThenPatrol(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	b := NewBoss(cfg, 80)
	if b.Rect.CenterX() != 400 || b.Rect.Y != -150 {
		t.Fatalf("boss spawned at %+v", b.Rect)
	}

	x := b.Rect.X
	for b.Rect.Y < cfg.Boss.EntryLine {
		b.Move(cfg)
		if b.Rect.X != x {
			t.Fatal("boss moved sideways during entry")
		}
	}
	if b.Rect.Y != 20 {
		t.Fatalf("entry ended at y=%d, want 20", b.Rect.Y)
	}

	y := b.Rect.Y
	for range 500 {
		b.Move(cfg)
		if b.Rect.Y != y {
			t.Fatal("boss moved vertically after entry")
		}
		if b.Phase != PhasePatrol {
			t.Fatal("boss left patrol phase")
		}
	}
}

func TestBossBouncesAtWalls(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	b := NewBoss(cfg, 80)
	b.Rect.Y = 20
	b.Rect.X = 598 // right edge at 798

	b.Move(cfg) // right edge 801 > 800
	if b.Direction != -1 {
		t.Fatalf("direction = %d after crossing right wall, want -1", b.Direction)
	}
	b.Move(cfg)
	if b.Rect.X != 598 {
		t.Errorf("x = %d, want 598 after reversing", b.Rect.X)
	}

	b.Rect.X = 2
	b.Move(cfg) // x = -1 < 0
	if b.Direction != 1 {
		t.Errorf("direction = %d after crossing left wall, want 1", b.Direction)
	}
}

func TestBossHPNeverIncreases(t *testing.T) {
	b := NewBoss(config.DefaultShooterConfig(), 12)
	prev := b.HP
	for i := range 5 {
		dead := b.TakeHit(5)
		if b.HP > prev {
			t.Fatalf("hp went up: %d -> %d", prev, b.HP)
		}
		prev = b.HP
		if dead != (i >= 2) {
			t.Errorf("hit %d: dead=%v hp=%d", i+1, dead, b.HP)
		}
	}
	if b.HP != 0 {
		t.Errorf("hp = %d, want floor at 0", b.HP)
	}
}

func TestArenaHandles(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	var ar arena

	h := ar.spawn(NewBoss(cfg, 80))
	if ar.resolve(h) == nil {
		t.Fatal("fresh handle should resolve")
	}
	if ar.resolve(NoBoss) != nil {
		t.Fatal("NoBoss resolved")
	}

	ar.slots[h.Slot].Alive = false
	if ar.resolve(h) != nil {
		t.Fatal("handle to a dead boss resolved")
	}

	ar.sweep()
	h2 := ar.spawn(NewEnemy(cfg, NewSimpleRNG(1)))
	if h2.Slot != h.Slot {
		t.Fatalf("slot %d not reused, got %d", h.Slot, h2.Slot)
	}
	if ar.resolve(h) != nil {
		t.Error("stale handle resolved to the slot's new occupant")
	}

	h3 := ar.spawn(NewBoss(cfg, 80))
	if h3.Gen == h.Gen && h3.Slot == h.Slot {
		t.Error("handles collided")
	}
	if ar.countAlive(KindEnemy) != 1 || ar.countAlive(KindBoss) != 1 {
		t.Errorf("counts enemy=%d boss=%d", ar.countAlive(KindEnemy), ar.countAlive(KindBoss))
	}
}

func TestLaserFollowTruncates(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	boss := NewBoss(cfg, 80)
	l := NewLaser(&boss, BossHandle{}, cfg)
	if l.Rect.CenterX() != 400 || l.Rect.Y != 0 || l.Rect.H != 600 {
		t.Fatalf("laser rect %+v", l.Rect)
	}

	tests := []struct {
		from, target, want int
	}{
		{400, 500, 415}, // +15
		{400, 406, 400}, // 0.9 truncates to 0
		{400, 300, 385}, // -15
		{400, 394, 400}, // -0.9 truncates toward zero
		{400, 420, 403}, // 3
	}
	for _, tt := range tests {
		l.Rect = l.Rect.WithCenterX(tt.from)
		l.Follow(tt.target, 0.15)
		if got := l.Rect.CenterX(); got != tt.want {
			t.Errorf("follow %d -> %d: got %d, want %d", tt.from, tt.target, got, tt.want)
		}
	}
}

func TestAttackCycleShift(t *testing.T) {
	c := NewAttackCycle(config.DefaultShooterConfig().Laser)
	c.Shift(1000)
	if open, _ := c.Update(10_000); open {
		t.Fatal("shifting an idle cycle started it")
	}

	c.Start(0)
	c.Shift(3000)
	if open, _ := c.Update(8000); open {
		t.Fatal("opened before the shifted delay")
	}
	if open, _ := c.Update(8001); !open {
		t.Fatal("did not open after the shifted delay")
	}
	c.Shift(2000)
	if _, closed := c.Update(11_501); closed {
		t.Fatal("closed before the shifted duration")
	}
	if _, closed := c.Update(11_502); !closed {
		t.Fatal("did not close after the shifted duration")
	}
}

func TestAttackCycleTiming(t *testing.T) {
	c := NewAttackCycle(config.DefaultShooterConfig().Laser)

	if open, _ := c.Update(1_000_000); open {
		t.Fatal("idle cycle opened")
	}

	c.Start(1000)
	if open, _ := c.Update(6000); open {
		t.Fatal("opened at exactly the delay")
	}
	if open, _ := c.Update(6001); !open || !c.Firing() {
		t.Fatal("did not open after the delay")
	}
	if _, closed := c.Update(7501); closed {
		t.Fatal("closed at exactly the duration")
	}
	if _, closed := c.Update(7502); !closed || c.Firing() {
		t.Fatal("did not close after the duration")
	}
	// The wait restarts from the close instant.
	if open, _ := c.Update(12502); open {
		t.Fatal("reopened early")
	}
	if open, _ := c.Update(12503); !open {
		t.Fatal("did not reopen")
	}

	c.Stop()
	if c.Running() || c.Firing() {
		t.Error("Stop should reset the cycle")
	}
}
