package shooter

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

func TestCadenceIsExactlyPeriodic(t *testing.T) {
	c := Cadence{Interval: 400}
	var fired []int
	for tick := 1; tick <= 2000; tick++ {
		if c.Advance() {
			fired = append(fired, tick)
			c.Reset()
		}
	}
	want := []int{401, 802, 1203, 1604}
	if len(fired) != len(want) {
		t.Fatalf("fired at %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("firing %d at tick %d, want %d", i, fired[i], want[i])
		}
	}
}

func TestChanceIsBernoulli(t *testing.T) {
	const (
		odds  = 1000
		ticks = 400_000
	)
	c := Chance{Odds: odds}
	rng := NewSimpleRNG(7)

	var gaps []int
	last := 0
	for tick := 1; tick <= ticks; tick++ {
		if c.Roll(rng) {
			gaps = append(gaps, tick-last)
			last = tick
		}
	}

	n := len(gaps)
	expected := ticks / odds
	if math.Abs(float64(n-expected)) > 4*math.Sqrt(float64(expected)) {
		t.Fatalf("got %d successes, expected about %d", n, expected)
	}

	sum := 0
	distinct := make(map[int]bool)
	for _, g := range gaps {
		sum += g
		distinct[g] = true
	}
	mean := float64(sum) / float64(n)
	if mean < 800 || mean > 1250 {
		t.Errorf("mean gap = %.1f, want about %d", mean, odds)
	}
	// A geometric distribution spreads gaps widely; a counter would not.
	if len(distinct) < n/2 {
		t.Errorf("only %d distinct gaps out of %d, looks periodic", len(distinct), n)
	}
}

func TestChanceZeroOddsNeverFires(t *testing.T) {
	rng := NewSimpleRNG(1)
	for range 10_000 {
		if (Chance{}).Roll(rng) {
			t.Fatal("zero odds fired")
		}
	}
}

func TestDirectorEnemyCap(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	d := NewDirector(cfg)
	rng := NewSimpleRNG(1)

	// At the cap nothing spawns, however long we wait.
	for range 500 {
		if d.Tick(0, cfg.Enemy.Cap, rng).Enemy {
			t.Fatal("spawned while at cap")
		}
	}
	// Suppressed spawns do not queue: one spawn once room opens.
	if !d.Tick(0, cfg.Enemy.Cap-1, rng).Enemy {
		t.Fatal("expected a spawn once below cap")
	}
	if d.Tick(0, cfg.Enemy.Cap-1, rng).Enemy {
		t.Error("second spawn on the very next tick means spawns queued")
	}
}

func TestDirectorEnemyInterval(t *testing.T) {
	d := NewDirector(config.DefaultShooterConfig())
	rng := NewSimpleRNG(1)
	var ticks []int
	for tick := 1; tick <= 200; tick++ {
		if d.Tick(0, 0, rng).Enemy {
			ticks = append(ticks, tick)
		}
	}
	if len(ticks) != 3 || ticks[0] != 61 || ticks[1] != 122 || ticks[2] != 183 {
		t.Errorf("enemy spawns at %v, want [61 122 183]", ticks)
	}
}

func TestDirectorBossProgression(t *testing.T) {
	d := NewDirector(config.DefaultShooterConfig())
	rng := NewSimpleRNG(1)

	if p := d.Tick(299, 0, rng); p.Boss {
		t.Fatal("boss before 300")
	}
	p := d.Tick(300, 0, rng)
	if !p.Boss || p.BossHP != 80 {
		t.Fatalf("plan = %+v, want boss with 80 hp", p)
	}
	if d.Tick(10_000, 0, rng).Boss {
		t.Fatal("second boss while one is active")
	}

	d.BossDefeated()
	if d.Stage != 2 || d.BossActive {
		t.Fatalf("stage=%d active=%v after defeat", d.Stage, d.BossActive)
	}
	if d.Tick(599, 0, rng).Boss {
		t.Fatal("stage 2 boss before 600")
	}
	p = d.Tick(600, 0, rng)
	if !p.Boss || p.BossHP != 105 {
		t.Errorf("plan = %+v, want boss with 105 hp", p)
	}
}
