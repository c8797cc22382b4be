package shooter

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// quietConfig disables every spawn source so a test controls the field.
func quietConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Enemy.InitialWave = 0
	cfg.Enemy.SpawnInterval = 1 << 30
	cfg.Pickups.SpreadInterval = 1 << 30
	cfg.Pickups.HealOdds = 0
	return cfg
}

func newTestGame(t *testing.T, cfg config.ShooterConfig) (*Game, *ManualClock) {
	t.Helper()
	clock := &ManualClock{}
	g := New(WithConfig(cfg), WithClock(clock))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g, clock
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// placeEnemy drops a motionless enemy at r.
func placeEnemy(g *Game, r core.Rect) BossHandle {
	return g.adversaries.spawn(Adversary{Entity: Entity{Kind: KindEnemy, Rect: r, Alive: true}})
}

// placeBoss installs a patrolling boss as if the director had spawned it.
func placeBoss(g *Game, r core.Rect, hp int) BossHandle {
	h := g.adversaries.spawn(Adversary{
		Entity:    Entity{Kind: KindBoss, Rect: r, Alive: true},
		HP:        hp,
		MaxHP:     hp,
		Direction: 1,
		Phase:     PhasePatrol,
	})
	g.boss = h
	g.director.BossActive = true
	g.attack.Start(g.clock.NowMS())
	return h
}

func placePickup(g *Game, kind Kind, r core.Rect, speed int) {
	g.pickups = append(g.pickups, Pickup{Entity: Entity{Kind: kind, Rect: r, Alive: true}, Speed: speed})
}

func countKind(v View, k Kind) int {
	n := 0
	for _, e := range v.Entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

func hasEvent(res core.StepResult, k core.EventKind) bool {
	for _, e := range res.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}
