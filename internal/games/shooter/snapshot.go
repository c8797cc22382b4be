package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// PlayerView is a copy of the player's presentation state.
type PlayerView struct {
	Rect         core.Rect
	HP           int
	MaxHP        int
	Invincible   bool
	SpreadActive bool
	SpreadTicks  int
	LowHealth    bool
	Dimmed       bool
}

// BossView is a copy of the live boss, if any.
type BossView struct {
	Rect  core.Rect
	HP    int
	MaxHP int
	Phase BossPhase
}

// ExplosionView is a copy of one explosion and its particles.
type ExplosionView struct {
	X, Y      int
	Boss      bool
	TicksLeft int
	Flash     int
	Debris    []Particle
	Smoke     []Particle
}

// View is a read-only copy of one tick. Nothing in it aliases the live
// round, so renderers on another goroutine can keep it across ticks.
type View struct {
	Tick        int
	Score       int
	Best        int
	Stage       int
	NextBoss    int
	State       string
	Width       int
	Height      int
	BackgroundY int
	LaserOn     bool

	Player     PlayerView
	Boss       *BossView
	Entities   []Entity // adversaries, bullets, pickups and lasers
	Explosions []ExplosionView
}

// View returns a defensive copy of the round.
func (g *Game) View() View {
	v := View{
		Tick:        g.tick,
		Score:       g.score,
		Best:        g.best,
		Stage:       g.director.Stage,
		NextBoss:    g.director.NextBossScore(),
		State:       g.state,
		Width:       g.cfg.Viewport.Width,
		Height:      g.cfg.Viewport.Height,
		BackgroundY: g.backgroundY,
		LaserOn:     len(g.lasers) > 0,
		Player: PlayerView{
			Rect:         g.player.Rect,
			HP:           g.player.HP,
			MaxHP:        g.player.MaxHP,
			Invincible:   !g.player.Vulnerable(),
			SpreadActive: g.player.SpreadActive,
			SpreadTicks:  g.player.SpreadTicksLeft,
			LowHealth:    g.player.LowHealth(),
			Dimmed:       g.player.Dimmed(),
		},
	}

	v.Entities = make([]Entity, 0, len(g.adversaries.slots)+len(g.bullets)+len(g.pickups)+len(g.lasers))
	for i := range g.adversaries.slots {
		a := &g.adversaries.slots[i]
		if !a.Alive {
			continue
		}
		v.Entities = append(v.Entities, a.Entity)
		if a.Kind == KindBoss {
			v.Boss = &BossView{Rect: a.Rect, HP: a.HP, MaxHP: a.MaxHP, Phase: a.Phase}
		}
	}
	for _, b := range g.bullets {
		v.Entities = append(v.Entities, b.Entity)
	}
	for _, p := range g.pickups {
		v.Entities = append(v.Entities, p.Entity)
	}
	for _, l := range g.lasers {
		v.Entities = append(v.Entities, l.Entity)
	}

	v.Explosions = make([]ExplosionView, 0, len(g.explosions))
	for _, e := range g.explosions {
		v.Explosions = append(v.Explosions, ExplosionView{
			X:         e.X,
			Y:         e.Y,
			Boss:      e.Boss,
			TicksLeft: e.TicksLeft,
			Flash:     e.Flash,
			Debris:    append([]Particle(nil), e.Debris...),
			Smoke:     append([]Particle(nil), e.Smoke...),
		})
	}
	return v
}

// Snapshot contains the gameplay state of a round as primitives.
// Cosmetic state (explosion particles) is left out.
type Snapshot struct {
	Tick     uint64
	Score    int
	Stage    int
	State    string
	PlayerX  int
	PlayerY  int
	HP       int
	Invuln   int
	Spread   int
	LaserOn  bool
	RNGState uint64

	// Each adversary is 6 ints: Kind, X, Y, Speed, HP, Direction
	AdversaryData []int
	// Each bullet is 4 ints: X, Y, VX, VY
	BulletData []int
	// Each pickup is 3 ints: Kind, X, Y
	PickupData []int
	// Each laser is 2 ints: X, Width
	LaserData []int
}

// Snapshot returns the current gameplay state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     uint64(g.tick), //#nosec G115 -- tick count is always positive
		Score:    g.score,
		Stage:    g.director.Stage,
		State:    g.state,
		PlayerX:  g.player.Rect.X,
		PlayerY:  g.player.Rect.Y,
		HP:       g.player.HP,
		Invuln:   g.player.InvincibleTicks,
		Spread:   g.player.SpreadTicksLeft,
		LaserOn:  g.attack.Firing(),
		RNGState: g.rng.State(),
	}
	for i := range g.adversaries.slots {
		a := &g.adversaries.slots[i]
		if !a.Alive {
			continue
		}
		s.AdversaryData = append(s.AdversaryData, int(a.Kind), a.Rect.X, a.Rect.Y, a.Speed, a.HP, a.Direction)
	}
	for _, b := range g.bullets {
		s.BulletData = append(s.BulletData, b.Rect.X, b.Rect.Y, b.VX, b.VY)
	}
	for _, p := range g.pickups {
		s.PickupData = append(s.PickupData, int(p.Kind), p.Rect.X, p.Rect.Y)
	}
	for _, l := range g.lasers {
		s.LaserData = append(s.LaserData, l.Rect.X, l.Rect.W)
	}
	return s
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stage)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HP)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Invuln)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Spread)  //#nosec G115 -- hash computation
	if snap.LaserOn {
		h = h*31 + 1
	}
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	for _, data := range [][]int{snap.AdversaryData, snap.BulletData, snap.PickupData, snap.LaserData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	h = h*31 + snap.RNGState

	return h
}
