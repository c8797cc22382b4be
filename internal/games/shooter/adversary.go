package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// BossPhase is the movement phase of a boss.
type BossPhase uint8

const (
	PhaseEntry  BossPhase = iota // descending into view
	PhasePatrol                  // sweeping horizontally
)

// Adversary is a regular enemy or a boss. Both live in one arena and
// are told apart by Kind.
type Adversary struct {
	Entity

	// Enemy
	Speed int

	// Boss
	HP        int
	MaxHP     int
	Direction int
	Phase     BossPhase

	gen uint32
}

// NewEnemy spawns a regular enemy above the viewport with a speed drawn once.
func NewEnemy(cfg config.ShooterConfig, rng *SimpleRNG) Adversary {
	e := cfg.Enemy
	x := rng.Range(0, cfg.Viewport.Width-e.Width)
	y := rng.Range(e.SpawnMinY, e.SpawnMaxY)
	speed := rng.Range(e.MinSpeed, e.MaxSpeed)
	return Adversary{
		Entity: Entity{Kind: KindEnemy, Rect: core.NewRect(x, y, e.Width, e.Height), Alive: true},
		Speed:  speed,
	}
}

// NewBoss spawns a boss horizontally centered with its top at the spawn row.
func NewBoss(cfg config.ShooterConfig, hp int) Adversary {
	b := cfg.Boss
	r := core.NewRect(0, b.SpawnY, b.Width, b.Height).WithCenterX(cfg.Viewport.Width / 2)
	return Adversary{
		Entity:    Entity{Kind: KindBoss, Rect: r, Alive: true},
		HP:        hp,
		MaxHP:     hp,
		Direction: 1,
		Phase:     PhaseEntry,
	}
}

// Move advances the adversary one tick.
func (a *Adversary) Move(cfg config.ShooterConfig) {
	switch a.Kind {
	case KindEnemy:
		a.Rect = a.Rect.Translate(0, a.Speed)
		if a.Rect.Y > cfg.Viewport.Height {
			a.Alive = false
		}
	case KindBoss:
		if a.Rect.Y < cfg.Boss.EntryLine {
			a.Phase = PhaseEntry
			a.Rect = a.Rect.Translate(0, cfg.Boss.EntrySpeed)
			return
		}
		a.Phase = PhasePatrol
		a.Rect = a.Rect.Translate(cfg.Boss.PatrolSpeed*a.Direction, 0)
		if a.Rect.Right() > cfg.Viewport.Width || a.Rect.X < 0 {
			a.Direction = -a.Direction
		}
	}
}

// TakeHit lowers boss hp and reports whether the boss is destroyed.
func (a *Adversary) TakeHit(damage int) bool {
	a.HP = core.Max(0, a.HP-damage)
	return a.HP == 0
}

// arena stores adversaries in stable slots so bosses can be referenced by
// handle. Dead slots are recycled after the tick that killed them.
type arena struct {
	slots []Adversary
	free  []int
}

func (ar *arena) spawn(a Adversary) BossHandle {
	if n := len(ar.free); n > 0 {
		slot := ar.free[n-1]
		ar.free = ar.free[:n-1]
		a.gen = ar.slots[slot].gen + 1
		ar.slots[slot] = a
		return BossHandle{Slot: slot, Gen: a.gen}
	}
	a.gen = 1
	ar.slots = append(ar.slots, a)
	return BossHandle{Slot: len(ar.slots) - 1, Gen: a.gen}
}

// resolve returns the live boss behind h, or nil.
func (ar *arena) resolve(h BossHandle) *Adversary {
	if h.Slot < 0 || h.Slot >= len(ar.slots) {
		return nil
	}
	a := &ar.slots[h.Slot]
	if a.gen != h.Gen || !a.Alive || a.Kind != KindBoss {
		return nil
	}
	return a
}

// sweep frees the slots of adversaries that died this tick.
func (ar *arena) sweep() {
	for i := range ar.slots {
		a := &ar.slots[i]
		if a.Alive || a.Kind == kindFree {
			continue
		}
		a.Kind = kindFree
		ar.free = append(ar.free, i)
	}
}

// countAlive returns the number of live adversaries of kind k.
func (ar *arena) countAlive(k Kind) int {
	n := 0
	for i := range ar.slots {
		if ar.slots[i].Alive && ar.slots[i].Kind == k {
			n++
		}
	}
	return n
}

// kindFree marks a recycled arena slot. It never escapes the arena.
const kindFree Kind = 255
