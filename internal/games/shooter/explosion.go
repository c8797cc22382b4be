package shooter

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

// Particle is one piece of debris or one smoke puff.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Alpha  int
}

// Explosion is purely cosmetic. It never takes part in collision.
type Explosion struct {
	X, Y      int
	Boss      bool
	TicksLeft int
	Flash     int
	FlashMax  int
	Debris    []Particle
	Smoke     []Particle
}

// NewExplosion builds a small or boss explosion centered at (x, y).
// Particles draw from the cosmetic RNG so they never shift gameplay rolls.
func NewExplosion(x, y int, boss bool, cfg config.ExplosionConfig, rng *SimpleRNG) Explosion {
	e := Explosion{X: x, Y: y, Boss: boss, TicksLeft: cfg.Ticks}

	count, speedMin, speedMax, sizeMin, sizeMax := cfg.Debris, 2.0, 5.0, 2, 3
	if boss {
		e.TicksLeft = cfg.BossTicks
		e.FlashMax = cfg.BossFlashRadius
		count, speedMin, speedMax, sizeMin, sizeMax = cfg.BossDebris, 4.0, 12.0, 3, 6
	}

	e.Debris = make([]Particle, 0, count)
	for range count {
		angle := rng.Uniform(0, 2*math.Pi)
		speed := rng.Uniform(speedMin, speedMax)
		e.Debris = append(e.Debris, Particle{
			X:     float64(x),
			Y:     float64(y),
			VX:    speed * math.Cos(angle),
			VY:    speed * math.Sin(angle),
			Size:  float64(rng.Range(sizeMin, sizeMax)),
			Alpha: 255,
		})
	}

	if boss {
		e.Smoke = make([]Particle, 0, cfg.BossSmoke)
		for range cfg.BossSmoke {
			e.Smoke = append(e.Smoke, Particle{
				X:     float64(x + rng.Range(-20, 20)),
				Y:     float64(y + rng.Range(-20, 20)),
				Size:  float64(rng.Range(20, 60)),
				Alpha: 200,
			})
		}
	}
	return e
}

// Tick advances every particle and counts the explosion down.
func (e *Explosion) Tick() {
	e.TicksLeft--
	if e.Flash < e.FlashMax {
		e.Flash += 6
	}
	for i := range e.Debris {
		d := &e.Debris[i]
		d.X += d.VX
		d.Y += d.VY
		d.Alpha -= 8
	}
	for i := range e.Smoke {
		s := &e.Smoke[i]
		s.Y -= 0.3
		s.Alpha -= 2
		s.Size += 0.7
	}
}

// Done reports whether the explosion should be removed.
func (e *Explosion) Done() bool {
	return e.TicksLeft <= 0
}
