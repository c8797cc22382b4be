package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// resolveCollisions runs once per tick after motion. The order of the
// passes matters: bullets, pickups, contact, laser.
func (g *Game) resolveCollisions() {
	g.resolveBulletHits()
	g.resolvePickups()
	g.resolveContact()
	g.resolveLaser()
}

// resolveBulletHits consumes each bullet on the first live adversary it
// overlaps, in arena slot order.
func (g *Game) resolveBulletHits() {
	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.Alive {
			continue
		}
		for j := range g.adversaries.slots {
			a := &g.adversaries.slots[j]
			if !a.Alive || !b.Rect.Intersects(a.Rect) {
				continue
			}
			b.Alive = false
			g.hitAdversary(a)
			break
		}
	}
}

func (g *Game) hitAdversary(a *Adversary) {
	cx, cy := a.Rect.Center()
	switch a.Kind {
	case KindEnemy:
		a.Alive = false
		g.score += g.cfg.Enemy.Score
		g.explode(cx, cy, false)
		g.emit(core.EventEnemyDestroyed, cx, cy)
	case KindBoss:
		if !a.TakeHit(g.cfg.Boss.BulletDamage) {
			g.emit(core.EventBossHit, cx, cy)
			return
		}
		a.Alive = false
		g.score += g.cfg.Boss.Score
		g.director.BossDefeated()
		g.attack.Stop()
		g.clearLasers()
		g.explode(cx, cy, true)
		g.emit(core.EventBossDestroyed, cx, cy)
	}
}

// resolvePickups consumes every pickup touching the player.
func (g *Game) resolvePickups() {
	for i := range g.pickups {
		p := &g.pickups[i]
		if !p.Alive || !p.Rect.Intersects(g.player.Rect) {
			continue
		}
		p.Alive = false
		cx, cy := p.Rect.Center()
		switch p.Kind {
		case KindHealItem:
			g.player.Heal(g.cfg.Pickups.HealAmount)
			g.emit(core.EventHeal, cx, cy)
		case KindSpreadItem:
			g.player.GrantSpread(g.cfg.Pickups.SpreadTicks)
			g.emit(core.EventSpread, cx, cy)
		}
	}
}

// resolveContact handles the player ramming adversaries. Touching regular
// enemies are destroyed even during the grace window; a boss survives.
// Damage and explosions need a vulnerable player and apply once per tick
// no matter how many adversaries touch.
func (g *Game) resolveContact() {
	vulnerable := g.player.Vulnerable()
	px, py := g.player.Rect.Center()
	touched := false
	for i := range g.adversaries.slots {
		a := &g.adversaries.slots[i]
		if !a.Alive || !a.Rect.Intersects(g.player.Rect) {
			continue
		}
		touched = true
		if a.Kind == KindEnemy {
			a.Alive = false
			if vulnerable {
				g.explode(px, py, false)
			}
		}
	}
	if touched && vulnerable {
		g.player.Hit(g.cfg.Combat.ContactDamage, g.cfg.Combat.ContactGraceTicks)
		g.emit(core.EventPlayerHit, px, py)
	}
}

// resolveLaser damages the player standing in a beam. The beam stays.
func (g *Game) resolveLaser() {
	if !g.player.Vulnerable() {
		return
	}
	for i := range g.lasers {
		l := &g.lasers[i]
		if l.Alive && l.Rect.Intersects(g.player.Rect) {
			g.player.Hit(g.cfg.Laser.Damage, g.cfg.Laser.GraceTicks)
			px, py := g.player.Rect.Center()
			g.emit(core.EventLaserHit, px, py)
			return
		}
	}
}
