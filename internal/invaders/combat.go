package invaders

import "github.com/AlessandroGCodeca/spaceinvadersgame/internal/core"

// resolveCombat advances the flying bullet and resolves at most one hit per
// tick. Enemies are tested before bunkers, both in stored order, and the
// first overlap wins. A bullet that leaves the top of the screen is parked
// immediately and skips the collision scans.
func (g *Game) resolveCombat() {
	if g.bullet.State != BulletFlying {
		return
	}

	g.bullet.Y -= g.cfg.Bullet.Speed
	if g.bullet.Y <= 0 {
		g.bullet.State = BulletReady
		return
	}

	br := g.bullet.Rect()
	for i := range g.enemies {
		if br.Intersects(g.enemyRect(&g.enemies[i])) {
			g.addScore(g.enemies[i].Points)
			g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
			g.recycleBullet()
			return
		}
	}

	for i := range g.bunkers {
		b := &g.bunkers[i]
		if !b.Alive() {
			continue
		}
		if br.Intersects(b.Rect()) {
			b.Health--
			g.recycleBullet()
			return
		}
	}
}

// recycleBullet parks the bullet back at its spawn height, ready to fire.
func (g *Game) recycleBullet() {
	g.bullet.State = BulletReady
	g.bullet.Y = g.cfg.Bullet.StartY
}

// enemyRect returns the shared-size collision box at an enemy's position.
func (g *Game) enemyRect(e *Enemy) core.Rect {
	return core.NewRect(e.X, e.Y, g.enemyW, g.enemyH)
}
