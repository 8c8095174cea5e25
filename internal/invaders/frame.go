package invaders

import (
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/core"
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/sprites"
)

// Frame emits the draw list for the current state in playfield pixels.
// Sprites are listed back to front: bunkers, bullet, enemies, player. After
// a game over only the HUD remains; the platform draws the banner itself.
func (g *Game) Frame() core.Frame {
	f := core.Frame{
		W:        g.cfg.Screen.Width,
		H:        g.cfg.Screen.Height,
		HUD:      core.HUD{Score: g.score, HiScore: g.hiScore, Lives: g.lives},
		GameOver: g.phase == PhaseGameOver,
	}
	if f.GameOver {
		return f
	}

	f.Sprites = make([]core.SpriteCmd, 0, len(g.enemies)+len(g.bunkers)+2)
	for i := range g.bunkers {
		if g.bunkers[i].Alive() {
			f.Sprites = append(f.Sprites, core.SpriteCmd{
				Name: sprites.NameBunker,
				X:    g.bunkers[i].X,
				Y:    g.bunkers[i].Y,
			})
		}
	}
	if g.bullet.State == BulletFlying {
		f.Sprites = append(f.Sprites, core.SpriteCmd{
			Name: sprites.NameBullet,
			X:    g.bullet.X,
			Y:    g.bullet.Y,
		})
	}
	for i := range g.enemies {
		f.Sprites = append(f.Sprites, core.SpriteCmd{
			Name: g.enemies[i].Tier.SpriteName(),
			X:    g.enemies[i].X,
			Y:    g.enemies[i].Y,
		})
	}
	f.Sprites = append(f.Sprites, core.SpriteCmd{
		Name: sprites.NamePlayer,
		X:    g.player.X,
		Y:    g.player.Y,
	})
	return f
}
