// Package invaders implements the Space Invaders simulation: a fixed-tick
// deterministic state machine covering the player cannon, the single player
// bullet, the descending enemy formation and the destructible bunkers.
//
// The package knows nothing about terminals, timing or rendering. The
// platform layer calls Step once per tick with the sampled input frame and
// rasterizes the resulting Frame.
package invaders

import (
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/config"
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/core"
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/sprites"
)

// SpriteSizer reports pixel dimensions for a named sprite. The sprite atlas
// implements it; the simulation queries it once at construction to size the
// collision boxes.
type SpriteSizer interface {
	SpriteSize(name string) (w, h int)
}

// Game holds the complete simulation state. All fields are plain values so
// the state can be captured and restored through a Snapshot.
type Game struct {
	cfg config.Config

	// Round state
	tick  uint64
	phase Phase

	// Entities
	player  Player
	bullet  Bullet
	enemies []Enemy
	bunkers []Bunker

	// Scoring
	score   int
	hiScore int
	lives   int

	// Collision box sizes resolved from sprites at construction. Every
	// enemy tier shares the crab-sized box.
	enemyW, enemyH   int
	bunkerW, bunkerH int
}

// New builds a game from the given config and sprite dimensions. A nil sizer
// falls back to the built-in sprite set.
func New(cfg config.Config, sizes SpriteSizer) *Game {
	cfg.Normalize()
	if sizes == nil {
		sizes = sprites.NewAtlas(config.AssetsConfig{Scale: cfg.Assets.Scale}, nil)
	}

	g := &Game{cfg: cfg}
	g.player.W, g.player.H = sizes.SpriteSize(sprites.NamePlayer)
	g.bullet.W, g.bullet.H = sizes.SpriteSize(sprites.NameBullet)
	g.enemyW, g.enemyH = sizes.SpriteSize(sprites.NameCrab)
	g.bunkerW, g.bunkerH = sizes.SpriteSize(sprites.NameBunker)

	g.Reset()
	return g
}

// Reset returns the game to its initial state: fresh formation, full
// bunkers, zero score, and the session hi-score cleared.
func (g *Game) Reset() {
	g.tick = 0
	g.phase = PhasePlaying
	g.score = 0
	g.hiScore = 0
	g.lives = g.cfg.Player.Lives
	g.initRound()
}

// initRound places the player, parks the bullet, and rebuilds the enemy grid
// and the bunker row. Score, lives and phase are the caller's business.
func (g *Game) initRound() {
	g.player.X = g.cfg.Player.StartX
	g.player.Y = g.cfg.Player.StartY
	g.player.VX = 0

	g.bullet.State = BulletReady
	g.bullet.X = 0
	g.bullet.Y = g.cfg.Bullet.StartY

	g.spawnGrid()
	g.spawnBunkers()
}

// Step advances the simulation by one tick: clamp state, decode intents,
// then run movement, formation and combat in a fixed order so identical
// input sequences produce identical states.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.validate()
	g.applyIntents(in)

	if g.phase == PhasePlaying {
		g.stepPlayer()
		g.advanceFormation()
		g.resolveCombat()
		g.respawnIfCleared()
	}

	return core.StepResult{State: g.State()}
}

// applyIntents decodes the sampled input frame. Movement assigns the
// persistent velocity intent; with opposite directions in one frame the last
// assignment below wins. Fire and reset arrive edge-triggered from the
// platform and are additionally gated here by bullet state and phase.
func (g *Game) applyIntents(in core.InputFrame) {
	if in.Has(core.ActionMoveLeft) {
		g.player.VX = -g.cfg.Player.Speed
	}
	if in.Has(core.ActionMoveRight) {
		g.player.VX = g.cfg.Player.Speed
	}
	if in.Has(core.ActionStop) {
		g.player.VX = 0
	}
	if in.Has(core.ActionFire) {
		g.fire()
	}
	if in.Has(core.ActionReset) {
		g.resetRound()
	}
}

// stepPlayer applies the velocity intent and keeps the cannon on screen.
func (g *Game) stepPlayer() {
	g.player.X = core.Clamp(g.player.X+g.player.VX, 0, g.cfg.Screen.Width-g.player.W)
}

// fire launches the bullet from the player's muzzle. A bullet already in
// flight or a finished round makes this a silent no-op.
func (g *Game) fire() {
	if g.phase != PhasePlaying || g.bullet.State != BulletReady {
		return
	}
	g.bullet.X = g.player.X + g.player.W/2 - g.bullet.W/2
	g.bullet.Y = g.player.Y
	g.bullet.State = BulletFlying
}

// resetRound starts a new round after a game over. Score and lives return to
// their initial values; the session hi-score survives. Calling it while the
// round is still in progress is a silent no-op.
func (g *Game) resetRound() {
	if g.phase != PhaseGameOver {
		return
	}
	g.phase = PhasePlaying
	g.score = 0
	g.lives = g.cfg.Player.Lives
	g.initRound()
}

// addScore credits points, keeping score and hi-score inside their bounds.
func (g *Game) addScore(points int) {
	g.score = core.Clamp(g.score+points, g.cfg.Score.Min, g.cfg.Score.Max)
	if g.score > g.hiScore {
		g.hiScore = g.score
	}
}

// validate clamps every externally visible quantity to its declared bound.
// It runs once at the top of each tick, independent of which mutation
// produced the value.
func (g *Game) validate() {
	g.score = core.Clamp(g.score, g.cfg.Score.Min, g.cfg.Score.Max)
	g.lives = core.Clamp(g.lives, 0, g.cfg.Player.MaxLives)
	g.player.X = core.Clamp(g.player.X, 0, g.cfg.Screen.Width-g.player.W)
	g.player.Y = core.Clamp(g.player.Y, 0, g.cfg.Screen.Height-g.player.H)
	g.bullet.X = core.Clamp(g.bullet.X, 0, g.cfg.Screen.Width)
	g.bullet.Y = core.Clamp(g.bullet.Y, -g.bullet.H, g.cfg.Screen.Height)
	if g.hiScore < g.score {
		g.hiScore = g.score
	}
}

// State reports the HUD-visible portion of the game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		HiScore:  g.hiScore,
		Lives:    g.lives,
		GameOver: g.phase == PhaseGameOver,
	}
}
