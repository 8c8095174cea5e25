package invaders

import (
	"testing"

	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/config"
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/core"
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/sprites"
)

func newTestGame() *Game {
	return New(config.Default(), nil)
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestDeterminism(t *testing.T) {
	// Two games fed the same scripted input must stay identical
	g1 := newTestGame()
	g2 := newTestGame()

	for i := 0; i < 600; i++ {
		in := core.NewInputFrame()
		switch i {
		case 5:
			in.Set(core.ActionMoveRight)
		case 10, 90, 200, 340:
			in.Set(core.ActionFire)
		case 60:
			in.Set(core.ActionMoveLeft)
		case 150:
			in.Set(core.ActionStop)
		}
		g1.Step(in)
		g2.Step(in)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Snapshot hash mismatch: %d vs %d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Score mismatch: %d vs %d", snap1.Score, snap2.Score)
	}
	if snap1.PlayerX != snap2.PlayerX {
		t.Errorf("Player position mismatch: %d vs %d", snap1.PlayerX, snap2.PlayerX)
	}
	if snap1.EnemyCount != snap2.EnemyCount {
		t.Errorf("Enemy count mismatch: %d vs %d", snap1.EnemyCount, snap2.EnemyCount)
	}
}

func TestBuiltinCollisionBoxes(t *testing.T) {
	g := newTestGame()

	if g.player.W != 39 || g.player.H != 24 {
		t.Errorf("Player box = %dx%d, want 39x24", g.player.W, g.player.H)
	}
	// Every tier shares the crab box
	if g.enemyW != 33 || g.enemyH != 24 {
		t.Errorf("Enemy box = %dx%d, want 33x24", g.enemyW, g.enemyH)
	}
	if g.bunkerW != 60 || g.bunkerH != 48 {
		t.Errorf("Bunker box = %dx%d, want 60x48", g.bunkerW, g.bunkerH)
	}
	if g.bullet.W != 3 || g.bullet.H != 12 {
		t.Errorf("Bullet box = %dx%d, want 3x12", g.bullet.W, g.bullet.H)
	}
}

func TestPlayerMovesAndClamps(t *testing.T) {
	g := newTestGame()
	startX := g.player.X

	g.Step(frame(core.ActionMoveRight))
	if g.player.X != startX+g.cfg.Player.Speed {
		t.Errorf("Player X = %d after one right step, want %d", g.player.X, startX+g.cfg.Player.Speed)
	}

	// Velocity intent persists without further input
	g.Step(frame())
	if g.player.X != startX+2*g.cfg.Player.Speed {
		t.Errorf("Player X = %d, velocity intent should persist", g.player.X)
	}

	g.Step(frame(core.ActionMoveLeft))
	for i := 0; i < 300; i++ {
		g.Step(frame())
	}
	if g.player.X != 0 {
		t.Errorf("Player X = %d, want pinned to left wall", g.player.X)
	}

	g.Step(frame(core.ActionMoveRight))
	for i := 0; i < 400; i++ {
		g.Step(frame())
	}
	if g.player.X != g.cfg.Screen.Width-g.player.W {
		t.Errorf("Player X = %d, want pinned to right wall at %d",
			g.player.X, g.cfg.Screen.Width-g.player.W)
	}
}

func TestStopIntentZeroesVelocity(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionMoveRight))
	g.Step(frame(core.ActionStop))

	x := g.player.X
	for i := 0; i < 10; i++ {
		g.Step(frame())
	}
	if g.player.X != x {
		t.Errorf("Player drifted from %d to %d after stop", x, g.player.X)
	}
}

func TestOppositeIntentsSameFrame(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionMoveLeft, core.ActionMoveRight))
	if g.player.VX != g.cfg.Player.Speed {
		t.Errorf("VX = %d with both directions held, want %d", g.player.VX, g.cfg.Player.Speed)
	}
}

func TestFirePositionsBullet(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionFire))

	if g.bullet.State != BulletFlying {
		t.Fatalf("Bullet state = %v after fire, want flying", g.bullet.State)
	}
	wantX := g.cfg.Player.StartX + g.player.W/2 - g.bullet.W/2
	if g.bullet.X != wantX {
		t.Errorf("Bullet X = %d, want centered at %d", g.bullet.X, wantX)
	}
	// The firing tick already advances the bullet once
	wantY := g.cfg.Player.StartY - g.cfg.Bullet.Speed
	if g.bullet.Y != wantY {
		t.Errorf("Bullet Y = %d, want %d", g.bullet.Y, wantY)
	}
}

func TestFireWhileFlyingIsNoOp(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionFire))
	firstX := g.bullet.X

	// Drift the cannon away, then mash fire again mid-flight
	g.Step(frame(core.ActionMoveRight))
	for i := 0; i < 5; i++ {
		g.Step(frame())
	}
	g.Step(frame(core.ActionFire, core.ActionStop))

	if g.bullet.X != firstX {
		t.Errorf("Mid-flight fire moved the bullet from %d to %d", firstX, g.bullet.X)
	}
	if g.bullet.State != BulletFlying {
		t.Errorf("Bullet state = %v, want still flying", g.bullet.State)
	}
}

func TestFireAfterGameOverIsNoOp(t *testing.T) {
	g := newTestGame()
	g.phase = PhaseGameOver
	g.fire()
	if g.bullet.State != BulletReady {
		t.Error("Fire should be ignored after game over")
	}
}

func TestResetRoundOnlyFromGameOver(t *testing.T) {
	g := newTestGame()
	g.score = 500
	g.lives = 1

	g.resetRound()
	if g.score != 500 || g.lives != 1 {
		t.Error("Reset during play must be a no-op")
	}

	g.phase = PhaseGameOver
	g.bunkers[0].Health = 2
	g.resetRound()

	if g.phase != PhasePlaying {
		t.Errorf("Phase = %v after reset, want playing", g.phase)
	}
	if g.score != 0 {
		t.Errorf("Score = %d after reset, want 0", g.score)
	}
	if g.lives != g.cfg.Player.Lives {
		t.Errorf("Lives = %d after reset, want %d", g.lives, g.cfg.Player.Lives)
	}
	if len(g.enemies) != g.cfg.Enemy.Rows*g.cfg.Enemy.Cols {
		t.Errorf("Enemy count = %d after reset, want full grid", len(g.enemies))
	}
	if g.bunkers[0].Health != g.cfg.Bunker.Health {
		t.Errorf("Bunker health = %d after reset, want %d", g.bunkers[0].Health, g.cfg.Bunker.Health)
	}
	if g.player.X != g.cfg.Player.StartX || g.player.VX != 0 {
		t.Errorf("Player at (%d, vx=%d) after reset, want start position at rest", g.player.X, g.player.VX)
	}
}

func TestResetIntentThroughStep(t *testing.T) {
	g := newTestGame()
	firstX := g.enemies[0].X

	g.Step(frame(core.ActionReset))
	if g.enemies[0].X != firstX+g.cfg.Enemy.Speed {
		t.Error("Reset intent during play must not rebuild the formation")
	}

	g.phase = PhaseGameOver
	g.Step(frame(core.ActionReset))
	if g.phase != PhasePlaying {
		t.Error("Reset intent after game over should start a new round")
	}
}

func TestHiScoreSurvivesRoundReset(t *testing.T) {
	g := newTestGame()
	g.addScore(120)
	g.phase = PhaseGameOver
	g.resetRound()

	if g.hiScore != 120 {
		t.Errorf("Hi-score = %d after reset, want 120", g.hiScore)
	}
	if g.score != 0 {
		t.Errorf("Score = %d after reset, want 0", g.score)
	}

	// A lower new score must not pull the hi-score down
	g.addScore(30)
	if g.hiScore != 120 {
		t.Errorf("Hi-score = %d, want 120 preserved", g.hiScore)
	}
}

func TestScoreClampOnAdd(t *testing.T) {
	g := newTestGame()
	g.score = g.cfg.Score.Max - 5
	g.addScore(30)
	if g.score != g.cfg.Score.Max {
		t.Errorf("Score = %d, want clamped to %d", g.score, g.cfg.Score.Max)
	}
	if g.hiScore != g.cfg.Score.Max {
		t.Errorf("Hi-score = %d, want %d", g.hiScore, g.cfg.Score.Max)
	}
}

func TestValidateClamps(t *testing.T) {
	g := newTestGame()
	g.score = g.cfg.Score.Max + 5000
	g.lives = 150
	g.player.X = -40
	g.player.Y = g.cfg.Screen.Height + 50
	g.bullet.X = g.cfg.Screen.Width + 100
	g.bullet.Y = -500

	g.validate()

	if g.score != g.cfg.Score.Max {
		t.Errorf("Score = %d, want %d", g.score, g.cfg.Score.Max)
	}
	if g.lives != g.cfg.Player.MaxLives {
		t.Errorf("Lives = %d, want %d", g.lives, g.cfg.Player.MaxLives)
	}
	if g.player.X != 0 {
		t.Errorf("Player X = %d, want 0", g.player.X)
	}
	if g.player.Y != g.cfg.Screen.Height-g.player.H {
		t.Errorf("Player Y = %d, want %d", g.player.Y, g.cfg.Screen.Height-g.player.H)
	}
	if g.bullet.X != g.cfg.Screen.Width {
		t.Errorf("Bullet X = %d, want %d", g.bullet.X, g.cfg.Screen.Width)
	}
	if g.bullet.Y != -g.bullet.H {
		t.Errorf("Bullet Y = %d, want %d", g.bullet.Y, -g.bullet.H)
	}
}

func TestGameOverFreezesEntities(t *testing.T) {
	g := newTestGame()
	g.phase = PhaseGameOver
	playerX := g.player.X
	enemyX := g.enemies[0].X

	g.Step(frame(core.ActionMoveLeft, core.ActionFire))

	if g.phase != PhaseGameOver {
		t.Errorf("Phase = %v, want game over to stick", g.phase)
	}
	if g.player.X != playerX {
		t.Error("Player moved while the round was over")
	}
	if g.enemies[0].X != enemyX {
		t.Error("Formation advanced while the round was over")
	}
	if g.bullet.State != BulletReady {
		t.Error("Bullet fired while the round was over")
	}
}

func TestStateReport(t *testing.T) {
	g := newTestGame()
	g.score = 40
	g.hiScore = 70
	g.lives = 2

	st := g.State()
	if st.Score != 40 || st.HiScore != 70 || st.Lives != 2 {
		t.Errorf("State = %+v, want score 40, hi-score 70, lives 2", st)
	}
	if st.GameOver {
		t.Error("GameOver reported during play")
	}

	g.phase = PhaseGameOver
	if !g.State().GameOver {
		t.Error("GameOver not reported after breach")
	}
}

func TestFrameDrawList(t *testing.T) {
	g := newTestGame()
	f := g.Frame()

	want := g.cfg.Enemy.Rows*g.cfg.Enemy.Cols + g.cfg.Bunker.Count + 1
	if len(f.Sprites) != want {
		t.Fatalf("Sprite count = %d, want %d", len(f.Sprites), want)
	}
	for _, s := range f.Sprites {
		if s.Name == sprites.NameBullet {
			t.Error("Parked bullet should not be drawn")
		}
	}
	if f.Sprites[len(f.Sprites)-1].Name != sprites.NamePlayer {
		t.Error("Player should be the last draw command")
	}
	if f.HUD.Lives != g.cfg.Player.Lives {
		t.Errorf("HUD lives = %d, want %d", f.HUD.Lives, g.cfg.Player.Lives)
	}

	g.Step(frame(core.ActionFire))
	f = g.Frame()
	found := false
	for _, s := range f.Sprites {
		if s.Name == sprites.NameBullet {
			found = true
		}
	}
	if !found {
		t.Error("Flying bullet missing from the draw list")
	}

	g.bunkers[0].Health = 0
	f = g.Frame()
	bunkerCount := 0
	for _, s := range f.Sprites {
		if s.Name == sprites.NameBunker {
			bunkerCount++
		}
	}
	if bunkerCount != g.cfg.Bunker.Count-1 {
		t.Errorf("Drawn bunkers = %d, destroyed one should disappear", bunkerCount)
	}

	g.phase = PhaseGameOver
	f = g.Frame()
	if !f.GameOver {
		t.Error("Frame should flag game over")
	}
	if len(f.Sprites) != 0 {
		t.Errorf("Game over frame lists %d sprites, want none", len(f.Sprites))
	}
	if f.HUD.Score != g.score {
		t.Error("Game over frame should still carry the HUD")
	}
}
