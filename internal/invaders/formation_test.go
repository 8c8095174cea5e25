package invaders

import (
	"testing"

	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/core"
)

func TestSpawnGridLayout(t *testing.T) {
	g := newTestGame()
	ec := g.cfg.Enemy

	if len(g.enemies) != ec.Rows*ec.Cols {
		t.Fatalf("Grid size = %d, want %d", len(g.enemies), ec.Rows*ec.Cols)
	}

	first := g.enemies[0]
	if first.X != ec.StartX || first.Y != ec.StartY {
		t.Errorf("First enemy at (%d,%d), want (%d,%d)", first.X, first.Y, ec.StartX, ec.StartY)
	}
	if first.Tier != TierSquid || first.Points != ec.SquidPoints {
		t.Errorf("Row 0 should be squids worth %d, got %v worth %d", ec.SquidPoints, first.Tier, first.Points)
	}

	// Row-major stored order: index row*cols+col
	mid := g.enemies[1*ec.Cols+4]
	if mid.X != ec.StartX+4*ec.GapX || mid.Y != ec.StartY+ec.GapY {
		t.Errorf("Row 1 col 4 at (%d,%d), want (%d,%d)",
			mid.X, mid.Y, ec.StartX+4*ec.GapX, ec.StartY+ec.GapY)
	}
	if mid.Tier != TierCrab || mid.Points != ec.CrabPoints {
		t.Errorf("Rows 1-2 should be crabs worth %d, got %v worth %d", ec.CrabPoints, mid.Tier, mid.Points)
	}

	last := g.enemies[len(g.enemies)-1]
	if last.X != ec.StartX+(ec.Cols-1)*ec.GapX || last.Y != ec.StartY+(ec.Rows-1)*ec.GapY {
		t.Errorf("Last enemy at (%d,%d), want (%d,%d)", last.X, last.Y,
			ec.StartX+(ec.Cols-1)*ec.GapX, ec.StartY+(ec.Rows-1)*ec.GapY)
	}
	if last.Tier != TierOctopus || last.Points != ec.OctopusPoints {
		t.Errorf("Bottom rows should be octopuses worth %d, got %v worth %d",
			ec.OctopusPoints, last.Tier, last.Points)
	}

	for i, e := range g.enemies {
		if e.Step != ec.Speed {
			t.Errorf("Enemy %d step = %d, grid must spawn with uniform direction %d", i, e.Step, ec.Speed)
		}
	}
}

func TestTierForRow(t *testing.T) {
	g := newTestGame()

	tests := []struct {
		row    int
		tier   Tier
		points int
	}{
		{0, TierSquid, g.cfg.Enemy.SquidPoints},
		{1, TierCrab, g.cfg.Enemy.CrabPoints},
		{2, TierCrab, g.cfg.Enemy.CrabPoints},
		{3, TierOctopus, g.cfg.Enemy.OctopusPoints},
		{4, TierOctopus, g.cfg.Enemy.OctopusPoints},
	}
	for _, tc := range tests {
		tier, points := g.tierForRow(tc.row)
		if tier != tc.tier || points != tc.points {
			t.Errorf("Row %d = %v worth %d, want %v worth %d", tc.row, tier, points, tc.tier, tc.points)
		}
	}
}

func TestBunkerLayout(t *testing.T) {
	g := newTestGame()
	bc := g.cfg.Bunker

	if len(g.bunkers) != bc.Count {
		t.Fatalf("Bunker count = %d, want %d", len(g.bunkers), bc.Count)
	}

	gap := g.cfg.Screen.Width / (bc.Count + 1)
	for i, b := range g.bunkers {
		wantX := gap*(i+1) - g.bunkerW/2
		if b.X != wantX {
			t.Errorf("Bunker %d at x=%d, want %d", i, b.X, wantX)
		}
		if b.Y != bc.Y {
			t.Errorf("Bunker %d at y=%d, want %d", i, b.Y, bc.Y)
		}
		if b.Health != bc.Health {
			t.Errorf("Bunker %d health = %d, want %d", i, b.Health, bc.Health)
		}
	}
}

func TestFormationAdvancesTogether(t *testing.T) {
	g := newTestGame()
	xs := make([]int, len(g.enemies))
	ys := make([]int, len(g.enemies))
	for i, e := range g.enemies {
		xs[i] = e.X
		ys[i] = e.Y
	}

	g.advanceFormation()

	for i, e := range g.enemies {
		if e.X != xs[i]+g.cfg.Enemy.Speed {
			t.Errorf("Enemy %d at x=%d, want %d", i, e.X, xs[i]+g.cfg.Enemy.Speed)
		}
		if e.Step != g.cfg.Enemy.Speed {
			t.Errorf("Enemy %d reversed mid-field", i)
		}
		if e.Y != ys[i] {
			t.Errorf("Enemy %d dropped to y=%d mid-field", i, e.Y)
		}
	}
}

func TestWallContactReversesAndDropsWholeSet(t *testing.T) {
	g := newTestGame()
	wall := g.cfg.Screen.Width - g.enemyW
	g.enemies = []Enemy{
		{X: wall - 1, Y: 100, Step: 1, Points: 10, Tier: TierOctopus},
		{X: 300, Y: 140, Step: 1, Points: 20, Tier: TierCrab},
	}

	g.advanceFormation()

	if g.enemies[0].X != wall {
		t.Errorf("Lead enemy at x=%d, want %d (moves into the wall this tick)", g.enemies[0].X, wall)
	}
	if g.enemies[0].Step != -1 || g.enemies[1].Step != -1 {
		t.Error("Reversal must apply to every enemy, not only the one at the wall")
	}
	if g.enemies[0].Y != 100+g.cfg.Enemy.DropDistance || g.enemies[1].Y != 140+g.cfg.Enemy.DropDistance {
		t.Error("Drop must apply to every enemy")
	}
	if g.phase != PhasePlaying {
		t.Errorf("Phase = %v, drop near the top must not end the round", g.phase)
	}
}

func TestLeftWallAlsoReverses(t *testing.T) {
	g := newTestGame()
	g.enemies = []Enemy{{X: 1, Y: 100, Step: -1, Points: 10, Tier: TierOctopus}}

	g.advanceFormation()

	if g.enemies[0].X != 0 {
		t.Errorf("Enemy at x=%d, want 0", g.enemies[0].X)
	}
	if g.enemies[0].Step != 1 {
		t.Error("Left wall contact should flip direction to the right")
	}
}

func TestBreachEndsRound(t *testing.T) {
	g := newTestGame()
	g.enemies = []Enemy{
		{X: 1, Y: g.cfg.Enemy.GameOverY - 5, Step: -1, Points: 10, Tier: TierOctopus},
		{X: 300, Y: 100, Step: -1, Points: 20, Tier: TierCrab},
	}

	g.advanceFormation()

	if g.phase != PhaseGameOver {
		t.Fatalf("Phase = %v, want game over after breach", g.phase)
	}
	if g.enemies[1].Y != 100+g.cfg.Enemy.DropDistance {
		t.Error("Every enemy must finish the drop even when the round ends")
	}
	if g.enemies[1].Step != 1 {
		t.Error("Every enemy must finish the reversal even when the round ends")
	}
}

func TestBreachRequiresCrossingThreshold(t *testing.T) {
	g := newTestGame()
	// The drop lands exactly on the threshold, which is not a breach
	g.enemies = []Enemy{{
		X:      1,
		Y:      g.cfg.Enemy.GameOverY - g.cfg.Enemy.DropDistance,
		Step:   -1,
		Points: 10,
		Tier:   TierOctopus,
	}}

	g.advanceFormation()

	if g.phase != PhasePlaying {
		t.Errorf("Phase = %v, landing on the threshold must not end the round", g.phase)
	}
	if g.enemies[0].Y != g.cfg.Enemy.GameOverY {
		t.Errorf("Enemy at y=%d, want %d", g.enemies[0].Y, g.cfg.Enemy.GameOverY)
	}
}

func TestRespawnPreservesProgress(t *testing.T) {
	g := newTestGame()
	g.score = 990
	g.hiScore = 990
	g.lives = 2
	g.bunkers[2].Health = 3
	g.enemies = nil

	g.Step(frame())

	if len(g.enemies) != g.cfg.Enemy.Rows*g.cfg.Enemy.Cols {
		t.Fatalf("Cleared field should respawn the full grid, got %d enemies", len(g.enemies))
	}
	if g.phase != PhasePlaying {
		t.Error("Clearing the field is a respawn trigger, not a win")
	}
	if g.score != 990 || g.lives != 2 {
		t.Errorf("Score/lives = %d/%d after respawn, want 990/2", g.score, g.lives)
	}
	if g.bunkers[2].Health != 3 {
		t.Error("Respawn must not repair bunkers")
	}
	if g.enemies[0].X != g.cfg.Enemy.StartX {
		t.Errorf("Respawned grid starts at x=%d, want %d", g.enemies[0].X, g.cfg.Enemy.StartX)
	}
	for i, e := range g.enemies {
		if e.Step != g.cfg.Enemy.Speed {
			t.Errorf("Respawned enemy %d step = %d, want %d", i, e.Step, g.cfg.Enemy.Speed)
		}
	}
}

func TestFormationMarchesAcrossTheScreen(t *testing.T) {
	g := newTestGame()
	ec := g.cfg.Enemy

	// March until the first reversal and check the whole set flipped
	var reversed bool
	for i := 0; i < 2000; i++ {
		g.Step(core.NewInputFrame())
		if g.enemies[0].Step == -ec.Speed {
			reversed = true
			break
		}
	}
	if !reversed {
		t.Fatal("Formation never reached a wall")
	}
	for i, e := range g.enemies {
		if e.Step != -ec.Speed {
			t.Errorf("Enemy %d step = %d after reversal, want %d", i, e.Step, -ec.Speed)
		}
	}
	// Every row dropped exactly once
	if g.enemies[0].Y != ec.StartY+ec.DropDistance {
		t.Errorf("Front row at y=%d after first drop, want %d",
			g.enemies[0].Y, ec.StartY+ec.DropDistance)
	}
}
