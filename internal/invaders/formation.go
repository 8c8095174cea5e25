package invaders

// tierForRow maps a formation row to its tier and point value. Row 0 is the
// squid tier, rows 1-2 crabs, everything below octopuses.
func (g *Game) tierForRow(row int) (Tier, int) {
	switch {
	case row == 0:
		return TierSquid, g.cfg.Enemy.SquidPoints
	case row <= 2:
		return TierCrab, g.cfg.Enemy.CrabPoints
	default:
		return TierOctopus, g.cfg.Enemy.OctopusPoints
	}
}

// spawnGrid rebuilds the enemy formation in row-major order. Stored order
// doubles as the collision scan order, so creation order is part of the
// game's observable behavior.
func (g *Game) spawnGrid() {
	ec := g.cfg.Enemy
	g.enemies = make([]Enemy, 0, ec.Rows*ec.Cols)
	for row := 0; row < ec.Rows; row++ {
		tier, points := g.tierForRow(row)
		for col := 0; col < ec.Cols; col++ {
			g.enemies = append(g.enemies, Enemy{
				X:      ec.StartX + col*ec.GapX,
				Y:      ec.StartY + row*ec.GapY,
				Step:   ec.Speed,
				Points: points,
				Tier:   tier,
			})
		}
	}
}

// spawnBunkers lays the bunker row out evenly across the screen width.
func (g *Game) spawnBunkers() {
	bc := g.cfg.Bunker
	gap := g.cfg.Screen.Width / (bc.Count + 1)
	g.bunkers = make([]Bunker, 0, bc.Count)
	for i := 0; i < bc.Count; i++ {
		g.bunkers = append(g.bunkers, Bunker{
			X:      gap*(i+1) - g.bunkerW/2,
			Y:      bc.Y,
			W:      g.bunkerW,
			H:      g.bunkerH,
			Health: bc.Health,
		})
	}
}

// advanceFormation moves every enemy by its signed step, then handles wall
// contact as one formation-wide event: the whole set scans before anything
// reverses, and then every member reverses and drops together, never a
// subset. A drop that carries any enemy past the breach line ends the round
// once the full pass has run.
func (g *Game) advanceFormation() {
	touchedWall := false
	for i := range g.enemies {
		e := &g.enemies[i]
		e.X += e.Step
		if e.X <= 0 || e.X >= g.cfg.Screen.Width-g.enemyW {
			touchedWall = true
		}
	}
	if !touchedWall {
		return
	}

	breached := false
	for i := range g.enemies {
		e := &g.enemies[i]
		e.Step = -e.Step
		e.Y += g.cfg.Enemy.DropDistance
		if e.Y > g.cfg.Enemy.GameOverY {
			breached = true
		}
	}
	if breached {
		g.phase = PhaseGameOver
	}
}

// respawnIfCleared starts the next wave once the formation is gone. An empty
// field is a respawn trigger, not a win; bunkers keep their damage.
func (g *Game) respawnIfCleared() {
	if len(g.enemies) == 0 {
		g.spawnGrid()
	}
}
