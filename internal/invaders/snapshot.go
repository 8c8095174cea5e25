package invaders

// Snapshot contains the complete simulation state for determinism checks and
// save/replay. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint64
	Phase   int
	Score   int
	HiScore int
	Lives   int

	PlayerX  int
	PlayerY  int
	PlayerVX int

	BulletX     int
	BulletY     int
	BulletState int

	// Enemy states (each enemy is 5 ints: X, Y, Step, Points, Tier)
	EnemyCount int
	EnemyData  []int

	// Bunker states (each bunker is 3 ints: X, Y, Health)
	BunkerCount int
	BunkerData  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]int, len(g.enemies)*5)
	for i, e := range g.enemies {
		idx := i * 5
		enemyData[idx] = e.X
		enemyData[idx+1] = e.Y
		enemyData[idx+2] = e.Step
		enemyData[idx+3] = e.Points
		enemyData[idx+4] = int(e.Tier)
	}

	bunkerData := make([]int, len(g.bunkers)*3)
	for i, b := range g.bunkers {
		idx := i * 3
		bunkerData[idx] = b.X
		bunkerData[idx+1] = b.Y
		bunkerData[idx+2] = b.Health
	}

	return Snapshot{
		Tick:    g.tick,
		Phase:   int(g.phase),
		Score:   g.score,
		HiScore: g.hiScore,
		Lives:   g.lives,

		PlayerX:  g.player.X,
		PlayerY:  g.player.Y,
		PlayerVX: g.player.VX,

		BulletX:     g.bullet.X,
		BulletY:     g.bullet.Y,
		BulletState: int(g.bullet.State),

		EnemyCount:  len(g.enemies),
		EnemyData:   enemyData,
		BunkerCount: len(g.bunkers),
		BunkerData:  bunkerData,
	}
}

// ApplySnapshot restores game state from a snapshot. Collision box sizes are
// construction-time values and stay as the receiver resolved them.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tick = snap.Tick
	g.phase = Phase(snap.Phase)
	g.score = snap.Score
	g.hiScore = snap.HiScore
	g.lives = snap.Lives

	g.player.X = snap.PlayerX
	g.player.Y = snap.PlayerY
	g.player.VX = snap.PlayerVX

	g.bullet.X = snap.BulletX
	g.bullet.Y = snap.BulletY
	g.bullet.State = BulletState(snap.BulletState)

	g.enemies = make([]Enemy, 0, snap.EnemyCount)
	for i := range snap.EnemyCount {
		idx := i * 5
		if idx+4 < len(snap.EnemyData) {
			g.enemies = append(g.enemies, Enemy{
				X:      snap.EnemyData[idx],
				Y:      snap.EnemyData[idx+1],
				Step:   snap.EnemyData[idx+2],
				Points: snap.EnemyData[idx+3],
				Tier:   Tier(snap.EnemyData[idx+4]),
			})
		}
	}

	g.bunkers = make([]Bunker, 0, snap.BunkerCount)
	for i := range snap.BunkerCount {
		idx := i * 3
		if idx+2 < len(snap.BunkerData) {
			g.bunkers = append(g.bunkers, Bunker{
				X:      snap.BunkerData[idx],
				Y:      snap.BunkerData[idx+1],
				W:      g.bunkerW,
				H:      g.bunkerH,
				Health: snap.BunkerData[idx+2],
			})
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HiScore)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletState) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BunkerCount) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BunkerData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
