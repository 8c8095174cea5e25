package invaders

import (
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/core"
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/sprites"
)

// Phase is the round state machine: Playing until the formation breaches the
// floor, then GameOver until an explicit reset. There are no other states.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// BulletState is the bullet lifecycle. While Ready the bullet is parked: it
// is not drawn and cannot collide with anything.
type BulletState int

const (
	BulletReady BulletState = iota
	BulletFlying
)

// String returns a human-readable name for the bullet state.
func (s BulletState) String() string {
	switch s {
	case BulletReady:
		return "ready"
	case BulletFlying:
		return "flying"
	default:
		return "unknown"
	}
}

// Tier is an enemy's row-determined score class.
type Tier int

const (
	TierSquid   Tier = iota // top row, highest value
	TierCrab                // middle rows
	TierOctopus             // bottom rows
)

// SpriteName returns the logical sprite for a tier.
func (t Tier) SpriteName() string {
	switch t {
	case TierSquid:
		return sprites.NameSquid
	case TierCrab:
		return sprites.NameCrab
	default:
		return sprites.NameOctopus
	}
}

// Player is the cannon at the bottom of the playfield. Y never changes; VX is
// the current velocity intent and persists until a new movement intent
// replaces it.
type Player struct {
	X, Y int
	VX   int
	W, H int
}

// Rect returns the player's collision box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Bullet is the single player projectile. At most one exists; firing while it
// is flying is a no-op.
type Bullet struct {
	X, Y  int
	State BulletState
	W, H  int
}

// Rect returns the bullet's collision box.
func (b *Bullet) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Enemy is one formation member. Identity is positional: enemies live in a
// slice in row-major creation order and removed enemies leave no trace.
// Every enemy shares the formation-wide collision box held by the game.
type Enemy struct {
	X, Y   int
	Step   int // signed horizontal pixels per tick
	Points int
	Tier   Tier
}

// Bunker is a stationary cover block. Its rect is fixed for the round; only
// health changes. At zero health it stays in the slice but is neither drawn
// nor collidable.
type Bunker struct {
	X, Y   int
	W, H   int
	Health int
}

// Rect returns the bunker's collision box.
func (b *Bunker) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Alive reports whether the bunker still absorbs bullets.
func (b *Bunker) Alive() bool {
	return b.Health > 0
}
