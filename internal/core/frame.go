package core

// SpriteCmd asks the platform to draw a named sprite at a virtual-pixel
// position. The simulation only ever references sprites by logical name;
// resolving the name to an actual drawable is the platform's job.
type SpriteCmd struct {
	Name string
	X, Y int
}

// HUD carries the values the platform lays out around the playfield.
type HUD struct {
	Score   int
	HiScore int
	Lives   int
}

// Frame is the complete render output of one simulation tick: the playfield
// size, the sprites to draw, the HUD values, and whether the round has ended.
// While GameOver is set the sprite list is empty and the platform draws the
// game-over banner instead of the playfield.
type Frame struct {
	W, H     int // Playfield size in virtual pixels
	Sprites  []SpriteCmd
	HUD      HUD
	GameOver bool
}
