package sprites

import "github.com/AlessandroGCodeca/spaceinvadersgame/internal/core"

// Built-in art, 1 = pixel, 0 = empty. These are the classic invader shapes;
// they are raw art and get blown up by the configured scale at load time.

// Squid (8x8) - top row invader
var squidArt = []string{
	"00011000",
	"00111100",
	"01111110",
	"11011011",
	"11111111",
	"00100100",
	"01011010",
	"10100101",
}

// Crab (11x8) - middle row invader; its scaled size is also the collision
// box shared by every enemy in the formation
var crabArt = []string{
	"00100000100",
	"00010001000",
	"00111111100",
	"01101110110",
	"11111111111",
	"10111111101",
	"10100000101",
	"00011011000",
}

// Octopus (12x8) - bottom row invader
var octopusArt = []string{
	"000011110000",
	"011111111110",
	"111111111111",
	"111001100111",
	"111111111111",
	"000110011000",
	"001101101100",
	"110000000011",
}

// Player cannon (13x8)
var playerArt = []string{
	"0000001000000",
	"0000011100000",
	"0000011100000",
	"0111111111110",
	"1111111111111",
	"1111111111111",
	"1111111111111",
	"1111111111111",
}

// Bunker (20x16) with the firing arch at the bottom
var bunkerArt = []string{
	"00001111111111110000",
	"00111111111111111100",
	"01111111111111111110",
	"11111111111111111111",
	"11111111111111111111",
	"11111111111111111111",
	"11111111111111111111",
	"11111111111111111111",
	"11111111000011111111",
	"11111111000011111111",
	"11111111000011111111",
	"11111111000011111111",
	"11111111000011111111",
	"11111111000011111111",
	"11111111000011111111",
	"11111111000011111111",
}

// Bullet (1x4)
var bulletArt = []string{
	"1",
	"1",
	"1",
	"1",
}

var builtinArt = map[string][]string{
	NamePlayer:  playerArt,
	NameSquid:   squidArt,
	NameCrab:    crabArt,
	NameOctopus: octopusArt,
	NameBunker:  bunkerArt,
	NameBullet:  bulletArt,
}

var builtinColor = map[string]core.Color{
	NamePlayer:  core.ColorGreen,
	NameSquid:   core.ColorWhite,
	NameCrab:    core.ColorWhite,
	NameOctopus: core.ColorWhite,
	NameBunker:  core.ColorGreen,
	NameBullet:  core.ColorWhite,
}

// builtinSprite builds the shipped sprite for a name at the given scale.
// Panics on unknown names: the art table is package-internal and complete.
func builtinSprite(name string, scale int) *Sprite {
	art, ok := builtinArt[name]
	if !ok {
		panic("sprites: no built-in art for " + name)
	}
	w, h, mask, err := parseArt(art)
	if err != nil {
		panic("sprites: built-in art for " + name + " is invalid: " + err.Error())
	}
	w, h, mask = scaleMask(w, h, mask, scale)
	return &Sprite{
		Name:  name,
		W:     w,
		H:     h,
		Mask:  mask,
		Color: builtinColor[name],
	}
}
