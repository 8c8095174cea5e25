package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file verbatim.
// The config subcommand prints it so players can seed their own copy.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the default configuration. The values mirror
// defaults/invaders.yaml and are the classic 800x600 arcade constants.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Speed:    4,
			StartX:   370,
			StartY:   520,
			Lives:    3,
			MaxLives: 99,
		},
		Enemy: EnemyConfig{
			Speed:         1,
			DropDistance:  10,
			Rows:          5,
			Cols:          11,
			StartX:        75,
			StartY:        100,
			GapX:          50,
			GapY:          40,
			GameOverY:     400,
			SquidPoints:   30,
			CrabPoints:    20,
			OctopusPoints: 10,
		},
		Bullet: BulletConfig{
			Speed:  10,
			StartY: 480,
		},
		Bunker: BunkerConfig{
			Count:  4,
			Y:      450,
			Health: 10,
		},
		Score: ScoreConfig{
			Min: 0,
			Max: 999999,
		},
		Assets: AssetsConfig{
			Dir:   "",
			Scale: 3,
		},
	}
}
