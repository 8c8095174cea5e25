// Package config provides YAML-based configuration loading for the game.
// Every value is a startup constant: nothing here is mutated at runtime.
package config

// Config contains all gameplay constants. The simulation runs in a virtual
// pixel space whose size is Screen.Width x Screen.Height; the terminal
// rasterizer scales that space down to cells.
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
	Player PlayerConfig `yaml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Bullet BulletConfig `yaml:"bullet"`
	Bunker BunkerConfig `yaml:"bunker"`
	Score  ScoreConfig  `yaml:"score"`
	Assets AssetsConfig `yaml:"assets"`
}

// ScreenConfig defines the virtual playfield size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player ship parameters.
type PlayerConfig struct {
	Speed    int `yaml:"speed"` // Horizontal pixels per tick
	StartX   int `yaml:"start_x"`
	StartY   int `yaml:"start_y"` // Fixed for the whole round
	Lives    int `yaml:"lives"`
	MaxLives int `yaml:"max_lives"`
}

// EnemyConfig defines the formation grid and per-tier score values.
type EnemyConfig struct {
	Speed         int `yaml:"speed"`          // Horizontal pixels per tick
	DropDistance  int `yaml:"drop_distance"`  // Pixels dropped on each reversal
	Rows          int `yaml:"rows"`
	Cols          int `yaml:"cols"`
	StartX        int `yaml:"start_x"`
	StartY        int `yaml:"start_y"`
	GapX          int `yaml:"gap_x"`
	GapY          int `yaml:"gap_y"`
	GameOverY     int `yaml:"game_over_y"` // Breach threshold: any enemy below ends the round
	SquidPoints   int `yaml:"squid_points"`
	CrabPoints    int `yaml:"crab_points"`
	OctopusPoints int `yaml:"octopus_points"`
}

// BulletConfig defines the single player bullet.
type BulletConfig struct {
	Speed  int `yaml:"speed"`   // Upward pixels per tick
	StartY int `yaml:"start_y"` // Parking y while the bullet is ready
}

// BunkerConfig defines the destructible cover blocks.
type BunkerConfig struct {
	Count  int `yaml:"count"`
	Y      int `yaml:"y"`
	Health int `yaml:"health"`
}

// ScoreConfig bounds the running score.
type ScoreConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// AssetsConfig controls sprite resolution.
type AssetsConfig struct {
	Dir   string `yaml:"dir"`   // Optional override directory, empty = built-ins only
	Scale int    `yaml:"scale"` // Multiplier applied to raw bitmap art
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Normalize clamps nonsensical values back into workable ranges so a broken
// config file degrades instead of crashing the game.
func (c *Config) Normalize() {
	if c.Screen.Width < 100 {
		c.Screen.Width = 100
	}
	if c.Screen.Height < 100 {
		c.Screen.Height = 100
	}
	if c.Player.Speed < 1 {
		c.Player.Speed = 1
	}
	if c.Player.Lives < 1 {
		c.Player.Lives = 1
	}
	if c.Player.MaxLives < c.Player.Lives {
		c.Player.MaxLives = c.Player.Lives
	}
	if c.Enemy.Speed < 1 {
		c.Enemy.Speed = 1
	}
	if c.Enemy.DropDistance < 0 {
		c.Enemy.DropDistance = 0
	}
	if c.Enemy.Rows < 1 {
		c.Enemy.Rows = 1
	}
	if c.Enemy.Cols < 1 {
		c.Enemy.Cols = 1
	}
	if c.Bullet.Speed < 1 {
		c.Bullet.Speed = 1
	}
	if c.Bunker.Count < 0 {
		c.Bunker.Count = 0
	}
	if c.Bunker.Health < 1 {
		c.Bunker.Health = 1
	}
	if c.Score.Max < c.Score.Min {
		c.Score.Max = c.Score.Min
	}
	if c.Assets.Scale < 1 {
		c.Assets.Scale = 1
	}
}
