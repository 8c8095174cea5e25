package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/config"
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/core"
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/invaders"
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/platform/tui"
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/sprites"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a round",
	Long: `Start a round of Space Invaders.

Controls:
  Left/A/H    - Move left
  Right/D/L   - Move right
  Down/S      - Stop
  Space       - Fire
  R           - New round (after game over)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy    - Extra lives, shallower formation drops
  normal  - The classic constants
  hard    - One life, faster formation

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --config ./my-invaders.yaml
  invaders play --assets ./my-art --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	atlas := sprites.NewAtlas(cfg.Assets, logger)
	game := invaders.New(cfg, atlas)

	// Get terminal size early; the model keeps tracking resizes itself
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	if runErr := tui.Run(game, atlas, logger, rc); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newLogger opens the session log under ~/.invaders. Logging is best effort:
// when the file cannot be opened the game still runs, it just logs nowhere.
func newLogger() *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", flagLogLevel)
		level = log.InfoLevel
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ".invaders")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create %s: %v\n", dir, err)
		return nil
	}

	path := filepath.Join(dir, "invaders.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open %s: %v\n", path, err)
		return nil
	}

	// The file stays open for the process lifetime.
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "invaders",
	})
}
