// invaders is a terminal rendition of the classic fixed-shooter arcade game.
//
// Usage:
//
//	invaders                 - Start a round (same as 'invaders play')
//	invaders play            - Start a round
//	invaders sprites [name]  - List sprite art, or preview a single sprite
//	invaders config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--config <path>      - Path to a custom config YAML
//	--assets <dir>       - Directory with sprite art overrides
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--log <level>        - Log level for ~/.invaders/invaders.log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagAssets     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders for the terminal",
	Long: `Defend the baseline: move the cannon, shoot the descending formation,
and keep it off the ground for as long as you can.

Running invaders without a subcommand starts a round immediately.

Available commands:
  play     - Start a round (the default)
  sprites  - List sprite art and collision sizes
  config   - Print the effective configuration as YAML

Examples:
  invaders
  invaders play --difficulty hard
  invaders play --assets ./my-art
  invaders sprites enemy-crab
  invaders config --default`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with sprite art overrides")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(configCmd)
}
