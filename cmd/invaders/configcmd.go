package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Resolve the configuration a round would run with (config file search,
difficulty preset, normalization) and print it as YAML.

With --default, prints the embedded default file verbatim; redirect it to
~/.invaders/configs/invaders.yaml to start a custom copy.

Examples:
  invaders config
  invaders config --difficulty hard
  invaders config --default > ~/.invaders/configs/invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the embedded default config file verbatim")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagConfigDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}
	cfg.Normalize()

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
