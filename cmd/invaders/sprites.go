package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/config"
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/sprites"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites [name]",
	Short: "List sprite art and collision sizes",
	Long: `Without arguments, lists every sprite the renderer knows about together
with its pixel size at the configured scale.

With a name, prints that sprite's art so custom overrides can be checked
against the built-in look.

Examples:
  invaders sprites
  invaders sprites enemy-crab
  invaders sprites player --assets ./my-art`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSprites,
}

func runSprites(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}

	atlas := sprites.NewAtlas(cfg.Assets, nil)

	if len(args) == 1 {
		name := args[0]
		if !slices.Contains(sprites.Names(), name) {
			fmt.Fprintf(os.Stderr, "Error: unknown sprite %q\n", name)
			fmt.Fprintln(os.Stderr, "Run 'invaders sprites' to see the known names.")
			os.Exit(1)
		}
		printSpriteArt(atlas, name)
		return
	}

	columns := []table.Column{
		{Title: "Name", Width: 16},
		{Title: "Size", Width: 8},
		{Title: "Pixels", Width: 8},
	}

	names := sprites.Names()
	rows := make([]table.Row, 0, len(names))
	for _, name := range names {
		sp := atlas.Resolve(name)
		lit := 0
		for _, on := range sp.Mask {
			if on {
				lit++
			}
		}
		rows = append(rows, table.Row{
			name,
			fmt.Sprintf("%dx%d", sp.W, sp.H),
			fmt.Sprintf("%d", lit),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
	)
	// Static listing: drop the interactive selection highlight
	styles := table.DefaultStyles()
	styles.Selected = styles.Cell
	t.SetStyles(styles)

	fmt.Println(t.View())
	fmt.Printf("Sizes are virtual pixels at scale %d.\n", cfg.Assets.Scale)
}

func printSpriteArt(atlas *sprites.Atlas, name string) {
	sp := atlas.Resolve(name)
	fmt.Printf("%s  %dx%d\n\n", sp.Name, sp.W, sp.H)
	for _, line := range sp.Art() {
		fmt.Println(line)
	}
}
