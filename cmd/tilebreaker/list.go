package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilebreaker/internal/games/tilebreaker"
	"github.com/vovakirdan/tilebreaker/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games and the active board",
	Long:  `Shows the registered games and the board the current config produces.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	cfg, source, err := tilebreaker.LoadConfig()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Board:   %dx%d, %d colors (layout %s)\n", cfg.Board.Width, cfg.Board.Width, cfg.Board.Colors, cfg.Layout())
	fmt.Printf("Palette: %v\n", cfg.Palette[:cfg.Board.Colors])
	fmt.Printf("Config:  %s\n", source)
	return nil
}
