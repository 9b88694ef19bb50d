package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilebreaker/internal/games/tilebreaker/puzzles"
	"github.com/vovakirdan/tilebreaker/internal/storage"
)

var puzzlesCmd = &cobra.Command{
	Use:   "puzzles [dir]",
	Short: "List puzzle files",
	Long: `Lists the puzzles found under a directory, with the best score
recorded for each.

The default directory is $XDG_DATA_HOME/tilebreaker/puzzles. A puzzle file
lists its rows top first; digits are tile colors and '.' is an empty cell:

  id: corner
  name: Corner Pocket
  colors: 3
  rows:
    - "..."
    - "2.."
    - "113"

Play one with: tilebreaker --puzzle <file>`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPuzzles,
}

func runPuzzles(_ *cobra.Command, args []string) error {
	dir := filepath.Join(xdg.DataHome, "tilebreaker", "puzzles")
	if len(args) > 0 {
		dir = args[0]
	}

	list, err := puzzles.NewLoader(dir).LoadAll()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Printf("No puzzles found in %s\n", dir)
		return nil
	}

	// Best scores are optional.
	var store *storage.Store
	if s, err := storage.Open(flagDBPath); err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer s.Close()
		store = s
	}

	fmt.Printf("%-16s %-24s %-8s %s\n", "ID", "Name", "Board", "Best")
	fmt.Println("-------------------------------------------------------------")
	for _, p := range list {
		best := "-"
		if store != nil {
			if score, err := store.HighScore(p.Layout()); err == nil && score > 0 {
				best = strconv.Itoa(score)
			}
		}
		board := fmt.Sprintf("%dx%d/%d", p.Width(), p.Width(), p.Colors)
		fmt.Printf("%-16s %-24s %-8s %s\n", truncate(p.ID, 16), truncate(p.Name, 24), board, best)
	}
	return nil
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
