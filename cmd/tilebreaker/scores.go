package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilebreaker/internal/games/tilebreaker"
	"github.com/vovakirdan/tilebreaker/internal/platform/tui"
	"github.com/vovakirdan/tilebreaker/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagAllLayouts  bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [layout]",
	Short: "Show high scores for a board layout",
	Long: `Display the best rounds for a board layout. A layout is written
WIDTHxCOLORS, so "10x5" is a 10x10 board with 5 colors. Without an
argument the layout of the current config is shown.

Examples:
  tilebreaker scores
  tilebreaker scores 6x3
  tilebreaker scores --all
  tilebreaker scores --interactive
  tilebreaker scores 6x3 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagAllLayouts, "all", false, "Summarize every layout that has scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the layout")
}

func runScores(_ *cobra.Command, args []string) error {
	layout, err := resolveLayout(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		n, err := store.ClearScores(layout)
		if err != nil {
			return err
		}
		logger.Info("scores cleared", "layout", layout, "count", n)
		fmt.Printf("Deleted %d scores for %s.\n", n, layout)
		return nil

	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height, layout)

	case flagAllLayouts:
		return printAllLayouts(store)
	}

	return printScores(store, layout)
}

// resolveLayout picks the layout from the argument or the current config.
func resolveLayout(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cfg, _, err := tilebreaker.LoadConfig()
	if err != nil {
		return "", err
	}
	return cfg.Layout(), nil
}

func printScores(store *storage.Store, layout string) error {
	scores, err := store.TopScores(layout, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", layout)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tilebreaker play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Moves", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "----")
	for i, r := range scores {
		fmt.Printf("  %-4d  %-12s  %-5d  %-5d  %s\n",
			i+1, r.Player, r.Score, r.Moves, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(layout)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Rounds: %d  Average: %.1f\n", stats.HighScore, stats.Rounds, stats.AvgScore)
	return nil
}

func printAllLayouts(store *storage.Store) error {
	layouts, err := store.Layouts()
	if err != nil {
		return err
	}
	if len(layouts) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-6s  %-4s  %-7s  %-6s  %s\n", "Layout", "Rounds", "Best", "Average", "Moves", "Last played")
	fmt.Printf("  %-8s  %-6s  %-4s  %-7s  %-6s  %s\n", "------", "------", "----", "-------", "-----", "-----------")
	for _, l := range layouts {
		s, err := store.Stats(l)
		if err != nil {
			return err
		}
		fmt.Printf("  %-8s  %-6d  %-4d  %-7.1f  %-6d  %s\n",
			l, s.Rounds, s.HighScore, s.AvgScore, s.TotalMoves, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
