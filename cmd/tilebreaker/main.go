// tilebreaker is a tile-matching puzzle for the terminal: click a group of
// two or more same-colored tiles to break it, let the rest fall, and score
// a point for every column left empty.
//
// Usage:
//
//	tilebreaker                  - Play with the configured board
//	tilebreaker play             - Same as above
//	tilebreaker scores [layout]  - Show high scores for a board layout
//	tilebreaker serve            - Start SSH server for remote play
//	tilebreaker config init      - Write the default config file
//	tilebreaker list             - List games and the active board
//	tilebreaker puzzles [dir]    - List puzzle files
//
// Global flags:
//
//	--width, --colors  - Override the configured board
//	--seed <value>     - Set RNG seed for a reproducible board
//	--db <path>        - Set database path
//	--config <path>    - Use a specific config file
//	--puzzle <path>    - Start from a puzzle file instead of a random board
//	--log-file <path>  - Write logs to a file
//
// A .env file in the working directory may set TILEBREAKER_DB,
// TILEBREAKER_CONFIG and TILEBREAKER_SSH_ADDR.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilebreaker/internal/games/tilebreaker"
	"github.com/vovakirdan/tilebreaker/internal/games/tilebreaker/puzzles"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
	flagWidth   int
	flagColors  int
	flagPuzzle  string
)

// logger is set up before any command runs.
var logger = log.New(os.Stderr)

func main() {
	// Missing .env is normal; variables may be set directly.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilebreaker",
	Short: "TileBreaker - break same-colored tiles in your terminal",
	Long: `TileBreaker is a tile-matching puzzle on a square board.

Click (or select with the cursor and press enter) a group of two or more
touching tiles of the same color to break it. Tiles above fall down, empty
columns slide left, and every column left empty scores a point before it
is refilled. The game ends when no two neighbors share a color.

Examples:
  tilebreaker
  tilebreaker --width 8 --colors 4
  tilebreaker --puzzle ./corner.yaml
  tilebreaker scores
  tilebreaker serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	defaultDB := filepath.Join(xdg.DataHome, "tilebreaker", "scores.db")

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDB, "Path to scores database (env TILEBREAKER_DB)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (env TILEBREAKER_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width and height (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagColors, "colors", 0, "Number of tile colors (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagPuzzle, "puzzle", "", "Start from a puzzle YAML file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(puzzlesCmd)
}

// setup applies environment defaults, configures logging and hands the
// config settings to the game package.
func setup(cmd *cobra.Command, _ []string) error {
	envDefault(cmd, "db", "TILEBREAKER_DB", &flagDBPath)
	envDefault(cmd, "config", "TILEBREAKER_CONFIG", &flagConfig)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "tilebreaker",
		})
	}
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	tilebreaker.SetConfigPath(flagConfig)
	tilebreaker.SetBoardOverrides(flagWidth, flagColors)

	if flagPuzzle != "" {
		p, err := puzzles.LoadFile(flagPuzzle)
		if err != nil {
			return err
		}
		logger.Debug("puzzle loaded", "id", p.ID, "width", p.Width(), "colors", p.Colors)
		tilebreaker.SetPuzzle(&p)
	}
	return nil
}

// envDefault replaces an unset flag's value with an environment variable.
func envDefault(cmd *cobra.Command, flag, env string, dst *string) {
	if cmd.Flags().Changed(flag) {
		return
	}
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}
