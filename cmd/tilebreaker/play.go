package main

import (
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilebreaker/internal/core"
	"github.com/vovakirdan/tilebreaker/internal/games/tilebreaker"
	"github.com/vovakirdan/tilebreaker/internal/platform/tui"
	"github.com/vovakirdan/tilebreaker/internal/registry"
	"github.com/vovakirdan/tilebreaker/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in this terminal",
	Long: `Start a new board in this terminal.

Controls:
  Arrows/WASD/hjkl - Move the cursor (up goes toward the top row)
  Enter/Space      - Break the group under the cursor
  Mouse click      - Break the clicked group
  P/Esc            - Pause
  R                - New board
  B/Tab            - High scores
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  tilebreaker play
  tilebreaker play --width 6 --colors 3
  tilebreaker play --seed 42
  tilebreaker play --config ./my-board.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Fail before taking over the terminal.
	cfg, source, err := tilebreaker.LoadConfig()
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source, "layout", cfg.Layout())

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(tilebreaker.GameID)
	if err != nil {
		return err
	}

	var store tui.Store
	s, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without scores.
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer s.Close()
		store = s
	}

	return tui.Run(game, store, rt, tui.Options{
		Player: playerName(),
		Logger: gameLogger(),
	})
}

// gameLogger returns the logger used while the TUI owns the terminal.
func gameLogger() *log.Logger {
	if flagLogFile == "" {
		return log.New(io.Discard)
	}
	return logger
}

// playerName returns the name recorded with local scores.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
