package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilebreaker/internal/games/tilebreaker"
	"github.com/vovakirdan/tilebreaker/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the TileBreaker SSH server",
	Long: `Start an SSH server that gives every connection its own board.

Scores are recorded under the SSH user name and shared by everyone
connecting to the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key under $XDG_DATA_HOME/tilebreaker

Examples:
  tilebreaker serve                           # Listen on :23234
  tilebreaker serve --ssh :2222               # Listen on port 2222
  tilebreaker serve --host-key ./my_host_key  # Use specific host key
  tilebreaker serve --width 8 --colors 4      # Serve a smaller board

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (env TILEBREAKER_SSH_ADDR)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	envDefault(cmd, "ssh", "TILEBREAKER_SSH_ADDR", &flagSSHAddr)

	cfg, source, err := tilebreaker.LoadConfig()
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "layout", cfg.Layout())

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		GameID:      tilebreaker.GameID,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Starting TileBreaker SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
