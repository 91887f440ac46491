package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starcatch/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagRate        int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Star Catch SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own rounds. All sessions share one score
board, which lives as long as the server process.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.starcatch/host_key

Examples:
  starcatch serve                           # Listen on :23234
  starcatch serve --ssh :2222               # Listen on port 2222
  starcatch serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagRate, "rate", 30, "Max new sessions per minute (0 = unlimited)")
}

func runServe(_ *cobra.Command, _ []string) error {
	game, err := loadConfig()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:           flagSSHAddr,
		HostKeyPath:       flagHostKey,
		IdleTimeout:       time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:          flagFPS,
		SessionsPerMinute: flagRate,
		Game:              game,
	}

	server, err := tui.NewSSHServer(cfg, newLogger("starcatch-ssh"))
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting Star Catch SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
