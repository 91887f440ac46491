package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/platform/tui"
	"github.com/vovakirdan/starcatch/internal/storage"
)

var (
	flagPlayer    string
	flagHoldTicks int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start Star Catch in this terminal. Without --difficulty a preset
picker is shown first.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Enter/Space  - Start a round
  R            - Restart, even mid-round
  ?            - Toggle help
  Q/Esc        - Quit

High scores are kept for as long as the program runs.

Examples:
  starcatch play
  starcatch play --difficulty easy
  starcatch play --config ./my-catch.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name shown on the score board (default: $USER)")
	playCmd.Flags().IntVar(&flagHoldTicks, "hold", 0, "Frames each key press keeps moving (0 = fps/6)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed

	// Without --difficulty, let the player pick a preset first
	if flagDifficulty == "" {
		result, err := tui.RunMenu(rt)
		if err != nil {
			return fmt.Errorf("error running menu: %w", err)
		}
		if result.Quit {
			return nil
		}
		config.ApplyPreset(&cfg, result.Preset)
		rt = result.Config
	}

	board, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score board: %v\n", err)
		// Continue without a board - the session best is still shown
		board = nil
	}
	if board != nil {
		defer board.Close()
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	if err := tui.Run(cfg, board, rt, tui.Options{Player: player, HoldTicks: flagHoldTicks}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
