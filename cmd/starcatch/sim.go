package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starcatch/internal/catch"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/storage"
)

var (
	flagSpeedup int
	flagRounds  int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless rounds with a simulated player",
	Long: `Run rounds without a terminal UI. A simple bot steers the basket
toward the lowest star. Both drivers run on real timers; --speedup
shortens them to finish rounds faster than real time.

Examples:
  starcatch sim
  starcatch sim --seed 7 --speedup 30 --rounds 5`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSpeedup, "speedup", 1, "Time compression factor for both drivers")
	simCmd.Flags().IntVar(&flagRounds, "rounds", 1, "Number of rounds to play")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger("sim")

	if flagSpeedup < 1 {
		flagSpeedup = 1
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board, err := storage.Open()
	if err != nil {
		return err
	}
	defer board.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	round := catch.NewRound(cfg, rand.New(rand.NewSource(seed)))
	driver := catch.NewDriver(round,
		catch.WithTickRate(flagFPS*flagSpeedup),
		catch.WithSecondInterval(time.Second/time.Duration(flagSpeedup)),
		catch.WithLogger(logger),
	)
	bot := chaseBot{round: round}

	for i := 1; i <= flagRounds; i++ {
		score, runErr := driver.Run(ctx, catch.InputFunc(bot.Intent))
		s := round.Snapshot()
		if _, err := board.SaveScore("bot", score, s.Caught, s.Missed); err != nil {
			logger.Error("cannot save score", "error", err)
		}
		if runErr != nil {
			if ctx.Err() != nil {
				break
			}
			return runErr
		}
		logger.Info("round complete", "round", i, "score", score, "speed", s.Speed)
	}

	high, err := board.HighScore()
	if err != nil {
		return err
	}
	rounds, err := board.Rounds()
	if err != nil {
		return err
	}
	fmt.Printf("Best score: %d over %d rounds\n", high, rounds)
	return nil
}

// chaseBot steers the basket toward the star closest to the ground.
// It runs on the driver goroutine, so reading the round is safe.
type chaseBot struct {
	round *catch.Round
}

func (b chaseBot) Intent() core.Intent {
	c := b.round.Collector()
	var target *catch.FallingObject
	objs := b.round.Pool().Objects()
	for i := range objs {
		if target == nil || objs[i].Y > target.Y {
			target = &objs[i]
		}
	}
	if target == nil {
		return core.IntentNone
	}

	starX, _ := target.Rect().Center()
	basketX, _ := c.Rect().Center()
	switch {
	case starX < basketX-c.Step:
		return core.IntentLeft
	case starX > basketX+c.Step:
		return core.IntentRight
	default:
		return core.IntentNone
	}
}
