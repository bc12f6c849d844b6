package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/riverraid/internal/config"
	"github.com/vovakirdan/riverraid/internal/core"
	"github.com/vovakirdan/riverraid/internal/registry"
	"github.com/vovakirdan/riverraid/internal/session"
)

const backendTea = "tea"

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a river raid session sized to the current terminal.

Controls:
  W/A/S/D or arrows  - Move
  Space              - Fire
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Longer bullet range
  normal - Default rules
  hard   - Enemies spawn twice as often

Examples:
  riverraid play
  riverraid play --backend cell
  riverraid play --difficulty hard --log-file /tmp/riverraid.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTea, "Renderer backend (see 'riverraid backends')")
}

func runPlay(cmd *cobra.Command, args []string) {
	launch, err := registry.Lookup(flagBackend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'riverraid backends' to see available backends.")
		os.Exit(1)
	}

	cfg, err := loadSettings(flagConfig, flagDifficulty, flagTick)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	res, err := launch(ctx, sessionFactory(cfg, logger))
	stop()

	if err != nil {
		logger.Error("session failed", "backend", flagBackend, "err", err)
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, session.ErrScreenTooSmall) {
			fmt.Fprintf(os.Stderr, "Resize the terminal to at least %dx%d.\n", core.MinScreenW, core.MinScreenH)
		}
		os.Exit(1)
	}
	closer.Close()

	if res.Reason == session.ReasonDead {
		fmt.Printf("Enemies destroyed: %d, ticks survived: %d\n", res.Score, res.Ticks)
	}
}

// sessionFactory closes over the resolved settings so backends only supply
// the screen size.
func sessionFactory(cfg config.RiverRaidConfig, logger *log.Logger) registry.SessionFactory {
	return func(cols, rows int) (*session.Controller, error) {
		rc := core.DefaultConfig()
		rc.ScreenW, rc.ScreenH = cols, rows
		rc.Tick = cfg.Loop.Tick()
		rc.Seed = flagSeed

		logger.Debug("runtime", "backend", flagBackend, "cols", rc.ScreenW, "rows", rc.ScreenH,
			"tick", rc.Tick, "seed", rc.Seed)
		return session.New(rc.ScreenW, rc.ScreenH, cfg,
			session.WithLogger(logger),
			session.WithTick(rc.Tick),
			session.WithRand(core.NewRand(rc.Seed)),
		)
	}
}
