// riverraid is a terminal river raid game: fly up a winding river, dodge the
// banks and shoot down enemies.
//
// Usage:
//
//	riverraid                  - Play (same as "riverraid play")
//	riverraid play             - Play a game
//	riverraid config           - Print the effective configuration as YAML
//	riverraid backends         - List available renderer backends
//
// Global flags:
//
//	--tick <duration>     - Simulation tick (default from config: 100ms)
//	--seed <value>        - RNG seed for reproducible rivers (0 = time)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal, hard
//	--log-file <path>     - Write logs to a file (the terminal belongs to the game)
//	--debug               - Debug level logging
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/riverraid/internal/platform/cell"
	_ "github.com/vovakirdan/riverraid/internal/platform/tui"
)

var (
	flagTick       time.Duration
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "riverraid",
	Short: "River raid in your terminal",
	Long: `Fly a ship up a procedurally winding river. Touching a bank or an
enemy ends the run; shooting enemies scores points.

Examples:
  riverraid
  riverraid play --backend cell
  riverraid --difficulty hard --seed 42
  riverraid config > ~/.riverraid/configs/riverraid.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.DurationVar(&flagTick, "tick", 0, "Simulation tick interval (0 = use config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&flagBackend, "backend", backendTea, "Renderer backend (see 'riverraid backends')")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(backendsCmd)
}
