// gnudash is an endless side-scrolling platformer about collecting free
// source code before the proprietary world catches up.
//
// Usage:
//
//	gnudash play             - Play in the terminal
//	gnudash menu             - Start the interactive menu
//	gnudash window           - Play in a desktop window
//	gnudash sim              - Run headless autopilot simulations
//	gnudash config           - Print the effective configuration
//	gnudash list             - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--log-file <path>     - Write logs to a file ("-" for stderr)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the game
	_ "github.com/vovakirdan/gnu-dash/internal/games/dash"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gnudash",
	Short: "GNU Dash - run, jump and collect free software",
	Long: `GNU Dash is an endless platformer. The level scrolls towards you,
platforms appear ahead and source code waits to be collected. Falling
off the world costs a Liberty Shield; lose them all and the run is over.

Available commands:
  play     - Play in the terminal
  menu     - Interactive menu with demo mode and session runs
  window   - Play in a desktop window
  sim      - Run headless autopilot simulations
  config   - Print the effective configuration as YAML
  list     - Show registered games

Examples:
  gnudash play
  gnudash play --preset hard --seed 42
  gnudash play --config ./dash.yaml --watch
  gnudash window --scale 1.5
  gnudash sim --runs 20 --ticks 5000`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log file path ("-" for stderr, empty disables logging)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
