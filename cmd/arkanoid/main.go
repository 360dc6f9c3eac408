// arkanoid is a single-screen Arkanoid clone that runs in the terminal.
//
// Usage:
//
//	arkanoid                 - Play (same as "arkanoid play")
//	arkanoid play            - Play in the terminal, mouse or keyboard
//	arkanoid simulate        - Run a headless autopilot game and print a summary
//	arkanoid config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load a YAML or TOML config file
//	--log-file <path>   - Write logs to a file while playing
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - Break blocks in your terminal",
	Long: `Arkanoid is a single-screen block breaker for the terminal.

Move the mouse to steer the platform and click to launch the ball.
Clear every block to win; lose the ball three times and the game is over.

Available commands:
  play      - Play the game (default)
  simulate  - Headless autopilot run for testing and tuning
  config    - Show the effective configuration

Examples:
  arkanoid
  arkanoid play --seed 42
  arkanoid play --config ./my-arkanoid.toml --log-file arkanoid.log
  arkanoid simulate --ticks 20000 --debug
  arkanoid config --defaults > ~/.arkanoid/arkanoid.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w with the level set by --debug.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// loadConfig loads and validates the game configuration.
func loadConfig() (config.ArkanoidConfig, error) {
	cfg, err := config.LoadArkanoid(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// exitOnError prints err and exits when it is non-nil.
func exitOnError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
