package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
)

var flagNoColor bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Arkanoid.

Controls:
  Mouse        - Move the platform
  Click/Space  - Launch the ball
  Left/Right   - Move the platform with the keyboard
  Enter/Click  - Dismiss the victory or game over dialog
  P/Esc        - Pause
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  arkanoid play
  arkanoid play --seed 42 --fps 30
  arkanoid play --config ./my-arkanoid.yaml --log-file arkanoid.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Render without colors")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagFPS <= 0 {
		exitOnError("invalid --fps", fmt.Errorf("must be positive, got %d", flagFPS))
	}

	gameCfg, err := loadConfig()
	exitOnError("loading config", err)

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Get terminal size, keeping the defaults when stdout is not a terminal
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// The alt screen owns the terminal, so logs only go to a file.
	var logger *log.Logger
	var logFile *os.File
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		exitOnError("opening log file", openErr)
		logFile = f
		logger = newLogger(f, "arkanoid")
	}

	opts := tui.Options{Logger: logger}
	if flagNoColor {
		opts.Palette = tui.MonoPalette()
	}

	runErr := tui.Run(arkanoid.New(gameCfg), cfg, opts)

	// Close log file before potential exit
	if logFile != nil {
		logFile.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
