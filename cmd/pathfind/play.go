package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pathfind/internal/core"
	"github.com/vovakirdan/tui-pathfind/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the interactive demo",
	Long: `Start the interactive demo in the alternate screen.

Controls:
  Left click - Walk to the clicked cell
  P/Esc      - Pause
  R          - New map with fresh obstacles
  T          - Toggle the path trace
  Ctrl+S     - Save a text screenshot to ~/.pathfind/screenshots
  Q/Ctrl+C   - Quit

Clicking an obstacle flashes it and leaves the current path alone.

Examples:
  pathfind play
  pathfind play --seed 42 --fps 30
  pathfind play --config ./my-pathfind.yaml --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, src, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w, closer, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	logger, err := newLogger(w, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", src)

	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = tw
		rc.ScreenH = th
	}

	if err := tui.Run(cfg, rc, logger); err != nil {
		logger.Error("demo stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}
