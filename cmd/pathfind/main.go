// pathfind is an interactive A* pathfinding demo for the terminal.
//
// Usage:
//
//	pathfind                 - Run the interactive demo (same as play)
//	pathfind play            - Run the interactive demo
//	pathfind solve --to x,y  - Solve one query headless and print the grid
//	pathfind config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: from config)
//	--seed <value>        - Set RNG seed for reproducible obstacles
//	--config <path>       - Use a custom config YAML
//	--log-file <path>     - Log destination (default: ~/.pathfind/pathfind.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfind/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathfind",
	Short: "A* pathfinding demo in your terminal",
	Long: `pathfind scatters obstacles over a grid and walks a token to whatever
cell you click, along the shortest 4-connected path found by A*.

Available commands:
  play     - Interactive demo (default)
  solve    - Solve one query and print the result
  config   - Print the effective configuration

Examples:
  pathfind
  pathfind play --seed 42
  pathfind solve --to 30,12 --seed 7
  pathfind config > ~/.pathfind/config.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Log file path (empty = no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() (config.DemoConfig, config.Source, error) {
	cfg, src, err := config.LoadDemo(flagConfig)
	if err != nil {
		return cfg, src, err
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}
	return cfg, src, nil
}
