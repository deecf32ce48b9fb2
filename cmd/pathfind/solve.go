package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfind/internal/config"
	"github.com/vovakirdan/tui-pathfind/internal/core"
	"github.com/vovakirdan/tui-pathfind/internal/demo"
	"github.com/vovakirdan/tui-pathfind/internal/grid"
)

// Grid size used by solve when the config fits the grid to the terminal.
const (
	solveDefaultWidth  = 40
	solveDefaultHeight = 20
)

var errBlocked = errors.New("goal is blocked")

var (
	flagFrom     string
	flagTo       string
	flagWidth    int
	flagHeight   int
	flagFraction float64
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one query and print the grid",
	Long: `Generate a grid from the config and seed, run A* from the start cell to
--to, and print the grid with the path.

Legend:
  S start   G goal   * path   # obstacle   . free

Exits with status 1 when the goal is blocked or outside the grid.
An unreachable goal is reported but is not an error.

Examples:
  pathfind solve --to 39,19
  pathfind solve --from 5,5 --to 30,2 --seed 42
  pathfind solve --width 20 --height 10 --fraction 0.4 --to 19,9`,
	Args: cobra.NoArgs,
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagFrom, "from", "", "Start cell as x,y (default: config start)")
	solveCmd.Flags().StringVar(&flagTo, "to", "", "Goal cell as x,y")
	solveCmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width (default: config, or 40)")
	solveCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height (default: config, or 20)")
	solveCmd.Flags().Float64Var(&flagFraction, "fraction", 0, "Obstacle fraction (default: config)")
	//nolint:errcheck // Flag is defined above
	solveCmd.MarkFlagRequired("to")
}

func runSolve(cmd *cobra.Command, args []string) {
	cfg, _, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, goal, err := applySolveFlags(cmd, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if err := solve(cmd.OutOrStdout(), cfg, seed, goal, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applySolveFlags folds the solve flags into cfg and parses the goal.
func applySolveFlags(cmd *cobra.Command, cfg config.DemoConfig) (config.DemoConfig, grid.Cell, error) {
	if !cfg.FixedGrid() {
		cfg.Grid.Width, cfg.Grid.Height = solveDefaultWidth, solveDefaultHeight
	}
	if flagWidth > 0 {
		cfg.Grid.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Grid.Height = flagHeight
	}
	if cmd.Flags().Changed("fraction") {
		cfg.Obstacles.Fraction = flagFraction
	}
	if flagFrom != "" {
		start, err := parseCell(flagFrom)
		if err != nil {
			return cfg, grid.Cell{}, fmt.Errorf("--from: %w", err)
		}
		cfg.Grid.StartX, cfg.Grid.StartY = start.X, start.Y
	}

	goal, err := parseCell(flagTo)
	if err != nil {
		return cfg, grid.Cell{}, fmt.Errorf("--to: %w", err)
	}
	return cfg, goal, nil
}

// solve builds one run with the given seed, searches toward goal and prints
// the grid followed by a summary line.
func solve(out io.Writer, cfg config.DemoConfig, seed int64, goal grid.Cell, logger *log.Logger) error {
	d := demo.New(cfg, logger)
	if err := d.Reset(core.RuntimeConfig{Seed: seed}); err != nil {
		return err
	}

	g := d.Grid()
	if !g.InBounds(goal) {
		return fmt.Errorf("goal %v: %w", goal, grid.ErrOutOfBounds)
	}
	if d.Obstacles().Has(goal) {
		logger.Warn("position is blocked", "cell", goal)
		return fmt.Errorf("%v: %w", goal, errBlocked)
	}

	start := d.Position()
	res := d.Travel(goal)

	fmt.Fprintln(out, demo.RenderASCII(g, d.Obstacles(), start, res.Path).String())
	fmt.Fprintf(out, "seed %d  grid %dx%d  obstacles %d\n", seed, g.W, g.H, d.Obstacles().Len())

	if !res.Found() && goal != start {
		fmt.Fprintf(out, "no path from %v to %v (expanded %d)\n", start, goal, res.Expanded)
		return nil
	}
	fmt.Fprintf(out, "path %v -> %v  length %d  expanded %d  pushed %d\n",
		start, goal, len(res.Path), res.Expanded, res.Pushed)
	return nil
}

// parseCell parses "x,y" into a cell.
func parseCell(s string) (grid.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Cell{}, fmt.Errorf("cell %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	return grid.C(x, y), nil
}
