package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfind/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the demo would run with, as YAML.

The config is looked up in this order:
  --config <path>
  ~/.pathfind/config.yaml
  ./configs/pathfind.yaml
  built-in defaults

Examples:
  pathfind config
  pathfind config --config ./my-pathfind.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, src, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", src)
	fmt.Fprint(out, string(data))
}
