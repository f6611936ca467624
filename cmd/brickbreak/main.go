// brickbreak is a single-screen brick-breaking game for the terminal and the
// desktop.
//
// Usage:
//
//	brickbreak play      - Play in the terminal (mouse moves the paddle)
//	brickbreak window    - Play in a desktop window
//	brickbreak sim       - Run a headless session and print a summary
//	brickbreak config    - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>  - Load configuration from a YAML file
//	--log <path>     - Append logs to a file (terminal and window modes)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagLog    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreak",
	Short: "Brickbreak - bounce a ball, break the bricks",
	Long: `Brickbreak is a single-screen brick-breaking game. Move the paddle
with the mouse, click to launch the ball and clear the 5x8 brick grid.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Headless run with a summary
  config   - Print the effective configuration

Examples:
  brickbreak play
  brickbreak play --fps 30 --log /tmp/brickbreak.log
  brickbreak window --scale 1.5
  brickbreak sim --ticks 5000
  brickbreak config > my-breakout.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
