// mattresshop is a terminal arcade game: bounce between beds, score for
// switching beds, don't fall.
//
// Usage:
//
//	mattresshop                  - Play (same as "play")
//	mattresshop play             - Play in the terminal
//	mattresshop simulate         - Run a scripted headless round and print a summary
//	mattresshop config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load tuning from a YAML or TOML file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mattresshop",
	Short: "Mattress Hop - bounce from bed to bed in your terminal",
	Long: `Mattress Hop is a single-screen arcade game. Jump between beds and
score 10 points every time you land on a different bed than the one you
jumped from. Every 10 seconds a bed disappears (every second removal brings
one back). Fall off the screen and the round is over.

Available commands:
  play      - Play in the terminal (default)
  simulate  - Run a scripted headless round
  config    - Print the effective configuration

Examples:
  mattresshop
  mattresshop play --seed 42 --mute
  mattresshop simulate --duration 2m --jump-every 90
  mattresshop config --format toml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mattresshop",
		Level:           level,
	}), nil
}
