package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mattress-hop/internal/config"
)

var (
	flagFormat   string
	flagDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying the
search order: --config, ~/.mattresshop/configs/hop.yaml,
~/.mattresshop/configs/hop.toml, ./configs/hop.yaml, built-in defaults.

The output is a complete config file that can be edited and passed back
with --config.

Examples:
  mattresshop config > hop.yaml
  mattresshop config --format toml > hop.toml
  mattresshop config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file verbatim")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	format, err := config.ParseFormat(flagFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.Encode(os.Stdout, cfg, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
