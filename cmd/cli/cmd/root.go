// Package cmd provides the CLI commands for quote-pricing.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quote-pricing/internal/config"
	"quote-pricing/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quote-pricing",
	Short: "Resolve tenant pricing policies into bounded estimates",
	Long: `quote-pricing turns a tenant's pricing policy, numeric configuration,
and an AI estimator's raw quantities into a bounded, currency-safe
estimate and a display-ready price line.

Examples:
  quote-pricing estimate --pricing tenant.hcl --components job.json
  quote-pricing estimate --pricing tenant.hcl --components job.json --format json
  quote-pricing display --pricing tenant.hcl --low 280 --high 500`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(displayCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
		cfg.Logging.Format = "console"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}
