// Package cmd provides the CLI commands for listing-price.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"listing-price/core/engine"
	"listing-price/core/fees"
	"listing-price/internal/config"
	"listing-price/internal/logging"
)

const version = "0.1.0"

var (
	cfgFile      string
	scheduleFile string
	verbose      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "listing-price",
	Short: "Price marketplace listings for a target profit",
	Long: `listing-price works out what to list an item for so that, after the
marketplace takes its fees, you keep the profit you asked for.

Examples:
  listing-price quote --platform etsy --cost 30 --profit 20 --shipping 5
  listing-price quote --platform ebay --category Sneakers --cost 100 --profit 40 --shipping 10
  listing-price compare --category Other --cost 30 --profit 20
  listing-price categories ebay`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.listing-price.json)")
	rootCmd.PersistentFlags().StringVar(&scheduleFile, "schedule", "", "fee schedule file (.yaml or .hcl) replacing the built-in fees")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if scheduleFile != "" {
		cfg.Schedule.File = scheduleFile
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadCatalog returns the configured fee schedule. Files are read when a
// command starts and never reloaded.
func loadCatalog() (*fees.Catalog, error) {
	path := config.Get().Schedule.File
	if path == "" {
		return fees.Default(), nil
	}
	catalog, err := fees.LoadScheduleFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading fee schedule: %w", err)
	}
	logging.Sugar.Debugw("loaded fee schedule", "path", path, "platforms", catalog.Platforms())
	return catalog, nil
}

func newEngine() (*engine.Engine, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return engine.New(catalog, logging.Named("engine")), nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "listing-price version %s\n", version)
	},
}
