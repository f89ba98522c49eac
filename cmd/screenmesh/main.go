// Package main is the entry point for the screenmesh CLI.
//
// Each pipeline surface is a subcommand: screen submits screening queries,
// ask queries the knowledge base, session inspects and clears session memory,
// and serve runs the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/screenmesh/config"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the screenmesh CLI.
var rootCmd = &cobra.Command{
	Use:   "screenmesh",
	Short: "Mock virtual-screening pipeline for drug-discovery demos",
	Long: `screenmesh runs a simulated drug-discovery virtual-screening pipeline:
it validates a protein target, generates a mock candidate library, assigns
deterministic docking scores, ranks the hits and writes a summary report.
Session memory remembers the last target and library size so follow-up
queries can omit them.

No real chemistry is computed anywhere; every score is a reproducible mock.`,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./screenmesh.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format override (json, text)")
}

// loadConfig reads the configuration honoring the persistent flags. Flags
// win over file and environment values.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if format, _ := cmd.Flags().GetString("log-format"); format != "" {
		cfg.Log.Format = format
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
