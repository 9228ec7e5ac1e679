// Package main provides the scholar CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// configPath overrides the default scholar.yml location
var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scholar",
	Short: "Bibliometric profile extraction and comparison",
	Long: `scholar extracts researcher profiles from Google Scholar citation
pages, computes citation-impact metrics, and builds co-authorship
networks across researchers.

Extraction is paced and cached: pages are fetched with a minimum delay
between requests, failed fetches are retried with backoff, and results
are stored on disk so repeat runs never touch the network. All commands
output JSON by default for easy integration with other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Credentials and overrides may live in a .env file next to the
	// working directory; absence is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to scholar.yml (default ./scholar.yml)")
	rootCmd.Version = Version
}
