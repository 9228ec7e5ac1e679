package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/scholarcli/scholar/internal/archive"
	"github.com/scholarcli/scholar/internal/config"
	"github.com/scholarcli/scholar/internal/profile"
	"github.com/scholarcli/scholar/internal/scholar"
)

var (
	fetchMax       int
	fetchRate      float64
	fetchRetries   int
	fetchUserAgent string
	fetchNoArchive bool
)

func init() {
	fetchCmd.Flags().IntVar(&fetchMax, "max", 0, "Maximum publications to extract (default from config)")
	fetchCmd.Flags().Float64Var(&fetchRate, "rate", -1, "Seconds between page fetches (default from config)")
	fetchCmd.Flags().IntVar(&fetchRetries, "retries", 0, "Fetch attempts per page (default from config)")
	fetchCmd.Flags().StringVar(&fetchUserAgent, "user-agent", "", "Identity header sent upstream")
	fetchCmd.Flags().BoolVar(&fetchNoArchive, "no-archive", false, "Skip saving the profile to the archive")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <researcher-id>",
	Short: "Extract a researcher profile from Google Scholar",
	Long: `Extract a researcher profile by its Scholar identifier.

The extraction is paced (one page per rate interval), retried with
backoff on transient failures, and cached on disk: fetching an already
cached identifier returns immediately with no network requests.

Example:
  scholar fetch A1B2C3D4EF --max 200 --rate 3`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	id := args[0]

	opts := scholar.Options{
		MaxPublications: cfg.MaxPublications,
		RateLimit:       cfg.RateLimit(),
		Retries:         cfg.Retries,
		UserAgent:       cfg.UserAgent,
		CacheDir:        cfg.CacheDir,
		Warnings:        os.Stderr,
	}
	if fetchMax > 0 {
		opts.MaxPublications = fetchMax
	}
	if fetchRate >= 0 {
		opts.RateLimit = secondsToDuration(fetchRate)
	}
	if fetchRetries > 0 {
		opts.Retries = fetchRetries
	}
	if fetchUserAgent != "" {
		opts.UserAgent = fetchUserAgent
	}

	p, err := scholar.Extract(context.Background(), id, opts)
	if err != nil {
		code := ExitError
		if scholar.IsFatal(err) {
			code = ExitFetchError
		}
		exitWithError(code, "extracting %s: %v", id, err)
	}

	if !fetchNoArchive {
		archiveProfile(cfg, p)
	}

	if humanOutput {
		printProfileHuman(p)
	} else {
		outputJSON(p)
	}
	return nil
}

// archiveProfile stores an extracted profile in the comparison
// archive. Archive failures are reported but do not fail the fetch:
// the profile is already cached and printed.
func archiveProfile(cfg *config.Config, p *profile.ResearcherProfile) {
	db, err := archive.Open(cfg.ArchivePath)
	if err != nil {
		outputError(ExitSuccess, "archiving %s: %v", p.ID, err)
		return
	}
	defer db.Close()

	if err := db.Save(p); err != nil {
		outputError(ExitSuccess, "archiving %s: %v", p.ID, err)
	}
}
