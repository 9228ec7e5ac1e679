package main

import (
	"github.com/spf13/cobra"

	"github.com/scholarcli/scholar/internal/archive"
	"github.com/scholarcli/scholar/internal/cache"
)

func init() {
	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveAddCmd)
	archiveCmd.AddCommand(archiveRmCmd)
	rootCmd.AddCommand(archiveCmd)
}

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage the long-lived profile archive",
	Long: `Manage the SQLite catalog of extracted profiles. The archive backs
the compare and network commands when no explicit ids are given.`,
}

// ArchiveEntry is one row in the archive listing.
type ArchiveEntry struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Affiliation    string `json:"affiliation"`
	CitationsTotal int    `json:"citations_total"`
	Publications   int    `json:"publications"`
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		db := openArchive()
		defer db.Close()

		profiles, err := db.List()
		if err != nil {
			exitWithError(ExitError, "listing archive: %v", err)
		}

		entries := make([]ArchiveEntry, 0, len(profiles))
		for _, p := range profiles {
			entries = append(entries, ArchiveEntry{
				ID:             p.ID,
				Name:           p.Name,
				Affiliation:    p.Affiliation,
				CitationsTotal: p.CitationsTotal,
				Publications:   len(p.Publications),
			})
		}

		if humanOutput {
			if len(entries) == 0 {
				outputHuman("archive is empty\n")
				return nil
			}
			for _, e := range entries {
				outputHuman("%-14s %-30s cites %-8d pubs %d\n",
					e.ID, truncateString(e.Name, 30), e.CitationsTotal, e.Publications)
			}
		} else {
			outputJSON(entries)
		}
		return nil
	},
}

var archiveAddCmd = &cobra.Command{
	Use:   "add <researcher-id>",
	Short: "Copy a cached profile into the archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		cfg := loadConfig()

		store, err := cache.Open(cfg.CacheDir)
		if err != nil {
			exitWithError(ExitError, "opening cache: %v", err)
		}
		p, ok, err := store.Get(id)
		if err != nil {
			exitWithError(ExitError, "reading cache: %v", err)
		}
		if !ok {
			exitWithError(ExitNotFound, "profile not cached: %s (run 'scholar fetch %s' first)", id, id)
		}

		db := openArchive()
		defer db.Close()
		if err := db.Save(p); err != nil {
			exitWithError(ExitError, "saving profile: %v", err)
		}

		if humanOutput {
			outputHuman("archived %s (%s)\n", p.Name, p.ID)
		} else {
			outputJSON(StatusResponse{Status: "archived", Path: p.ID})
		}
		return nil
	},
}

var archiveRmCmd = &cobra.Command{
	Use:   "rm <researcher-id>",
	Short: "Remove a profile from the archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		db := openArchive()
		defer db.Close()

		deleted, err := db.Delete(id)
		if err != nil {
			exitWithError(ExitError, "deleting profile: %v", err)
		}
		if !deleted {
			exitWithError(ExitNotFound, "profile not archived: %s", id)
		}

		if humanOutput {
			outputHuman("removed %s from archive\n", id)
		} else {
			outputJSON(StatusResponse{Status: "removed", Path: id})
		}
		return nil
	},
}

// openArchive opens the configured archive database or exits.
func openArchive() *archive.DB {
	cfg := loadConfig()
	db, err := archive.Open(cfg.ArchivePath)
	if err != nil {
		exitWithError(ExitError, "opening archive: %v", err)
	}
	return db
}
