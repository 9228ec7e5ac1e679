package main

import (
	"github.com/spf13/cobra"

	"github.com/scholarcli/scholar/internal/cache"
)

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cachePathCmd)
	rootCmd.AddCommand(cacheCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the extraction cache",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached researcher identifiers",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openCache()
		ids, err := store.List()
		if err != nil {
			exitWithError(ExitError, "listing cache: %v", err)
		}

		if humanOutput {
			if len(ids) == 0 {
				outputHuman("cache is empty (%s)\n", store.Dir())
				return nil
			}
			outputHuman("%s\n", formatIDList(ids))
		} else {
			if ids == nil {
				ids = []string{}
			}
			outputJSON(ids)
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openCache()
		n, err := store.Clear()
		if err != nil {
			exitWithError(ExitError, "clearing cache: %v", err)
		}

		if humanOutput {
			outputHuman("removed %d cached profiles\n", n)
		} else {
			outputJSON(StatusResponse{Status: "cleared", Path: store.Dir(), Count: n})
		}
		return nil
	},
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the cache directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openCache()
		if humanOutput {
			outputHuman("%s\n", store.Dir())
		} else {
			outputJSON(StatusResponse{Status: "ok", Path: store.Dir()})
		}
		return nil
	},
}

// openCache opens the configured cache store or exits.
func openCache() *cache.Store {
	cfg := loadConfig()
	store, err := cache.Open(cfg.CacheDir)
	if err != nil {
		exitWithError(ExitError, "opening cache: %v", err)
	}
	return store
}
