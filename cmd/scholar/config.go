package main

import (
	"time"

	"github.com/scholarcli/scholar/internal/archive"
	"github.com/scholarcli/scholar/internal/cache"
	"github.com/scholarcli/scholar/internal/config"
	"github.com/scholarcli/scholar/internal/profile"
)

// loadConfig loads scholar.yml (or defaults) and exits on error.
func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError(ExitConfigError, "loading configuration: %v", err)
	}
	return cfg
}

// secondsToDuration converts a fractional seconds value to a Duration.
func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// loadProfile finds an already extracted profile by id, checking the
// cache first and then the archive. Exits with ExitNotFound when the
// profile has not been fetched yet.
func loadProfile(cfg *config.Config, id string) *profile.ResearcherProfile {
	store, err := cache.Open(cfg.CacheDir)
	if err != nil {
		exitWithError(ExitError, "opening cache: %v", err)
	}

	if p, ok, err := store.Get(id); err != nil {
		exitWithError(ExitError, "reading cache: %v", err)
	} else if ok {
		return p
	}

	db, err := archive.Open(cfg.ArchivePath)
	if err != nil {
		exitWithError(ExitError, "opening archive: %v", err)
	}
	defer db.Close()

	p, err := db.Get(id)
	if err != nil {
		exitWithError(ExitError, "reading archive: %v", err)
	}
	if p == nil {
		exitWithError(ExitNotFound, "profile not found: %s (run 'scholar fetch %s' first)", id, id)
	}
	return p
}

// loadProfiles loads several profiles, or every archived profile when
// ids is empty.
func loadProfiles(cfg *config.Config, ids []string) []*profile.ResearcherProfile {
	if len(ids) > 0 {
		profiles := make([]*profile.ResearcherProfile, 0, len(ids))
		for _, id := range ids {
			profiles = append(profiles, loadProfile(cfg, id))
		}
		return profiles
	}

	db, err := archive.Open(cfg.ArchivePath)
	if err != nil {
		exitWithError(ExitError, "opening archive: %v", err)
	}
	defer db.Close()

	profiles, err := db.List()
	if err != nil {
		exitWithError(ExitError, "listing archive: %v", err)
	}
	return profiles
}
