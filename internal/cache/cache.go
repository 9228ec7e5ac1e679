// Package cache persists extracted profiles on disk, one JSON file per
// researcher identifier. A cache hit is permanent until manually
// cleared: within a session, identical inputs always return identical
// results without touching the network.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/scholarcli/scholar/internal/profile"
)

// Store is a filesystem-backed profile cache.
//
// Entries are keyed solely by researcher identifier, not by the
// request parameters that produced them: a lookup after a smaller
// max-publications run returns the originally cached record.
type Store struct {
	dir string
}

// DefaultDir returns the process-scoped default cache location.
func DefaultDir() string {
	return filepath.Join(os.TempDir(), "scholar-cache")
}

// Open creates the cache directory if needed and returns a Store.
func Open(dir string) (*Store, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the cache directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the cache file path for a researcher identifier.
func (s *Store) Path(id string) string {
	return filepath.Join(s.dir, sanitize(id)+".json")
}

// Get loads a cached profile. The second return value reports whether
// an entry existed.
func (s *Store) Get(id string) (*profile.ResearcherProfile, bool, error) {
	data, err := os.ReadFile(s.Path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache entry: %w", err)
	}

	var p profile.ResearcherProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false, fmt.Errorf("parsing cache entry for %s: %w", id, err)
	}
	return &p, true, nil
}

// Put writes a profile to the cache. The write goes through a temp
// file and rename so a crashed writer never leaves a truncated entry.
func (s *Store) Put(p *profile.ResearcherProfile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".cache-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing cache entry: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, s.Path(p.ID)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming cache entry: %w", err)
	}
	return nil
}

// Clear removes all cache entries and returns how many were deleted.
func (s *Store) Clear() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("reading cache directory: %w", err)
	}

	deleted := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return deleted, fmt.Errorf("removing %s: %w", entry.Name(), err)
		}
		deleted++
	}
	return deleted, nil
}

// List returns the identifiers of all cached profiles.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading cache directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

// sanitize maps an identifier to a safe filename. Scholar identifiers
// are URL-safe already; any other byte becomes an underscore.
func sanitize(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, id)
}
