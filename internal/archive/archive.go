// Package archive keeps extracted profiles in a SQLite database so
// comparison and network commands can operate across researchers
// without refetching. Unlike the extraction cache, the archive is a
// long-lived catalog: saving an existing id replaces the stored row.
package archive

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/scholarcli/scholar/internal/profile"
)

// DB wraps a SQLite database of researcher profiles.
type DB struct {
	db *sql.DB
}

const selectProfileFields = `id, name, affiliation, interests, homepage,
	citations_total, citations_5y, h_index, h_index_5y, i10_index, i10_index_5y,
	publications_json`

// Open opens or creates the archive database at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the archive schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			affiliation TEXT NOT NULL,
			interests TEXT NOT NULL,
			homepage TEXT,
			citations_total INTEGER NOT NULL,
			citations_5y INTEGER NOT NULL,
			h_index INTEGER NOT NULL,
			h_index_5y INTEGER NOT NULL,
			i10_index INTEGER NOT NULL,
			i10_index_5y INTEGER NOT NULL,
			publications_json TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_profiles_name ON profiles(name);
	`
	_, err := db.Exec(schema)
	return err
}

// Save inserts or replaces a profile.
func (d *DB) Save(p *profile.ResearcherProfile) error {
	pubsJSON, err := json.Marshal(p.Publications)
	if err != nil {
		return fmt.Errorf("marshaling publications for %s: %w", p.ID, err)
	}

	_, err = d.db.Exec(`
		INSERT OR REPLACE INTO profiles (
			id, name, affiliation, interests, homepage,
			citations_total, citations_5y, h_index, h_index_5y, i10_index, i10_index_5y,
			publications_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Affiliation, p.Interests, p.Homepage,
		p.CitationsTotal, p.Citations5y, p.HIndex, p.HIndex5y, p.I10Index, p.I10Index5y,
		string(pubsJSON),
	)
	if err != nil {
		return fmt.Errorf("saving profile %s: %w", p.ID, err)
	}
	return nil
}

// Get retrieves a profile by identifier. Returns nil if not found.
func (d *DB) Get(id string) (*profile.ResearcherProfile, error) {
	row := d.db.QueryRow(
		fmt.Sprintf("SELECT %s FROM profiles WHERE id = ?", selectProfileFields), id)

	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting profile %s: %w", id, err)
	}
	return p, nil
}

// List returns all archived profiles ordered by name.
func (d *DB) List() ([]*profile.ResearcherProfile, error) {
	rows, err := d.db.Query(
		fmt.Sprintf("SELECT %s FROM profiles ORDER BY name", selectProfileFields))
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*profile.ResearcherProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Delete removes a profile by identifier. Returns whether a row was
// deleted.
func (d *DB) Delete(id string) (bool, error) {
	res, err := d.db.Exec("DELETE FROM profiles WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting profile %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Count returns the number of archived profiles.
func (d *DB) Count() (int, error) {
	var n int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM profiles").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting profiles: %w", err)
	}
	return n, nil
}

// scanner abstracts sql.Row and sql.Rows for scanProfile.
type scanner interface {
	Scan(dest ...any) error
}

// scanProfile reads one profile row, decoding the publications column.
func scanProfile(s scanner) (*profile.ResearcherProfile, error) {
	var p profile.ResearcherProfile
	var homepage sql.NullString
	var pubsJSON string

	err := s.Scan(
		&p.ID, &p.Name, &p.Affiliation, &p.Interests, &homepage,
		&p.CitationsTotal, &p.Citations5y, &p.HIndex, &p.HIndex5y, &p.I10Index, &p.I10Index5y,
		&pubsJSON,
	)
	if err != nil {
		return nil, err
	}

	p.Homepage = homepage.String
	if err := json.Unmarshal([]byte(pubsJSON), &p.Publications); err != nil {
		return nil, fmt.Errorf("parsing publications for %s: %w", p.ID, err)
	}
	return &p, nil
}
