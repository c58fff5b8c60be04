// Package session manages the persistent browser profile directories that
// keep an authenticated login alive across runs within the same calendar day.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseDir is where profile directories live when no override is given.
	DefaultBaseDir = ".linkedin"

	dirPrefix  = "session_"
	dateLayout = "2006-01-02"
)

// Identity describes one stored browser profile directory.
type Identity struct {
	CreatedDate time.Time
	Path        string
}

// Store manages day-keyed browser profile directories under a base directory.
// Each directory holds the cookies and local storage for one calendar day, so
// a login performed in the morning is still valid in the afternoon.
type Store struct {
	base string
	now  func() time.Time
}

// New creates a Store rooted at base. An empty base falls back to DefaultBaseDir.
func New(base string) *Store {
	if base == "" {
		base = DefaultBaseDir
	}
	return &Store{base: base, now: time.Now}
}

// PathForToday returns the profile directory for the current calendar day,
// creating it and the base directory if absent. Idempotent within a day.
func (s *Store) PathForToday() (string, error) {
	dir := filepath.Join(s.base, dirPrefix+s.now().Format(dateLayout))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create session directory: %w", err)
	}
	return dir, nil
}

// PurgeStale recursively deletes sibling profile directories whose name does
// not match the current day. Deletion failures are logged and skipped so one
// stuck directory never blocks a scrape. Returns the number of directories
// removed.
func (s *Store) PurgeStale() int {
	today := dirPrefix + s.now().Format(dateLayout)

	entries, err := os.ReadDir(s.base)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("dir", s.base).Msg("failed to list session directories")
		}
		return 0
	}

	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), dirPrefix) {
			continue
		}
		if entry.Name() == today {
			continue
		}
		path := filepath.Join(s.base, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to delete stale session")
			continue
		}
		log.Debug().Str("path", path).Msg("deleted stale session")
		removed++
	}
	return removed
}

// List returns the stored identities sorted oldest first. Entries whose names
// do not parse as a session date are skipped.
func (s *Store) List() ([]Identity, error) {
	entries, err := os.ReadDir(s.base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list session directories: %w", err)
	}

	var identities []Identity
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), dirPrefix) {
			continue
		}
		date, err := time.Parse(dateLayout, strings.TrimPrefix(entry.Name(), dirPrefix))
		if err != nil {
			continue
		}
		identities = append(identities, Identity{
			CreatedDate: date,
			Path:        filepath.Join(s.base, entry.Name()),
		})
	}
	sort.Slice(identities, func(i, j int) bool {
		return identities[i].CreatedDate.Before(identities[j].CreatedDate)
	})
	return identities, nil
}
