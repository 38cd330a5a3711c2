package greenstar

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
)

// SnapshotExt is the file extension required for snapshot files.
const SnapshotExt = ".gob"

var (
	// ErrInvalidSnapshotPath is returned by Restore when the path is not a
	// readable snapshot file.
	ErrInvalidSnapshotPath = errors.New("invalid snapshot path")
	// ErrCorruptSnapshot is returned by Restore when the file content could
	// not be decoded.
	ErrCorruptSnapshot = errors.New("corrupt or empty snapshot")
)

// Store holds the ordered list of projects.
//
// Its zero value is an empty store ready to use.
type Store struct {
	projects []Project
}

// NewStore returns a store holding a copy of projects.
func NewStore(projects ...Project) *Store {
	return &Store{projects: slices.Clone(projects)}
}

// Add appends p. There is no deduplication.
func (s *Store) Add(p Project) { s.projects = append(s.projects, p) }

// Projects returns a copy of the projects in insertion order.
func (s *Store) Projects() []Project { return slices.Clone(s.projects) }

// Len returns the number of projects.
func (s *Store) Len() int { return len(s.projects) }

// Replace drops all projects and uses a copy of projects instead.
func (s *Store) Replace(projects []Project) { s.projects = slices.Clone(projects) }

// Snapshot writes all projects to a binary file at path, overwriting it.
func (s *Store) Snapshot(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing snapshot %q: %w", path, cerr)
		}
	}()
	if err := EncodeProjects(f, s.projects); err != nil {
		return fmt.Errorf("writing snapshot %q: %w", path, err)
	}
	log.Printf("saved %d projects into %q", len(s.projects), path)
	return nil
}

// Restore replaces all projects with the content of the snapshot at path.
//
// If path is not a readable snapshot file, ErrInvalidSnapshotPath is returned
// and the store is left untouched. If the file cannot be decoded the store is
// reset to empty and ErrCorruptSnapshot is returned.
func (s *Store) Restore(path string) error {
	if err := CheckSnapshotPath(path); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshotPath, err)
	}
	defer f.Close()

	projects, err := DecodeProjects(f)
	if err != nil {
		log.Printf("discarding %d projects: snapshot %q is unreadable", len(s.projects), path)
		s.projects = nil
		return fmt.Errorf("%w %q: %w", ErrCorruptSnapshot, path, err)
	}
	s.projects = projects
	log.Printf("loaded %d projects from %q", len(projects), path)
	return nil
}

// CheckSnapshotPath reports whether path names an existing regular file with
// the snapshot extension.
func CheckSnapshotPath(path string) error {
	if filepath.Ext(path) != SnapshotExt {
		return fmt.Errorf("%w %q: want a %s file", ErrInvalidSnapshotPath, path, SnapshotExt)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshotPath, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w %q: not a regular file", ErrInvalidSnapshotPath, path)
	}
	return nil
}
