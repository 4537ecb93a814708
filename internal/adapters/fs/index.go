// Package fs implements the file-backed stores for environment metadata:
// the package index, the lineage log, and the success stamp.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/provenv/internal/core/domain"
	"go.trai.ch/zerr"
)

const indexFilename = "package_index"

// IndexPath returns the package index path for an environment.
func IndexPath(envPath string) string {
	return filepath.Join(envPath, indexFilename)
}

// IndexStore implements ports.IndexStore using the package_index file: one
// canonical package name per line, sorted, newline-terminated.
type IndexStore struct{}

// NewIndexStore creates a new IndexStore.
func NewIndexStore() *IndexStore {
	return &IndexStore{}
}

// Write persists the package set for the environment at envPath. The index
// is written to a temp file in the same directory and renamed into place, so
// a concurrent reader never observes a half-written index.
func (s *IndexStore) Write(envPath string, packages domain.PackageSet) error {
	var b strings.Builder
	for _, name := range packages.Sorted() {
		b.WriteString(name)
		b.WriteString("\n")
	}

	tmp, err := os.CreateTemp(envPath, indexFilename+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create package index"), "env", envPath)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(b.String()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to write package index"), "env", envPath)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to close package index"), "env", envPath)
	}

	if err := os.Rename(tmpName, IndexPath(envPath)); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to replace package index"), "env", envPath)
	}
	return nil
}

// Read returns the package set recorded for the environment at envPath.
// Blank lines and ordering are ignored; the file is a set, not a list.
func (s *IndexStore) Read(envPath string) (domain.PackageSet, error) {
	data, err := os.ReadFile(IndexPath(envPath)) //nolint:gosec // Path derives from the cache layout
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(domain.ErrIndexNotFound, "env", envPath)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read package index"), "env", envPath)
	}

	set := make(domain.PackageSet)
	for _, line := range strings.Split(string(data), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			set.Add(name)
		}
	}
	return set, nil
}
