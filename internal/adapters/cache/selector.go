// Package cache implements candidate selection over the shared environment
// cache directory.
package cache

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/provenv/internal/core/domain"
	"go.trai.ch/provenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// Selector implements ports.CacheSelector by scanning the immediate
// subdirectories of the cache root. Each subdirectory is one provisioning
// run, keyed by the content hash of its requirements; the candidate inside
// it is the environment sharing the base name of the one being provisioned.
type Selector struct {
	index  ports.IndexStore
	logger ports.Logger
}

// NewSelector creates a new Selector.
func NewSelector(index ports.IndexStore, logger ports.Logger) *Selector {
	return &Selector{
		index:  index,
		logger: logger,
	}
}

// SelectBest returns the eligible candidate with the largest overlap against
// want, or nil if the cache root is missing or no candidate qualifies.
//
// The cache tree is re-read on every call; concurrent runs may be adding
// entries and nothing here must go stale against them.
func (s *Selector) SelectBest(cacheRoot, selfPath string, want domain.PackageSet) (*domain.Selection, error) {
	entries, err := os.ReadDir(cacheRoot)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to scan cache root"), "cache_root", cacheRoot)
	}

	selfPath = filepath.Clean(selfPath)
	envName := filepath.Base(selfPath)

	var candidates []domain.Candidate
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candPath := filepath.Join(cacheRoot, entry.Name(), envName)
		if candPath == selfPath {
			continue
		}

		packages, err := s.index.Read(candPath)
		if err != nil {
			// An environment without a readable index was never
			// snapshotted and cannot be trusted as a clone source.
			if !errors.Is(err, domain.ErrIndexNotFound) {
				s.logger.Warn("skipping cache candidate with unreadable index: " + candPath)
			}
			continue
		}

		candidates = append(candidates, domain.Candidate{Path: candPath, Packages: packages})
	}

	return domain.BestCandidate(candidates, want), nil
}
