package ports

import "go.trai.ch/provenv/internal/core/domain"

// CacheSelector picks the best prior environment to clone from among the
// entries of a shared cache directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=selector.go -destination=mocks/mock_selector.go -package=mocks
type CacheSelector interface {
	// SelectBest scans cacheRoot and returns the eligible candidate with
	// the largest overlap against want, or nil if none exists. The
	// environment being provisioned (selfPath) and candidates without a
	// readable package index are skipped. Selection is deterministic for
	// identical cache contents.
	SelectBest(cacheRoot, selfPath string, want domain.PackageSet) (*domain.Selection, error)
}
