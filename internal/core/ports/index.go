package ports

import "go.trai.ch/provenv/internal/core/domain"

// IndexStore reads and writes an environment's package index: the persisted
// set of canonical package names installed there.
//
// Indexes are written once per environment and never rewritten in place; a
// change in requirements produces a new environment identity instead.
//
//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type IndexStore interface {
	// Write persists the package set for the environment at envPath. The
	// write must be an atomic file replace so concurrent readers never
	// observe a half-written index.
	Write(envPath string, packages domain.PackageSet) error

	// Read returns the package set recorded for the environment at envPath.
	// Returns domain.ErrIndexNotFound if the environment was never indexed.
	Read(envPath string) (domain.PackageSet, error)
}
