package ports

import "go.trai.ch/provenv/internal/core/domain"

// LineageLog records the clone-parent provenance of an environment. The log
// is append-only and diagnostic: selection never reads it back.
//
//go:generate go run go.uber.org/mock/mockgen -source=lineage.go -destination=mocks/mock_lineage.go -package=mocks
type LineageLog interface {
	// Append writes one lineage block for the environment at envPath:
	// which parent it was cloned from (empty for a fresh environment),
	// which packages were inherited, and which will be newly installed.
	Append(envPath, parent string, copied, fresh domain.PackageSet) error

	// CopyFrom copies the parent environment's whole log to the child
	// before the child's first append, so lineage composes transitively
	// across generations of cloning. A parent without a log is not an
	// error.
	CopyFrom(parentPath, childPath string) error
}
