package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ComputeEnvironmentID creates a deterministic identity for an environment
// from the raw bytes of its requirements manifest. A change in requirements
// always produces a new identity, never a mutation of an existing cache
// entry.
func ComputeEnvironmentID(manifest []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(manifest))
}
